package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/phrazzld/chrono-api/internal/domain"
)

// Catalog is the cleaned item pool split by category.
type Catalog struct {
	General []domain.Item
	Family  []domain.Item
}

// Size returns the total number of playable items.
func (c *Catalog) Size() int {
	return len(c.General) + len(c.Family)
}

// Load reads, cleans and partitions the catalog file at path.
func Load(ctx context.Context, path string, opts FilterOptions, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "catalog"))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logger.Warn("failed to close catalog file", slog.String("error", closeErr.Error()))
		}
	}()

	items, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}

	general, family := Partition(Filter(items, opts, logger))
	logger.Info("catalog loaded",
		slog.String("path", path),
		slog.Int("parsed", len(items)),
		slog.Int("general", len(general)),
		slog.Int("family", len(family)))

	return &Catalog{General: general, Family: family}, nil
}
