package catalog

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/phrazzld/chrono-api/internal/domain"
)

// centuryPattern matches descriptions such as "19th-century painter" that
// narrow the answer down to a hundred years.
var centuryPattern = regexp.MustCompile(`(?i)(?:th|st|nd)[ -]century`)

// FilterOptions controls which items Filter drops besides the
// self-revealing ones.
type FilterOptions struct {
	// ExcludedIDs lists items known to carry bad data.
	ExcludedIDs []string
}

// Filter returns the items fit for play, preserving input order. Only the
// first playable item with a given ID is kept. logger may be nil.
func Filter(items []domain.Item, opts FilterOptions, logger *slog.Logger) []domain.Item {
	if logger == nil {
		logger = slog.Default()
	}

	excluded := make(map[string]struct{}, len(opts.ExcludedIDs))
	for _, id := range opts.ExcludedIDs {
		excluded[id] = struct{}{}
	}

	seen := make(map[string]struct{}, len(items))
	kept := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			logger.Warn("dropping invalid catalog item",
				slog.String("item_id", item.ID),
				slog.String("error", err.Error()))
			continue
		}
		if _, bad := excluded[item.ID]; bad {
			continue
		}
		if revealsYear(item) {
			continue
		}
		// IDs identify cards within a game; the first playable record wins.
		if _, dup := seen[item.ID]; dup {
			logger.Warn("dropping duplicate catalog item",
				slog.String("item_id", item.ID),
				slog.String("label", item.Label))
			continue
		}
		seen[item.ID] = struct{}{}
		kept = append(kept, item)
	}

	logger.Debug("filtered catalog",
		slog.Int("input", len(items)),
		slog.Int("kept", len(kept)))
	return kept
}

// revealsYear reports whether an item's text gives its answer away.
func revealsYear(item domain.Item) bool {
	year := strconv.Itoa(item.Year)
	return strings.Contains(item.Label, year) ||
		strings.Contains(item.Description, year) ||
		centuryPattern.MatchString(item.Description)
}

// Partition splits items into the general and family pools, preserving order.
func Partition(items []domain.Item) (general, family []domain.Item) {
	for _, item := range items {
		if item.IsFamily() {
			family = append(family, item)
		} else {
			general = append(general, item)
		}
	}
	return general, family
}
