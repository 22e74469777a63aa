package catalog

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/phrazzld/chrono-api/internal/domain"
)

var (
	// ErrMalformedLine is returned when a catalog line is not a JSON item.
	ErrMalformedLine = errors.New("malformed catalog line")

	// ErrMissingYear is returned alongside ErrMalformedLine for a record
	// without a year. Year 0 is a real answer, so it is never assumed.
	ErrMissingYear = errors.New("year is required")
)

// record decodes one catalog line. The outer Year shadows the embedded one
// so that an absent or null year can be told apart from year 0.
type record struct {
	domain.Item
	Year *int `json:"year"`
}

// maxLineSize bounds a single catalog record.
const maxLineSize = 1 << 20

// Parse reads newline-delimited JSON items from r. Blank lines are skipped.
// A line that does not decode, or has no year, is reported with its 1-based
// line number.
func Parse(r io.Reader) ([]domain.Item, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var items []domain.Item
	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}

		var rec record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("%w %d: %v", ErrMalformedLine, line, err)
		}
		if rec.Year == nil {
			return nil, fmt.Errorf("%w %d: %w", ErrMalformedLine, line, ErrMissingYear)
		}
		item := rec.Item
		item.Year = *rec.Year
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	return items, nil
}
