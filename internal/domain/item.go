package domain

import (
	"errors"
	"slices"
)

// CategoryFamily is the category of the secondary "family" pool. Every other
// category value is treated as general trivia.
const CategoryFamily = "family"

// InstanceHuman is the instance_of tag carried by items describing a person.
const InstanceHuman = "human"

// Item-specific validation errors
var (
	// ErrItemIDEmpty is returned when an item has no ID.
	ErrItemIDEmpty = errors.New("item ID cannot be empty")

	// ErrItemLabelEmpty is returned when an item has no label.
	ErrItemLabelEmpty = errors.New("item label cannot be empty")
)

// Item is one dateable catalog entry: a historical fact, person or event.
// Items are values and are never mutated once loaded.
type Item struct {
	ID             string   `json:"id"`
	Year           int      `json:"year"`
	Category       string   `json:"category,omitempty"`
	InstanceOf     []string `json:"instance_of"`
	Label          string   `json:"label"`
	Description    string   `json:"description"`
	Image          string   `json:"image,omitempty"`
	WikipediaTitle string   `json:"wikipedia_title,omitempty"`
}

// Validate checks if the Item has the fields the game relies on.
func (i Item) Validate() error {
	if i.ID == "" {
		return ErrItemIDEmpty
	}

	if i.Label == "" {
		return ErrItemLabelEmpty
	}

	return nil
}

// IsFamily reports whether the item belongs to the family pool.
func (i Item) IsFamily() bool {
	return i.Category == CategoryFamily
}

// IsHuman reports whether the item describes a person.
func (i Item) IsHuman() bool {
	return slices.Contains(i.InstanceOf, InstanceHuman)
}
