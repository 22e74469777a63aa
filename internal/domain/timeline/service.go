package timeline

import (
	"errors"

	"github.com/phrazzld/chrono-api/internal/domain"
)

// Common errors
var (
	ErrEmptyDeck       = errors.New("deck cannot be empty")
	ErrInvalidGap      = errors.New("deck gap must be at least 1")
	ErrIndexOutOfRange = errors.New("placement index out of range")
	ErrNilRandom       = errors.New("random source cannot be nil")
)

// Placement is the verdict on where a player put a card.
type Placement struct {
	// Correct is true when the card went into its chronological slot
	Correct bool `json:"correct"`
	// Delta is the correct slot minus the guessed slot, 0 when correct
	Delta int `json:"delta"`
}

// CorrectIndex returns the slot the card belonged in, given the guessed slot.
func (p Placement) CorrectIndex(guessedIndex int) int {
	return guessedIndex + p.Delta
}

// Service defines the interface for dealing and scoring timeline cards
type Service interface {
	// BuildDeck interleaves the general and family pools, dealing one family
	// card after every gap general cards. Returns ErrInvalidGap if gap < 1.
	BuildDeck(general, family []domain.Item, gap int) ([]domain.Item, error)

	// SelectNext picks the next card to present from deck given the items
	// already played. Returns ErrEmptyDeck if deck is empty; otherwise it
	// always returns an item from deck.
	SelectNext(deck, played []domain.Item) (domain.Item, error)

	// CheckPlacement scores inserting drawn at guessedIndex among played.
	// Returns ErrIndexOutOfRange unless 0 <= guessedIndex <= len(played).
	CheckPlacement(played []domain.Item, drawn domain.Item, guessedIndex int) (Placement, error)
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
	rng    Random
}

// NewServiceWithParams creates a new timeline service with custom parameters
func NewServiceWithParams(params *Params, rng Random) (Service, error) {
	if params == nil {
		return nil, ErrInvalidParams
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNilRandom
	}

	return &defaultService{
		params: params,
		rng:    rng,
	}, nil
}

// BuildDeck implements the Service interface
func (s *defaultService) BuildDeck(general, family []domain.Item, gap int) ([]domain.Item, error) {
	if gap < 1 {
		return nil, ErrInvalidGap
	}
	return buildDeck(general, family, gap), nil
}

// SelectNext implements the Service interface
func (s *defaultService) SelectNext(deck, played []domain.Item) (domain.Item, error) {
	if len(deck) == 0 {
		return domain.Item{}, ErrEmptyDeck
	}
	return selectNext(deck, played, s.params, s.rng), nil
}

// CheckPlacement implements the Service interface
func (s *defaultService) CheckPlacement(
	played []domain.Item,
	drawn domain.Item,
	guessedIndex int,
) (Placement, error) {
	if guessedIndex < 0 || guessedIndex > len(played) {
		return Placement{}, ErrIndexOutOfRange
	}
	return checkPlacement(played, drawn, guessedIndex), nil
}
