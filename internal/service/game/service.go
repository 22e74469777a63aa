package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/phrazzld/chrono-api/internal/domain"
	"github.com/phrazzld/chrono-api/internal/domain/timeline"
)

// DefaultLives is the number of misses a player may make before the game ends.
const DefaultLives = 3

// Common error types for Service
var (
	// ErrGameNotFound indicates that no session exists with the given ID.
	ErrGameNotFound = errors.New("game not found")

	// ErrGameOver indicates that the game no longer accepts placements.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidPlacement indicates a placement index outside the timeline.
	ErrInvalidPlacement = errors.New("invalid placement")

	// ErrCatalogTooSmall indicates the catalog cannot fill a first round.
	ErrCatalogTooSmall = errors.New("catalog needs at least two items to start a game")

	// ErrInvalidConfig indicates unusable service settings.
	ErrInvalidConfig = errors.New("invalid game config")
)

// Config holds the gameplay settings of the service.
type Config struct {
	// Lives is the starting number of lives
	Lives int
	// DeckGap is the number of general cards dealt between family cards
	DeckGap int
}

// DefaultConfig returns the standard gameplay settings.
func DefaultConfig() Config {
	return Config{
		Lives:   DefaultLives,
		DeckGap: timeline.DefaultDeckGap,
	}
}

// Validate checks that the settings can run a game.
func (c Config) Validate() error {
	if c.Lives < 1 {
		return fmt.Errorf("%w: lives must be at least 1, got %d", ErrInvalidConfig, c.Lives)
	}
	if c.DeckGap < 1 {
		return fmt.Errorf("%w: deck gap must be at least 1, got %d", ErrInvalidConfig, c.DeckGap)
	}
	return nil
}

// PlacementResult is the outcome of one placement together with the game
// state after it was applied.
type PlacementResult struct {
	Placement timeline.Placement
	Game      *domain.Game
}

// Service manages timeline game sessions.
type Service interface {
	// NewGame builds a fresh deck from the catalog, deals the first card onto
	// the timeline and draws the card the player must place next.
	//
	// Returns:
	//   - (*domain.Game, nil): the newly stored game
	//   - (nil, ErrCatalogTooSmall): if the catalog holds fewer than two items
	//   - (nil, error): any other failure, wrapped in a ServiceError
	NewGame(ctx context.Context) (*domain.Game, error)

	// GetGame returns the current state of a game.
	// Returns ErrGameNotFound if the game does not exist.
	GetGame(ctx context.Context, id uuid.UUID) (*domain.Game, error)

	// PlaceCard puts the pending card at index in the timeline and scores it.
	//
	// The card always ends up in its correct slot. A correct guess adds a
	// point, a wrong one costs a life. The game ends when no lives remain or
	// the deck is empty; otherwise the next card is drawn.
	//
	// Returns:
	//   - (*PlacementResult, nil): the verdict and the updated game
	//   - (nil, ErrGameNotFound): if the game does not exist
	//   - (nil, ErrGameOver): if the game has already ended
	//   - (nil, ErrInvalidPlacement): if index is outside [0, len(timeline)]
	PlaceCard(ctx context.Context, id uuid.UUID, index int) (*PlacementResult, error)

	// AbandonGame discards a game session.
	// Returns ErrGameNotFound if the game does not exist.
	AbandonGame(ctx context.Context, id uuid.UUID) error
}

// ServiceError wraps errors from the game service with additional context.
// This allows consumers to differentiate between different types of service errors
// using errors.As instead of string matching.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "new_game", "place_card")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError returns a new ServiceError for the given operation.
func NewServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
