package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/chrono-api/internal/domain"
)

// GameStore defines the interface for game session persistence.
//
// Implementations hand out copies: mutating a game returned by Get has no
// effect on the stored session. All changes go through Update.
type GameStore interface {
	// Create stores a new game.
	// Returns ErrGameExists if a game with the same ID is already stored.
	Create(ctx context.Context, game *domain.Game) error

	// Get retrieves a game by its ID.
	// Returns ErrGameNotFound if the game does not exist.
	Get(ctx context.Context, id uuid.UUID) (*domain.Game, error)

	// Update applies fn to a copy of the stored game and saves the copy only if
	// fn returns nil. Calls for the same game are serialized, so fn sees the
	// result of every earlier successful update.
	// Returns ErrGameNotFound if the game does not exist, or fn's error.
	Update(ctx context.Context, id uuid.UUID, fn func(game *domain.Game) error) (*domain.Game, error)

	// Delete removes a game by its ID.
	// Returns ErrGameNotFound if the game does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
