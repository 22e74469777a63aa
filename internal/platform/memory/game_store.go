package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/chrono-api/internal/domain"
	"github.com/phrazzld/chrono-api/internal/store"
)

// Verify interface compliance at compile time
var _ store.GameStore = (*GameStore)(nil)

// GameStore keeps game sessions in a map guarded by a single lock.
type GameStore struct {
	mu     sync.RWMutex
	games  map[uuid.UUID]*domain.Game
	logger *slog.Logger
}

// NewGameStore creates an empty GameStore.
func NewGameStore(logger *slog.Logger) *GameStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &GameStore{
		games:  make(map[uuid.UUID]*domain.Game),
		logger: logger.With(slog.String("component", "memory_game_store")),
	}
}

// Create implements store.GameStore.
func (s *GameStore) Create(ctx context.Context, game *domain.Game) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if game == nil || game.ID == uuid.Nil {
		return store.NewStoreError("game", "create", "game must have an ID", store.ErrInvalidEntity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[game.ID]; exists {
		return store.ErrGameExists
	}
	s.games[game.ID] = game.Clone()

	s.logger.Debug("game created",
		slog.String("game_id", game.ID.String()),
		slog.Int("session_count", len(s.games)))
	return nil
}

// Get implements store.GameStore.
func (s *GameStore) Get(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	game, ok := s.games[id]
	if !ok {
		return nil, store.ErrGameNotFound
	}
	return game.Clone(), nil
}

// Update implements store.GameStore.
func (s *GameStore) Update(
	ctx context.Context,
	id uuid.UUID,
	fn func(game *domain.Game) error,
) (*domain.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.games[id]
	if !ok {
		return nil, store.ErrGameNotFound
	}

	working := current.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	// The session ID is the map key and cannot change.
	working.ID = id
	s.games[id] = working

	return working.Clone(), nil
}

// Delete implements store.GameStore.
func (s *GameStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[id]; !ok {
		return store.ErrGameNotFound
	}
	delete(s.games, id)

	s.logger.Debug("game deleted",
		slog.String("game_id", id.String()),
		slog.Int("session_count", len(s.games)))
	return nil
}

// Len returns the number of stored games.
func (s *GameStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}
