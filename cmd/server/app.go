package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/chrono-api/internal/catalog"
	"github.com/phrazzld/chrono-api/internal/config"
	"github.com/phrazzld/chrono-api/internal/domain/timeline"
	"github.com/phrazzld/chrono-api/internal/events"
	"github.com/phrazzld/chrono-api/internal/platform/memory"
	"github.com/phrazzld/chrono-api/internal/service/game"
	"github.com/phrazzld/chrono-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger  *slog.Logger
	catalog *catalog.Catalog

	// Stores (using interfaces for proper abstraction)
	gameStore store.GameStore

	// Service interfaces
	timelineService timeline.Service
	gameService     game.Service

	// Event system
	eventEmitter *events.InMemoryEventEmitter
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger, cat *catalog.Catalog) (*application, error) {
	app := &application{
		config:  cfg,
		logger:  logger,
		catalog: cat,
	}

	params, err := timeline.NewParams(timeline.ParamsConfig{
		FamilyProbability:      cfg.Game.FamilyProbability,
		AvoidPeopleProbability: cfg.Game.AvoidPeopleProbability,
	})
	if err != nil {
		return nil, fmt.Errorf("invalid timeline parameters: %w", err)
	}

	rng := timeline.NewRandom()
	if cfg.Game.Seed != 0 {
		rng = timeline.NewSeededRandom(cfg.Game.Seed)
		logger.Warn("card selection is seeded; every game deals the same sequence",
			slog.Uint64("seed", cfg.Game.Seed))
	}

	app.timelineService, err = timeline.NewServiceWithParams(params, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create timeline service: %w", err)
	}

	app.gameStore = memory.NewGameStore(logger)
	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.RegisterHandler(events.NewLogHandler(logger))

	// Zero values fall back to the gameplay defaults.
	gameConfig := game.DefaultConfig()
	if cfg.Game.Lives != 0 {
		gameConfig.Lives = cfg.Game.Lives
	}
	if cfg.Game.DeckGap != 0 {
		gameConfig.DeckGap = cfg.Game.DeckGap
	}

	app.gameService, err = game.NewService(
		gameConfig,
		cat,
		app.timelineService,
		app.gameStore,
		app.eventEmitter,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create game service: %w", err)
	}

	logger.Info("application initialized",
		slog.Int("catalog_general", len(cat.General)),
		slog.Int("catalog_family", len(cat.Family)),
		slog.Int("lives", gameConfig.Lives),
		slog.Int("deck_gap", gameConfig.DeckGap),
		slog.Int("event_handlers", app.eventEmitter.HandlerCount()))

	return app, nil
}

// cleanup releases application resources on shutdown.
func (app *application) cleanup() {
	if s, ok := app.gameStore.(*memory.GameStore); ok {
		app.logger.Info("discarding in-memory game sessions", slog.Int("session_count", s.Len()))
	}
}
