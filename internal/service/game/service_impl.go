package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/chrono-api/internal/catalog"
	"github.com/phrazzld/chrono-api/internal/domain"
	"github.com/phrazzld/chrono-api/internal/domain/timeline"
	"github.com/phrazzld/chrono-api/internal/events"
	"github.com/phrazzld/chrono-api/internal/platform/logger"
	"github.com/phrazzld/chrono-api/internal/store"
)

// Verify interface compliance at compile time
var _ Service = (*gameServiceImpl)(nil)

// gameServiceImpl implements the Service interface.
type gameServiceImpl struct {
	config  Config
	catalog *catalog.Catalog
	engine  timeline.Service
	store   store.GameStore
	emitter events.EventEmitter
	logger  *slog.Logger
	now     func() time.Time
}

// NewService creates a new game Service.
// It panics if any required dependency is nil and returns ErrInvalidConfig
// for unusable settings.
func NewService(
	config Config,
	cat *catalog.Catalog,
	engine timeline.Service,
	gameStore store.GameStore,
	emitter events.EventEmitter,
	logger *slog.Logger,
) (Service, error) {
	if cat == nil {
		panic("catalog cannot be nil")
	}
	if engine == nil {
		panic("engine cannot be nil")
	}
	if gameStore == nil {
		panic("gameStore cannot be nil")
	}
	if emitter == nil {
		panic("emitter cannot be nil")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &gameServiceImpl{
		config:  config,
		catalog: cat,
		engine:  engine,
		store:   gameStore,
		emitter: emitter,
		logger:  logger.With(slog.String("component", "game_service")),
		now:     func() time.Time { return time.Now().UTC() },
	}, nil
}

// NewGame implements Service.NewGame.
func (s *gameServiceImpl) NewGame(ctx context.Context) (*domain.Game, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if s.catalog.Size() < 2 {
		log.Warn("catalog too small to start a game", slog.Int("catalog_size", s.catalog.Size()))
		return nil, ErrCatalogTooSmall
	}

	deck, err := s.engine.BuildDeck(s.catalog.General, s.catalog.Family, s.config.DeckGap)
	if err != nil {
		return nil, NewServiceError("new_game", "failed to build deck", err)
	}
	deckSize := len(deck)

	first, deck, err := s.draw(deck, nil)
	if err != nil {
		return nil, NewServiceError("new_game", "failed to deal first card", err)
	}
	played := []domain.Item{first}

	next, deck, err := s.draw(deck, played)
	if err != nil {
		return nil, NewServiceError("new_game", "failed to draw card", err)
	}

	now := s.now()
	game := &domain.Game{
		ID:        uuid.New(),
		Deck:      deck,
		Timeline:  played,
		Next:      &next,
		Lives:     s.config.Lives,
		Status:    domain.GameStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Create(ctx, game); err != nil {
		log.Error("failed to store new game",
			slog.String("error", err.Error()),
			slog.String("game_id", game.ID.String()))
		return nil, NewServiceError("new_game", "failed to store game", err)
	}

	log.Info("game started",
		slog.String("game_id", game.ID.String()),
		slog.Int("deck_size", deckSize))

	s.emit(ctx, events.TypeGameStarted, game.ID, events.GameStartedPayload{
		DeckSize: deckSize,
		FirstID:  first.ID,
		Lives:    game.Lives,
	})

	return game, nil
}

// GetGame implements Service.GetGame.
func (s *gameServiceImpl) GetGame(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	game, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, s.mapStoreError(ctx, "get_game", id, err)
	}
	return game, nil
}

// PlaceCard implements Service.PlaceCard.
func (s *gameServiceImpl) PlaceCard(ctx context.Context, id uuid.UUID, index int) (*PlacementResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var placement timeline.Placement
	game, err := s.store.Update(ctx, id, func(g *domain.Game) error {
		if g.IsOver() || g.Next == nil {
			return ErrGameOver
		}
		drawn := *g.Next

		p, err := s.engine.CheckPlacement(g.Timeline, drawn, index)
		if err != nil {
			if errors.Is(err, timeline.ErrIndexOutOfRange) {
				return fmt.Errorf("%w: index %d not in [0, %d]", ErrInvalidPlacement, index, len(g.Timeline))
			}
			return err
		}
		placement = p

		g.Timeline = slices.Insert(g.Timeline, p.CorrectIndex(index), drawn)
		if p.Correct {
			g.Score++
		} else {
			g.Lives--
		}
		g.LastPlacement = &domain.PlacementRecord{
			ItemID:       drawn.ID,
			GuessedIndex: index,
			Correct:      p.Correct,
			Delta:        p.Delta,
		}
		g.UpdatedAt = s.now()

		if g.Lives <= 0 || len(g.Deck) == 0 {
			g.Next = nil
			g.Status = domain.GameStatusOver
			return nil
		}

		next, deck, err := s.draw(g.Deck, g.Timeline)
		if err != nil {
			return err
		}
		g.Deck = deck
		g.Next = &next
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrGameOver), errors.Is(err, ErrInvalidPlacement):
			log.Debug("placement rejected",
				slog.String("game_id", id.String()),
				slog.Int("index", index),
				slog.String("reason", err.Error()))
			return nil, err
		default:
			return nil, s.mapStoreError(ctx, "place_card", id, err)
		}
	}

	last := game.LastPlacement
	log.Debug("card placed",
		slog.String("game_id", id.String()),
		slog.String("item_id", last.ItemID),
		slog.Bool("correct", placement.Correct),
		slog.Int("delta", placement.Delta))

	s.emit(ctx, events.TypeCardPlaced, id, events.CardPlacedPayload{
		ItemID:       last.ItemID,
		GuessedIndex: index,
		Correct:      placement.Correct,
		Delta:        placement.Delta,
		Lives:        game.Lives,
		Score:        game.Score,
	})
	if game.IsOver() {
		s.emit(ctx, events.TypeGameOver, id, events.GameOverPayload{
			Score:        game.Score,
			TimelineSize: len(game.Timeline),
			CardsLeft:    len(game.Deck),
			LivesLeft:    game.Lives,
		})
	}

	return &PlacementResult{Placement: placement, Game: game}, nil
}

// AbandonGame implements Service.AbandonGame.
func (s *gameServiceImpl) AbandonGame(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return s.mapStoreError(ctx, "abandon_game", id, err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("game abandoned", slog.String("game_id", id.String()))
	return nil
}

// draw selects the next card from deck and returns it with the deck minus
// that card. The input slice may be reused.
func (s *gameServiceImpl) draw(deck, played []domain.Item) (domain.Item, []domain.Item, error) {
	item, err := s.engine.SelectNext(deck, played)
	if err != nil {
		return domain.Item{}, deck, err
	}
	i := slices.IndexFunc(deck, func(d domain.Item) bool { return d.ID == item.ID })
	if i < 0 {
		return domain.Item{}, deck, fmt.Errorf("selected item %q is not in the deck", item.ID)
	}
	return item, slices.Delete(deck, i, i+1), nil
}

// emit publishes an event. Delivery failures are logged and never fail the
// operation that produced the event.
func (s *gameServiceImpl) emit(ctx context.Context, eventType string, gameID uuid.UUID, payload interface{}) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	event, err := events.NewGameEvent(eventType, gameID, payload)
	if err != nil {
		log.Error("failed to create event",
			slog.String("error", err.Error()),
			slog.String("event_type", eventType))
		return
	}
	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		log.Warn("failed to emit event",
			slog.String("error", err.Error()),
			slog.String("event_type", eventType),
			slog.String("game_id", gameID.String()))
	}
}

// mapStoreError translates store errors into service errors.
func (s *gameServiceImpl) mapStoreError(ctx context.Context, operation string, id uuid.UUID, err error) error {
	if store.IsNotFoundError(err) {
		return ErrGameNotFound
	}
	logger.FromContextOrDefault(ctx, s.logger).Error("game store operation failed",
		slog.String("operation", operation),
		slog.String("game_id", id.String()),
		slog.String("error", err.Error()))
	return NewServiceError(operation, "game store failure", err)
}
