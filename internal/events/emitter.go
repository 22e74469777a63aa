package events

import (
	"context"
	"log/slog"
	"sync"
)

// Verify interface compliance at compile time
var _ EventEmitter = (*InMemoryEventEmitter)(nil)

// InMemoryEventEmitter dispatches game events synchronously to handlers
// registered in memory.
type InMemoryEventEmitter struct {
	mu       sync.RWMutex
	handlers []EventHandler
	logger   *slog.Logger
}

// NewInMemoryEventEmitter creates an emitter with the given initial handlers.
func NewInMemoryEventEmitter(logger *slog.Logger, handlers ...EventHandler) *InMemoryEventEmitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &InMemoryEventEmitter{
		handlers: append([]EventHandler(nil), handlers...),
		logger:   logger.With(slog.String("component", "game_event_emitter")),
	}
}

// RegisterHandler adds a handler that receives every subsequent event.
func (e *InMemoryEventEmitter) RegisterHandler(handler EventHandler) {
	e.mu.Lock()
	e.handlers = append(e.handlers, handler)
	count := len(e.handlers)
	e.mu.Unlock()

	e.logger.Debug("registered event handler", slog.Int("handler_count", count))
}

// HandlerCount returns the number of registered handlers.
func (e *InMemoryEventEmitter) HandlerCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.handlers)
}

// EmitEvent delivers event to every registered handler in registration order.
// A failing handler does not stop delivery to the rest; the first error is
// returned once all handlers have run.
func (e *InMemoryEventEmitter) EmitEvent(ctx context.Context, event *GameEvent) error {
	e.mu.RLock()
	handlers := append([]EventHandler(nil), e.handlers...)
	e.mu.RUnlock()

	log := e.logger.With(
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", event.Type),
		slog.String("game_id", event.GameID.String()))

	if len(handlers) == 0 {
		log.Debug("no handlers registered for event")
		return nil
	}

	var firstErr error
	for i, handler := range handlers {
		if err := handler.HandleEvent(ctx, event); err != nil {
			log.Error("handler failed to process event",
				slog.Int("handler_index", i),
				slog.String("error", err.Error()))
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}
