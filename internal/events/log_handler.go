package events

import (
	"context"
	"log/slog"
)

// LogHandler writes every game event to a structured logger.
type LogHandler struct {
	logger *slog.Logger
}

// NewLogHandler creates a LogHandler that logs through logger.
func NewLogHandler(logger *slog.Logger) *LogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogHandler{logger: logger.With(slog.String("component", "game_events"))}
}

// HandleEvent implements the EventHandler interface
func (h *LogHandler) HandleEvent(ctx context.Context, event *GameEvent) error {
	level := slog.LevelDebug
	if event.Type != TypeCardPlaced {
		level = slog.LevelInfo
	}

	h.logger.Log(ctx, level, "game event",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", event.Type),
		slog.String("game_id", event.GameID.String()),
		slog.String("payload", string(event.Payload)))
	return nil
}
