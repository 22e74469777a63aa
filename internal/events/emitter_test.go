package events

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryEventEmitter(t *testing.T) {
	t.Parallel()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gameID := uuid.New()

	t.Run("emit event with no handlers", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)
		event, err := NewGameEvent(TypeGameStarted, gameID, GameStartedPayload{DeckSize: 10})
		require.NoError(t, err)

		assert.NoError(t, emitter.EmitEvent(context.Background(), event))
		assert.Equal(t, 0, emitter.HandlerCount())
	})

	t.Run("emit event with successful handlers", func(t *testing.T) {
		handler1 := &MockEventHandler{}
		handler2 := &MockEventHandler{}
		emitter := NewInMemoryEventEmitter(logger, handler1)
		emitter.RegisterHandler(handler2)
		assert.Equal(t, 2, emitter.HandlerCount())

		event, err := NewGameEvent(TypeCardPlaced, gameID, CardPlacedPayload{ItemID: "Q1", Correct: true})
		require.NoError(t, err)

		require.NoError(t, emitter.EmitEvent(context.Background(), event))
		assert.Equal(t, 1, handler1.HandledCount)
		assert.Equal(t, 1, handler2.HandledCount)
		assert.Equal(t, event, handler1.LastEvent)
		assert.Equal(t, event, handler2.LastEvent)
	})

	t.Run("emit event with failing handler", func(t *testing.T) {
		failingHandler := &MockEventHandler{HandlerError: errors.New("handler error")}
		laterFailure := &MockEventHandler{HandlerError: errors.New("later error")}
		successHandler := &MockEventHandler{}
		emitter := NewInMemoryEventEmitter(logger, failingHandler, successHandler, laterFailure)

		event, err := NewGameEvent(TypeGameOver, gameID, GameOverPayload{Score: 4})
		require.NoError(t, err)

		err = emitter.EmitEvent(context.Background(), event)
		require.Error(t, err)
		assert.Equal(t, "handler error", err.Error(), "the first error is returned")

		assert.Equal(t, 1, failingHandler.HandledCount)
		assert.Equal(t, 1, successHandler.HandledCount)
		assert.Equal(t, 1, laterFailure.HandledCount)
	})
}

func TestLogHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := NewLogHandler(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))

	placed, err := NewGameEvent(TypeCardPlaced, uuid.New(), CardPlacedPayload{ItemID: "Q1"})
	require.NoError(t, err)
	require.NoError(t, handler.HandleEvent(context.Background(), placed))
	assert.Empty(t, buf.String(), "placements are logged at debug level")

	over, err := NewGameEvent(TypeGameOver, uuid.New(), GameOverPayload{Score: 7})
	require.NoError(t, err)
	require.NoError(t, handler.HandleEvent(context.Background(), over))
	assert.Contains(t, buf.String(), `"event_type":"game.over"`)
	assert.Contains(t, buf.String(), `"component":"game_events"`)
}
