package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types emitted over a game's lifecycle.
const (
	TypeGameStarted = "game.started"
	TypeCardPlaced  = "card.placed"
	TypeGameOver    = "game.over"
)

// GameEvent records something that happened in one game session.
type GameEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type is one of the Type* constants
	Type string `json:"type"`

	// GameID identifies the session the event belongs to
	GameID uuid.UUID `json:"game_id"`

	// Payload contains the type-specific data serialized as JSON
	Payload json.RawMessage `json:"payload"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// GameStartedPayload is the payload of a game.started event.
type GameStartedPayload struct {
	DeckSize int    `json:"deck_size"`
	FirstID  string `json:"first_id"`
	Lives    int    `json:"lives"`
}

// CardPlacedPayload is the payload of a card.placed event.
type CardPlacedPayload struct {
	ItemID       string `json:"item_id"`
	GuessedIndex int    `json:"guessed_index"`
	Correct      bool   `json:"correct"`
	Delta        int    `json:"delta"`
	Lives        int    `json:"lives"`
	Score        int    `json:"score"`
}

// GameOverPayload is the payload of a game.over event.
type GameOverPayload struct {
	Score        int `json:"score"`
	TimelineSize int `json:"timeline_size"`
	CardsLeft    int `json:"cards_left"`
	LivesLeft    int `json:"lives_left"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *GameEvent) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewGameEvent creates a new GameEvent with the specified type and payload.
func NewGameEvent(eventType string, gameID uuid.UUID, payload interface{}) (*GameEvent, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &GameEvent{
		ID:        uuid.New(),
		Type:      eventType,
		GameID:    gameID,
		Payload:   payloadBytes,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *GameEvent) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *GameEvent) error
}
