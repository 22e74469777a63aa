package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// GameStatus is the lifecycle state of a game session.
type GameStatus string

// Possible game status values
const (
	GameStatusActive GameStatus = "active"
	GameStatusOver   GameStatus = "over"
)

// PlacementRecord remembers the outcome of the most recent placement.
type PlacementRecord struct {
	ItemID       string `json:"item_id"`
	GuessedIndex int    `json:"guessed_index"`
	Correct      bool   `json:"correct"`
	Delta        int    `json:"delta"`
}

// Game is the round state of one play session: the cards still to deal, the
// timeline built so far and the card waiting to be placed.
type Game struct {
	ID uuid.UUID `json:"id"`

	// Deck holds the cards not yet dealt
	Deck []Item `json:"deck"`

	// Timeline holds every placed card, sorted by year
	Timeline []Item `json:"timeline"`

	// Next is the drawn card awaiting placement; nil once the game is over
	Next *Item `json:"next,omitempty"`

	Lives         int              `json:"lives"`
	Score         int              `json:"score"`
	Status        GameStatus       `json:"status"`
	LastPlacement *PlacementRecord `json:"last_placement,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// IsOver reports whether the game accepts no more placements.
func (g *Game) IsOver() bool {
	return g.Status == GameStatusOver
}

// Clone returns a copy of the game that shares no mutable state with g.
// Items themselves are treated as immutable and copied by value.
func (g *Game) Clone() *Game {
	c := *g
	c.Deck = slices.Clone(g.Deck)
	c.Timeline = slices.Clone(g.Timeline)
	if g.Next != nil {
		next := *g.Next
		c.Next = &next
	}
	if g.LastPlacement != nil {
		last := *g.LastPlacement
		c.LastPlacement = &last
	}
	return &c
}
