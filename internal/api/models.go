package api

import (
	"time"

	"github.com/phrazzld/chrono-api/internal/domain"
	"github.com/phrazzld/chrono-api/internal/media"
)

// PlacementRequest is the body of POST /api/games/{id}/placements.
// Index is a pointer so that a missing index is distinguishable from 0.
type PlacementRequest struct {
	Index *int `json:"index" validate:"required"`
}

// CardResponse is one item as shown to the player.
type CardResponse struct {
	ID             string `json:"id"`
	Label          string `json:"label"`
	Description    string `json:"description,omitempty"`
	Category       string `json:"category,omitempty"`
	Year           *int   `json:"year,omitempty"`
	ImageURL       string `json:"image_url,omitempty"`
	WikipediaTitle string `json:"wikipedia_title,omitempty"`
}

// LastPlacementResponse describes the player's most recent placement.
type LastPlacementResponse struct {
	ItemID       string `json:"item_id"`
	GuessedIndex int    `json:"guessed_index"`
	Correct      bool   `json:"correct"`
	Delta        int    `json:"delta"`
}

// GameResponse is the player's view of a game. The pending card's year is
// never included.
type GameResponse struct {
	ID             string                 `json:"id"`
	Status         string                 `json:"status"`
	Lives          int                    `json:"lives"`
	Score          int                    `json:"score"`
	RemainingCards int                    `json:"remaining_cards"`
	Timeline       []CardResponse         `json:"timeline"`
	Next           *CardResponse          `json:"next,omitempty"`
	LastPlacement  *LastPlacementResponse `json:"last_placement,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// PlacementResponse is the result of POST /api/games/{id}/placements.
type PlacementResponse struct {
	Correct bool         `json:"correct"`
	Delta   int          `json:"delta"`
	Game    GameResponse `json:"game"`
}

// newCardResponse converts an item; revealYear controls whether its year is shown.
func newCardResponse(item domain.Item, revealYear bool, imageWidth int) CardResponse {
	card := CardResponse{
		ID:             item.ID,
		Label:          item.Label,
		Description:    item.Description,
		Category:       item.Category,
		ImageURL:       media.ImageURL(item.Image, imageWidth),
		WikipediaTitle: item.WikipediaTitle,
	}
	if revealYear {
		year := item.Year
		card.Year = &year
	}
	return card
}

func newGameResponse(g *domain.Game, imageWidth int) GameResponse {
	resp := GameResponse{
		ID:             g.ID.String(),
		Status:         string(g.Status),
		Lives:          g.Lives,
		Score:          g.Score,
		RemainingCards: len(g.Deck),
		Timeline:       make([]CardResponse, 0, len(g.Timeline)),
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
	for _, item := range g.Timeline {
		resp.Timeline = append(resp.Timeline, newCardResponse(item, true, imageWidth))
	}
	if g.Next != nil {
		next := newCardResponse(*g.Next, false, imageWidth)
		resp.Next = &next
	}
	if p := g.LastPlacement; p != nil {
		resp.LastPlacement = &LastPlacementResponse{
			ItemID:       p.ItemID,
			GuessedIndex: p.GuessedIndex,
			Correct:      p.Correct,
			Delta:        p.Delta,
		}
	}
	return resp
}
