package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/chrono-api/internal/api/shared"
	"github.com/phrazzld/chrono-api/internal/media"
	"github.com/phrazzld/chrono-api/internal/platform/logger"
	"github.com/phrazzld/chrono-api/internal/service/game"
)

// GameHandler handles game session HTTP requests
type GameHandler struct {
	gameService game.Service
	imageWidth  int
	logger      *slog.Logger
}

// NewGameHandler creates a new GameHandler. imageWidth <= 0 uses the
// default thumbnail width.
func NewGameHandler(gameService game.Service, imageWidth int, logger *slog.Logger) *GameHandler {
	if gameService == nil {
		panic("gameService cannot be nil for GameHandler")
	}
	if logger == nil {
		panic("logger cannot be nil for GameHandler")
	}
	if imageWidth <= 0 {
		imageWidth = media.DefaultImageWidth
	}

	return &GameHandler{
		gameService: gameService,
		imageWidth:  imageWidth,
		logger:      logger.With(slog.String("component", "game_handler")),
	}
}

// Routes registers the game endpoints on r.
func (h *GameHandler) Routes(r chi.Router) {
	r.Post("/games", h.CreateGame)
	r.Get("/games/{id}", h.GetGame)
	r.Post("/games/{id}/placements", h.PlaceCard)
	r.Delete("/games/{id}", h.AbandonGame)
}

// CreateGame handles POST /games requests
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	g, err := h.gameService.NewGame(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Debug("game created", slog.String("game_id", g.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, newGameResponse(g, h.imageWidth))
}

// GetGame handles GET /games/{id} requests
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	g, err := h.gameService.GetGame(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newGameResponse(g, h.imageWidth))
}

// PlaceCard handles POST /games/{id}/placements requests
func (h *GameHandler) PlaceCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req PlacementRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("invalid placement body", slog.String("error", err.Error()))
		if MapErrorToStatusCode(err) == http.StatusBadRequest {
			HandleAPIError(w, r, err, "")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	result, err := h.gameService.PlaceCard(r.Context(), id, *req.Index)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PlacementResponse{
		Correct: result.Placement.Correct,
		Delta:   result.Placement.Delta,
		Game:    newGameResponse(result.Game, h.imageWidth),
	})
}

// AbandonGame handles DELETE /games/{id} requests
func (h *GameHandler) AbandonGame(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.gameService.AbandonGame(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
