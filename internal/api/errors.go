package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/chrono-api/internal/api/shared"
	"github.com/phrazzld/chrono-api/internal/domain"
	"github.com/phrazzld/chrono-api/internal/service/game"
	"github.com/phrazzld/chrono-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	// Not found errors
	case errors.Is(err, game.ErrGameNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, game.ErrGameOver):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, game.ErrInvalidPlacement),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidFormat),
		errors.Is(err, shared.ErrEmptyBody),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, game.ErrGameNotFound),
		errors.Is(err, store.ErrNotFound):
		return "Game not found"
	case errors.Is(err, game.ErrGameOver):
		return "Game is over"
	case errors.Is(err, game.ErrInvalidPlacement):
		return "Placement index is outside the timeline"
	case errors.Is(err, game.ErrCatalogTooSmall):
		return "Not enough items to start a game"
	case errors.Is(err, shared.ErrEmptyBody):
		return "Request body is required"
	case errors.As(err, &validationErrs):
		return SanitizeValidationError(validationErrs)
	case errors.Is(err, domain.ErrInvalidFormat):
		return "Invalid ID format"
	case errors.Is(err, domain.ErrValidation):
		return "Invalid request"
	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns validator errors into a message naming the
// first offending field.
func SanitizeValidationError(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return "Validation error"
	}
	first := errs[0]
	return "Invalid " + first.Field() + ": " + getValidationTagMessage(first.Tag())
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min", "gte":
		return "too small"
	case "max", "lte":
		return "too large"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the error response for err. A non-empty message
// overrides the default safe message for the error.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), message, err)
}
