package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"cattags/internal/delivery/http/helpers"
	"cattags/internal/domain"
)

// writeServiceError maps a tag service error to a status code and error envelope.
// Unexpected errors are logged and returned as 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var invalid *domain.InvalidTagError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "Tag cannot be empty")
	case errors.Is(err, domain.ErrTagExists):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeConflict, err.Error())
	case errors.As(err, &invalid):
		helpers.WriteAPIError(w, http.StatusBadRequest, &helpers.APIError{
			Code:        helpers.ErrCodeInvalidTag,
			Message:     invalid.Error(),
			Suggestions: invalid.Suggestions,
		})
	case errors.Is(err, domain.ErrTagNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, err.Error())
	case errors.Is(err, domain.ErrPictureNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, domain.ErrPictureNotFound.Error())
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		logger.WarnContext(r.Context(), "upstream unavailable", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeUpstreamUnavailable, err.Error())
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}
