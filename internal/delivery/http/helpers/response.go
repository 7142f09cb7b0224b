package helpers

import (
	"encoding/json"
	"net/http"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeBadRequest          = "bad_request"
	ErrCodeConflict            = "conflict"
	ErrCodeInvalidTag          = "invalid_tag"
	ErrCodeNotFound            = "not_found"
	ErrCodeUpstreamUnavailable = "upstream_unavailable"
	ErrCodeInternalError       = "internal_error"
)

// APIError is the error object in the standardized API response envelope.
// Suggestions is only set for invalid_tag errors.
// swagger:model APIError
type APIError struct {
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// APIResponse is the standardized envelope for all API responses.
// On success: Data is set, Error is nil. On error: Data is nil, Error is set.
// swagger:model APIResponse
type APIResponse struct {
	Data  any       `json:"data"`
	Error *APIError `json:"error"`
}

// WriteJSONSuccess sets Content-Type to application/json, writes statusCode, and
// encodes an APIResponse with the given data and error set to nil.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{Data: data, Error: nil})
}

// WriteJSONError sets Content-Type to application/json, writes statusCode, and
// encodes an APIResponse with data nil and the given error code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	WriteAPIError(w, statusCode, &APIError{Code: code, Message: message})
}

// WriteAPIError writes a fully populated APIError, e.g. one carrying suggestions.
func WriteAPIError(w http.ResponseWriter, statusCode int, apiErr *APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{Data: nil, Error: apiErr})
}

// WriteNoContent writes a 204 with no body.
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
