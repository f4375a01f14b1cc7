package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"matchdate-backend/internal/apperrors"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

// statusForError maps service errors to HTTP status codes. Anything outside
// the known taxonomy is an internal failure.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrDuplicateUser),
		errors.Is(err, apperrors.ErrAlreadyLiked),
		errors.Is(err, apperrors.ErrSelfLike),
		errors.Is(err, apperrors.ErrAlreadyMainPhoto),
		errors.Is(err, apperrors.ErrDeleteMainPhoto),
		errors.Is(err, apperrors.ErrInvalidPageSize),
		errors.Is(err, apperrors.ErrEmptyMessage):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrUnauthenticated),
		errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError translates a service error into an HTTP response.
// Internal failures never leak their details to the client.
func respondServiceError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		respondError(w, "internal server error", status)
		return
	}
	respondError(w, err.Error(), status)
}
