package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"matchdate-backend/internal/middleware"
	"matchdate-backend/internal/pagination"
	"matchdate-backend/internal/repository"
	"matchdate-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// UserHandler handles member directory HTTP requests
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List handles GET /api/v1/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	callerID := middleware.GetUserID(ctx)
	q := r.URL.Query()

	params, err := pagination.ParseParams(q)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	filter := services.ListFilter{
		Gender: q.Get("gender"),
		MinAge: repository.DefaultMinAge,
		MaxAge: repository.DefaultMaxAge,
	}
	if raw := q.Get("minAge"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, "minAge must be an integer", http.StatusBadRequest)
			return
		}
		filter.MinAge = n
	}
	if raw := q.Get("maxAge"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, "maxAge must be an integer", http.StatusBadRequest)
			return
		}
		filter.MaxAge = n
	}

	users, meta, err := h.userService.List(ctx, callerID, filter, params)
	if err != nil {
		log.Error().Err(err).Str("user_id", callerID).Msg("Failed to list users")
		respondServiceError(w, err)
		return
	}

	pagination.WriteHeader(w, meta)
	respondJSON(w, http.StatusOK, toUserListItems(users))
}

// Get handles GET /api/v1/users/{id}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toUserDetail(user))
}

// UpdateRequest is the body for PUT /api/v1/users/{id}
type UpdateRequest struct {
	Introduction string `json:"introduction"`
	LookingFor   string `json:"looking_for"`
	Interests    string `json:"interests"`
	City         string `json:"city"`
	Country      string `json:"country"`
}

// Update handles PUT /api/v1/users/{id}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	callerID := middleware.GetUserID(ctx)
	id := chi.URLParam(r, "id")

	if id != callerID {
		respondError(w, "not allowed to act on this resource", http.StatusUnauthorized)
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	err := h.userService.UpdateProfile(ctx, id, services.UpdateProfileInput{
		Introduction: req.Introduction,
		LookingFor:   req.LookingFor,
		Interests:    req.Interests,
		City:         req.City,
		Country:      req.Country,
	})
	if err != nil {
		log.Error().Err(err).Str("user_id", id).Msg("Failed to update profile")
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Like handles POST /api/v1/users/{id}/like/{recipientId}
func (h *UserHandler) Like(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	callerID := middleware.GetUserID(ctx)
	id := chi.URLParam(r, "id")
	recipientID := chi.URLParam(r, "recipientId")

	if id != callerID {
		respondError(w, "not allowed to act on this resource", http.StatusUnauthorized)
		return
	}

	if err := h.userService.Like(ctx, callerID, recipientID); err != nil {
		log.Error().
			Err(err).
			Str("user_id", callerID).
			Str("recipient_id", recipientID).
			Msg("Failed to like user")
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
