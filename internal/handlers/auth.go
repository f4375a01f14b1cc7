package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"matchdate-backend/internal/services"

	"github.com/rs/zerolog/log"
)

// AuthHandler handles registration and login requests
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest is the body for POST /api/v1/auth/register
type RegisterRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	Gender       string `json:"gender"`
	DateOfBirth  string `json:"date_of_birth"`
	KnownAs      string `json:"known_as"`
	City         string `json:"city"`
	Country      string `json:"country"`
	Introduction string `json:"introduction"`
	LookingFor   string `json:"looking_for"`
	Interests    string `json:"interests"`
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Username == "" {
		respondError(w, "username is required", http.StatusBadRequest)
		return
	}
	if len(req.Password) < 4 {
		respondError(w, "password must be at least 4 characters", http.StatusBadRequest)
		return
	}
	if req.Gender != "male" && req.Gender != "female" {
		respondError(w, "gender must be male or female", http.StatusBadRequest)
		return
	}

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		respondError(w, "date_of_birth must be formatted YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	user, err := h.authService.Register(r.Context(), services.RegisterInput{
		Username:     req.Username,
		Password:     req.Password,
		Gender:       req.Gender,
		DateOfBirth:  dob,
		KnownAs:      req.KnownAs,
		City:         req.City,
		Country:      req.Country,
		Introduction: req.Introduction,
		LookingFor:   req.LookingFor,
		Interests:    req.Interests,
	})
	if err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("Failed to register user")
		respondServiceError(w, err)
		return
	}

	log.Info().
		Str("user_id", user.ID).
		Str("username", user.Username).
		Msg("User registered")

	respondJSON(w, http.StatusCreated, toUserDetail(user))
}

// LoginRequest is the body for POST /api/v1/auth/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token and the logged-in user's card.
type LoginResponse struct {
	Token string       `json:"token"`
	User  userListItem `json:"user"`
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, token, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		// Same response for unknown usernames and wrong passwords.
		respondServiceError(w, err)
		return
	}

	log.Info().Str("user_id", user.ID).Msg("User logged in")

	respondJSON(w, http.StatusOK, LoginResponse{
		Token: token,
		User:  toUserListItem(user),
	})
}
