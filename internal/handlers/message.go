package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"matchdate-backend/internal/apperrors"
	"matchdate-backend/internal/middleware"
	"matchdate-backend/internal/models"
	"matchdate-backend/internal/pagination"
	"matchdate-backend/internal/repository"
	"matchdate-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// MessageHandler handles message HTTP requests
type MessageHandler struct {
	messageService *services.MessageService
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// requireOwner rejects requests where the path user id does not match the
// authenticated identity. The token is valid, just for someone else.
func requireOwner(w http.ResponseWriter, r *http.Request) (string, bool) {
	callerID := middleware.GetUserID(r.Context())
	if chi.URLParam(r, "id") != callerID {
		respondError(w, "not allowed to act on this resource", http.StatusUnauthorized)
		return "", false
	}
	return callerID, true
}

// List handles GET /api/v1/users/{id}/messages
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	callerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	params, err := pagination.ParseParams(r.URL.Query())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	box := repository.ParseMessageBox(r.URL.Query().Get("box"))

	messages, meta, err := h.messageService.List(r.Context(), callerID, box, params)
	if err != nil {
		log.Error().Err(err).Str("user_id", callerID).Msg("Failed to list messages")
		respondServiceError(w, err)
		return
	}

	if messages == nil {
		messages = []*models.Message{}
	}
	pagination.WriteHeader(w, meta)
	respondJSON(w, http.StatusOK, messages)
}

// Get handles GET /api/v1/users/{id}/messages/{messageId}
func (h *MessageHandler) Get(w http.ResponseWriter, r *http.Request) {
	callerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	msg, err := h.messageService.Get(r.Context(), callerID, chi.URLParam(r, "messageId"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, msg)
}

// Thread handles GET /api/v1/users/{id}/messages/thread/{recipientId}
func (h *MessageHandler) Thread(w http.ResponseWriter, r *http.Request) {
	callerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	messages, err := h.messageService.Thread(r.Context(), callerID, chi.URLParam(r, "recipientId"))
	if err != nil {
		log.Error().Err(err).Str("user_id", callerID).Msg("Failed to get message thread")
		respondServiceError(w, err)
		return
	}

	if messages == nil {
		messages = []*models.Message{}
	}
	respondJSON(w, http.StatusOK, messages)
}

// CreateMessageRequest is the body for POST /api/v1/users/{id}/messages
type CreateMessageRequest struct {
	RecipientID string `json:"recipient_id"`
	Content     string `json:"content"`
}

// Create handles POST /api/v1/users/{id}/messages
func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	var req CreateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	msg, err := h.messageService.Create(r.Context(), callerID, req.RecipientID, req.Content)
	if err != nil {
		// A missing recipient is the sender's mistake, not a lookup miss.
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(w, "Could not find user", http.StatusBadRequest)
			return
		}
		log.Error().
			Err(err).
			Str("sender_id", callerID).
			Str("recipient_id", req.RecipientID).
			Msg("Failed to create message")
		respondServiceError(w, err)
		return
	}

	log.Info().
		Str("message_id", msg.ID).
		Str("sender_id", callerID).
		Str("recipient_id", req.RecipientID).
		Msg("Message created")

	respondJSON(w, http.StatusCreated, msg)
}

// Delete handles POST /api/v1/users/{id}/messages/{messageId}: it hides the
// message from the calling party and purges it once both parties deleted.
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	callerID, ok := requireOwner(w, r)
	if !ok {
		return
	}
	messageID := chi.URLParam(r, "messageId")

	if err := h.messageService.Delete(r.Context(), callerID, messageID); err != nil {
		log.Error().
			Err(err).
			Str("user_id", callerID).
			Str("message_id", messageID).
			Msg("Failed to delete message")
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
