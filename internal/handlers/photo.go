package handlers

import (
	"net/http"

	"matchdate-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const maxUploadSize = 10 << 20 // 10 MB

// PhotoHandler handles photo HTTP requests
type PhotoHandler struct {
	photoService *services.PhotoService
}

// NewPhotoHandler creates a new photo handler
func NewPhotoHandler(photoService *services.PhotoService) *PhotoHandler {
	return &PhotoHandler{photoService: photoService}
}

// Upload handles POST /api/v1/users/{id}/photos
func (h *PhotoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	callerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	photo, err := h.photoService.Add(r.Context(), callerID, header.Filename, contentType, file)
	if err != nil {
		log.Error().
			Err(err).
			Str("user_id", callerID).
			Str("filename", header.Filename).
			Msg("Failed to add photo")
		respondServiceError(w, err)
		return
	}

	log.Info().
		Str("user_id", callerID).
		Str("photo_id", photo.ID).
		Bool("is_main", photo.IsMain).
		Msg("Photo added")

	respondJSON(w, http.StatusCreated, photo)
}

// Get handles GET /api/v1/users/{id}/photos/{photoId}
func (h *PhotoHandler) Get(w http.ResponseWriter, r *http.Request) {
	photo, err := h.photoService.Get(r.Context(), chi.URLParam(r, "photoId"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, photo)
}

// SetMain handles POST /api/v1/users/{id}/photos/{photoId}/setMain
func (h *PhotoHandler) SetMain(w http.ResponseWriter, r *http.Request) {
	callerID, ok := requireOwner(w, r)
	if !ok {
		return
	}
	photoID := chi.URLParam(r, "photoId")

	if err := h.photoService.SetMain(r.Context(), callerID, photoID); err != nil {
		log.Error().
			Err(err).
			Str("user_id", callerID).
			Str("photo_id", photoID).
			Msg("Failed to set main photo")
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/v1/users/{id}/photos/{photoId}
func (h *PhotoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	callerID, ok := requireOwner(w, r)
	if !ok {
		return
	}
	photoID := chi.URLParam(r, "photoId")

	if err := h.photoService.Delete(r.Context(), callerID, photoID); err != nil {
		log.Error().
			Err(err).
			Str("user_id", callerID).
			Str("photo_id", photoID).
			Msg("Failed to delete photo")
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
