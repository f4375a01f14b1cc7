package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"matchdate-backend/internal/apperrors"
	"matchdate-backend/internal/models"

	"github.com/google/uuid"
)

// PhotoService handles photo uploads and the single-main-photo invariant.
// Binary data only ever flows through the object store; the service persists
// the returned URL and opaque key.
type PhotoService struct {
	photos PhotoStore
	store  ObjectStore
}

// NewPhotoService creates a new photo service
func NewPhotoService(photos PhotoStore, store ObjectStore) *PhotoService {
	return &PhotoService{photos: photos, store: store}
}

// Add uploads the photo binary to the object store and records the result.
// A user's first photo automatically becomes their main photo.
func (s *PhotoService) Add(ctx context.Context, userID, filename, contentType string, body io.Reader) (*models.Photo, error) {
	photoID := uuid.New().String()

	ext := path.Ext(filename)
	if ext == "" {
		ext = ".jpg"
	}
	key := fmt.Sprintf("%s/%s%s", userID, photoID, ext)

	url, err := s.store.Upload(ctx, key, contentType, body)
	if err != nil {
		return nil, fmt.Errorf("failed to upload photo: %w", err)
	}

	photo := &models.Photo{
		ID:       photoID,
		UserID:   userID,
		URL:      url,
		PublicID: key,
		Added:    time.Now(),
	}
	if err := s.photos.Create(ctx, photo); err != nil {
		return nil, err
	}

	return photo, nil
}

// Get returns a photo by id.
func (s *PhotoService) Get(ctx context.Context, id string) (*models.Photo, error) {
	return s.photos.GetByID(ctx, id)
}

// SetMain makes the photo the user's main photo. The previous main photo is
// demoted in the same atomic swap.
func (s *PhotoService) SetMain(ctx context.Context, userID, photoID string) error {
	photo, err := s.photos.GetByID(ctx, photoID)
	if err != nil {
		return err
	}
	if photo.UserID != userID {
		return apperrors.ErrUnauthorized
	}
	if photo.IsMain {
		return apperrors.ErrAlreadyMainPhoto
	}

	return s.photos.SetMain(ctx, userID, photoID)
}

// Delete removes a non-main photo, first from the object store, then from
// the database. The row survives if the remote delete fails, so the store
// never references an object we cannot clean up later.
func (s *PhotoService) Delete(ctx context.Context, userID, photoID string) error {
	photo, err := s.photos.GetByID(ctx, photoID)
	if err != nil {
		return err
	}
	if photo.UserID != userID {
		return apperrors.ErrUnauthorized
	}
	if photo.IsMain {
		return apperrors.ErrDeleteMainPhoto
	}

	if photo.PublicID != "" {
		if err := s.store.Delete(ctx, photo.PublicID); err != nil {
			return fmt.Errorf("failed to delete photo object: %w", err)
		}
	}

	return s.photos.Delete(ctx, photoID)
}
