package repository

import (
	"context"
	"errors"
	"fmt"

	"matchdate-backend/internal/apperrors"
	"matchdate-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PhotoRepository handles database operations for photos
type PhotoRepository struct {
	db *pgxpool.Pool
}

// NewPhotoRepository creates a new photo repository
func NewPhotoRepository(db *pgxpool.Pool) *PhotoRepository {
	return &PhotoRepository{db: db}
}

// Create inserts a new photo. The first photo a user adds becomes their main
// photo; the NOT EXISTS subquery decides that inside the insert itself so two
// concurrent first uploads cannot both become main.
func (r *PhotoRepository) Create(ctx context.Context, photo *models.Photo) error {
	query := `
		INSERT INTO photos (id, user_id, url, public_id, is_main, added)
		VALUES ($1, $2, $3, $4,
			NOT EXISTS(SELECT 1 FROM photos WHERE user_id = $2 AND is_main),
			$5)
		RETURNING is_main
	`
	err := r.db.QueryRow(ctx, query,
		photo.ID, photo.UserID, photo.URL, photo.PublicID, photo.Added,
	).Scan(&photo.IsMain)
	if err != nil {
		return fmt.Errorf("failed to create photo: %w", err)
	}
	return nil
}

// GetByID retrieves a photo by ID
func (r *PhotoRepository) GetByID(ctx context.Context, id string) (*models.Photo, error) {
	query := `
		SELECT id, user_id, url, public_id, is_main, added
		FROM photos
		WHERE id = $1
	`
	var photo models.Photo
	err := r.db.QueryRow(ctx, query, id).Scan(
		&photo.ID, &photo.UserID, &photo.URL, &photo.PublicID,
		&photo.IsMain, &photo.Added,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}
	return &photo, nil
}

// SetMain promotes the photo to the user's main photo. Unsetting the old main
// and setting the new one happen in one transaction, so a concurrent
// conflicting swap can never leave the user with zero or two main photos.
func (r *PhotoRepository) SetMain(ctx context.Context, userID, photoID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	unset := `UPDATE photos SET is_main = false WHERE user_id = $1 AND is_main`
	if _, err := tx.Exec(ctx, unset, userID); err != nil {
		return fmt.Errorf("failed to unset main photo: %w", err)
	}

	set := `UPDATE photos SET is_main = true WHERE id = $1 AND user_id = $2`
	result, err := tx.Exec(ctx, set, photoID, userID)
	if err != nil {
		return fmt.Errorf("failed to set main photo: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit main photo swap: %w", err)
	}
	return nil
}

// Delete removes a photo row
func (r *PhotoRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM photos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
