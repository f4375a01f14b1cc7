package repository

import (
	"context"
	"errors"
	"fmt"

	"matchdate-backend/internal/apperrors"
	"matchdate-backend/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LikeRepository handles database operations for like edges
type LikeRepository struct {
	db *pgxpool.Pool
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(db *pgxpool.Pool) *LikeRepository {
	return &LikeRepository{db: db}
}

// Create inserts a like edge. The composite primary key on
// (liker_id, likee_id) makes the uniqueness check and the insert one atomic
// unit, so concurrent duplicate likes cannot both land; the loser gets
// ErrAlreadyLiked.
func (r *LikeRepository) Create(ctx context.Context, like *models.Like) error {
	query := `
		INSERT INTO likes (liker_id, likee_id, created)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(ctx, query, like.LikerID, like.LikeeID, like.Created)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.ErrAlreadyLiked
		}
		return fmt.Errorf("failed to create like: %w", err)
	}
	return nil
}

// Exists reports whether the ordered pair already has an edge.
func (r *LikeRepository) Exists(ctx context.Context, likerID, likeeID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM likes WHERE liker_id = $1 AND likee_id = $2)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, likerID, likeeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check like existence: %w", err)
	}
	return exists, nil
}
