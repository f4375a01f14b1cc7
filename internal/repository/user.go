package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"matchdate-backend/internal/apperrors"
	"matchdate-backend/internal/models"
	"matchdate-backend/internal/pagination"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. The username unique index makes the existence
// check and the insert a single atomic unit; a collision surfaces as
// ErrDuplicateUser.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (
			id, username, password_hash, password_salt, gender, date_of_birth,
			known_as, introduction, looking_for, interests, city, country,
			created, last_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Username, user.PasswordHash, user.PasswordSalt,
		user.Gender, user.DateOfBirth, user.KnownAs, user.Introduction,
		user.LookingFor, user.Interests, user.City, user.Country,
		user.Created, user.LastActive,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.ErrDuplicateUser
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

const userColumns = `
	id, username, password_hash, password_salt, gender, date_of_birth,
	known_as, introduction, looking_for, interests, city, country,
	created, last_active
`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.PasswordSalt,
		&user.Gender, &user.DateOfBirth, &user.KnownAs, &user.Introduction,
		&user.LookingFor, &user.Interests, &user.City, &user.Country,
		&user.Created, &user.LastActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &user, nil
}

// GetByID retrieves a user by ID, including their photos.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	if err := r.loadPhotos(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByUsername retrieves a user by their normalized username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return scanUser(r.db.QueryRow(ctx, query, username))
}

func (r *UserRepository) loadPhotos(ctx context.Context, user *models.User) error {
	query := `
		SELECT id, user_id, url, public_id, is_main, added
		FROM photos
		WHERE user_id = $1
		ORDER BY added
	`
	rows, err := r.db.Query(ctx, query, user.ID)
	if err != nil {
		return fmt.Errorf("failed to get photos: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var photo models.Photo
		err := rows.Scan(
			&photo.ID, &photo.UserID, &photo.URL, &photo.PublicID,
			&photo.IsMain, &photo.Added,
		)
		if err != nil {
			return fmt.Errorf("failed to scan photo: %w", err)
		}
		user.Photos = append(user.Photos, &photo)
	}
	return rows.Err()
}

// UserFilter narrows the member listing. Zero values mean "no filter" except
// the age bounds, where the [DefaultMinAge, DefaultMaxAge] pair is a sentinel
// meaning no date-of-birth restriction.
type UserFilter struct {
	ExcludeID string
	Gender    string
	MinAge    int
	MaxAge    int
}

const (
	DefaultMinAge = 18
	DefaultMaxAge = 99
)

// dobRange translates inclusive age bounds into a date-of-birth window.
func dobRange(minAge, maxAge int, today time.Time) (minDob, maxDob time.Time) {
	minDob = today.AddDate(-maxAge-1, 0, 0)
	maxDob = today.AddDate(-minAge, 0, 0)
	return minDob, maxDob
}

// List returns one page of the member directory plus the total count of
// matching rows. The pipeline order is fixed: filters, then sort, then count
// over the filtered set, then the page slice.
func (r *UserRepository) List(ctx context.Context, f UserFilter, p pagination.Params) ([]*models.User, int, error) {
	where := []string{"u.id <> $1"}
	args := []interface{}{f.ExcludeID}

	if f.Gender != "" {
		args = append(args, f.Gender)
		where = append(where, fmt.Sprintf("u.gender = $%d", len(args)))
	}

	if f.MinAge != DefaultMinAge || f.MaxAge != DefaultMaxAge {
		minDob, maxDob := dobRange(f.MinAge, f.MaxAge, time.Now())
		args = append(args, minDob)
		where = append(where, fmt.Sprintf("u.date_of_birth >= $%d", len(args)))
		args = append(args, maxDob)
		where = append(where, fmt.Sprintf("u.date_of_birth <= $%d", len(args)))
	}

	whereClause := strings.Join(where, " AND ")

	countQuery := `SELECT COUNT(*) FROM users u WHERE ` + whereClause
	var total int
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	// Unrecognized sort keys fall back to last_active rather than erroring.
	orderBy := "u.last_active DESC"
	if p.OrderBy == "created" {
		orderBy = "u.created DESC"
	}

	query := fmt.Sprintf(`
		SELECT %s, COALESCE(ph.url, '')
		FROM users u
		LEFT JOIN photos ph ON ph.user_id = u.id AND ph.is_main
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, prefixedUserColumns, whereClause, orderBy, len(args)+1, len(args)+2)
	args = append(args, p.PageSize, p.Offset())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var user models.User
		var mainPhotoURL string
		err := rows.Scan(
			&user.ID, &user.Username, &user.PasswordHash, &user.PasswordSalt,
			&user.Gender, &user.DateOfBirth, &user.KnownAs, &user.Introduction,
			&user.LookingFor, &user.Interests, &user.City, &user.Country,
			&user.Created, &user.LastActive, &mainPhotoURL,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan user: %w", err)
		}
		if mainPhotoURL != "" {
			user.Photos = []*models.Photo{{UserID: user.ID, URL: mainPhotoURL, IsMain: true}}
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating users: %w", err)
	}

	return users, total, nil
}

const prefixedUserColumns = `
	u.id, u.username, u.password_hash, u.password_salt, u.gender, u.date_of_birth,
	u.known_as, u.introduction, u.looking_for, u.interests, u.city, u.country,
	u.created, u.last_active
`

// UpdateProfile persists the mutable profile fields.
func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET introduction = $1, looking_for = $2, interests = $3,
		    city = $4, country = $5
		WHERE id = $6
	`
	result, err := r.db.Exec(ctx, query,
		user.Introduction, user.LookingFor, user.Interests,
		user.City, user.Country, user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// TouchLastActive stamps the user's last_active column with the current time.
func (r *UserRepository) TouchLastActive(ctx context.Context, id string) error {
	query := `UPDATE users SET last_active = $1 WHERE id = $2`
	_, err := r.db.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update last_active: %w", err)
	}
	return nil
}
