package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"matchdate-backend/internal/apperrors"
	"matchdate-backend/internal/auth"
	"matchdate-backend/internal/models"

	"github.com/google/uuid"
)

// AuthService handles registration, login and token issuance.
type AuthService struct {
	users  UserStore
	tokens *auth.TokenManager
}

// NewAuthService creates a new auth service
func NewAuthService(users UserStore, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// RegisterInput carries the registration fields after handler-level decoding.
type RegisterInput struct {
	Username     string
	Password     string
	Gender       string
	DateOfBirth  time.Time
	KnownAs      string
	City         string
	Country      string
	Introduction string
	LookingFor   string
	Interests    string
}

// NormalizeUsername returns the canonical form used for storage and lookups.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// Register creates a new user with a salted keyed hash of the password.
// A username collision returns ErrDuplicateUser.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	username := NormalizeUsername(in.Username)

	hash, salt, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	knownAs := in.KnownAs
	if knownAs == "" {
		knownAs = username
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: hash,
		PasswordSalt: salt,
		Gender:       in.Gender,
		DateOfBirth:  in.DateOfBirth,
		KnownAs:      knownAs,
		City:         in.City,
		Country:      in.Country,
		Introduction: in.Introduction,
		LookingFor:   in.LookingFor,
		Interests:    in.Interests,
		Created:      now,
		LastActive:   now,
	}

	// The unique index on username is the authority; Create reports a
	// collision as ErrDuplicateUser even under concurrent registrations.
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the credentials and returns the user plus a signed token.
// An unknown username and a wrong password are indistinguishable to the
// caller: both are ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.users.GetByUsername(ctx, NormalizeUsername(username))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !auth.VerifyPassword(password, user.PasswordHash, user.PasswordSalt) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.KnownAs)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, nil
}
