package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"matchdate-backend/internal/apperrors"
	"matchdate-backend/internal/auth"
)

func newAuthService(users UserStore) *AuthService {
	return NewAuthService(users, auth.NewTokenManager("test-secret-key-for-signing-tokens"))
}

func registerInput(username string) RegisterInput {
	return RegisterInput{
		Username:    username,
		Password:    "pw123",
		Gender:      "female",
		DateOfBirth: time.Date(1992, 4, 12, 0, 0, 0, 0, time.UTC),
		KnownAs:     "Alice",
	}
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	users := newFakeUserStore()
	svc := newAuthService(users)

	created, err := svc.Register(context.Background(), registerInput("Alice"))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if created.Username != "alice" {
		t.Errorf("expected normalized username alice, got %s", created.Username)
	}
	if len(created.PasswordHash) == 0 || len(created.PasswordSalt) == 0 {
		t.Error("expected hash and salt to be set")
	}

	loggedIn, token, err := svc.Login(context.Background(), "ALICE", "pw123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if loggedIn.ID != created.ID {
		t.Errorf("login returned id %s, want %s", loggedIn.ID, created.ID)
	}
	if token == "" {
		t.Error("expected a token")
	}
}

func TestAuthService_RegisterDuplicateUsername(t *testing.T) {
	users := newFakeUserStore()
	svc := newAuthService(users)

	if _, err := svc.Register(context.Background(), registerInput("alice")); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	// Same username in a different case still collides.
	_, err := svc.Register(context.Background(), registerInput("  Alice "))
	if !errors.Is(err, apperrors.ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser, got %v", err)
	}
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	users := newFakeUserStore()
	svc := newAuthService(users)

	if _, err := svc.Register(context.Background(), registerInput("alice")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, _, wrongPassword := svc.Login(context.Background(), "alice", "nope")
	_, _, unknownUser := svc.Login(context.Background(), "bob", "pw123")

	if !errors.Is(wrongPassword, apperrors.ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassword)
	}
	if !errors.Is(unknownUser, apperrors.ErrInvalidCredentials) {
		t.Errorf("unknown user: expected ErrInvalidCredentials, got %v", unknownUser)
	}
}

func TestAuthService_KnownAsDefaultsToUsername(t *testing.T) {
	users := newFakeUserStore()
	svc := newAuthService(users)

	in := registerInput("carol")
	in.KnownAs = ""
	created, err := svc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if created.KnownAs != "carol" {
		t.Errorf("expected known_as to default to username, got %q", created.KnownAs)
	}
}
