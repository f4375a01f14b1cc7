package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"matchdate-backend/internal/apperrors"
	"matchdate-backend/internal/models"
	"matchdate-backend/internal/pagination"
	"matchdate-backend/internal/repository"
)

func seedUser(store *fakeUserStore, id, username, gender string) *models.User {
	u := &models.User{
		ID:          id,
		Username:    username,
		Gender:      gender,
		DateOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	store.users[id] = u
	return u
}

func TestUserService_ListDefaultsToOppositeGender(t *testing.T) {
	users := newFakeUserStore()
	seedUser(users, "u1", "bob", "male")
	svc := NewUserService(users, newFakeLikeStore())

	p := pagination.Params{Page: 1, PageSize: 10}
	filter := ListFilter{MinAge: repository.DefaultMinAge, MaxAge: repository.DefaultMaxAge}
	if _, _, err := svc.List(context.Background(), "u1", filter, p); err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if users.lastFilter.Gender != "female" {
		t.Errorf("expected default gender filter female for a male caller, got %q", users.lastFilter.Gender)
	}
	if users.lastFilter.ExcludeID != "u1" {
		t.Errorf("expected caller to be excluded, got %q", users.lastFilter.ExcludeID)
	}
}

func TestUserService_ListExplicitGenderWins(t *testing.T) {
	users := newFakeUserStore()
	seedUser(users, "u1", "bob", "male")
	svc := NewUserService(users, newFakeLikeStore())

	p := pagination.Params{Page: 1, PageSize: 10}
	filter := ListFilter{Gender: "male", MinAge: 20, MaxAge: 30}
	if _, _, err := svc.List(context.Background(), "u1", filter, p); err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if users.lastFilter.Gender != "male" {
		t.Errorf("expected gender filter male, got %q", users.lastFilter.Gender)
	}
	if users.lastFilter.MinAge != 20 || users.lastFilter.MaxAge != 30 {
		t.Errorf("expected age bounds [20,30], got [%d,%d]", users.lastFilter.MinAge, users.lastFilter.MaxAge)
	}
}

func TestUserService_ListMetadata(t *testing.T) {
	users := newFakeUserStore()
	seedUser(users, "u1", "bob", "male")
	users.listTotal = 25
	svc := NewUserService(users, newFakeLikeStore())

	p := pagination.Params{Page: 2, PageSize: 10}
	filter := ListFilter{MinAge: repository.DefaultMinAge, MaxAge: repository.DefaultMaxAge}
	_, meta, err := svc.List(context.Background(), "u1", filter, p)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	want := pagination.Meta{CurrentPage: 2, PageSize: 10, TotalCount: 25, TotalPages: 3}
	if meta != want {
		t.Errorf("meta = %+v, want %+v", meta, want)
	}
}

func TestUserService_Like(t *testing.T) {
	users := newFakeUserStore()
	seedUser(users, "u1", "alice", "female")
	seedUser(users, "u2", "bob", "male")
	svc := NewUserService(users, newFakeLikeStore())

	if err := svc.Like(context.Background(), "u1", "u2"); err != nil {
		t.Fatalf("Like failed: %v", err)
	}

	// Identical ordered pair is rejected.
	if err := svc.Like(context.Background(), "u1", "u2"); !errors.Is(err, apperrors.ErrAlreadyLiked) {
		t.Errorf("expected ErrAlreadyLiked, got %v", err)
	}

	// Reverse direction is a separate edge.
	if err := svc.Like(context.Background(), "u2", "u1"); err != nil {
		t.Errorf("reverse Like failed: %v", err)
	}
}

func TestUserService_LikeSelf(t *testing.T) {
	users := newFakeUserStore()
	seedUser(users, "u1", "alice", "female")
	svc := NewUserService(users, newFakeLikeStore())

	if err := svc.Like(context.Background(), "u1", "u1"); !errors.Is(err, apperrors.ErrSelfLike) {
		t.Errorf("expected ErrSelfLike, got %v", err)
	}
}

func TestUserService_LikeMissingRecipient(t *testing.T) {
	users := newFakeUserStore()
	seedUser(users, "u1", "alice", "female")
	svc := NewUserService(users, newFakeLikeStore())

	if err := svc.Like(context.Background(), "u1", "ghost"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUserService_UpdateProfile(t *testing.T) {
	users := newFakeUserStore()
	seedUser(users, "u1", "alice", "female")
	svc := NewUserService(users, newFakeLikeStore())

	in := UpdateProfileInput{Introduction: "hi", City: "Oslo", Country: "Norway"}
	if err := svc.UpdateProfile(context.Background(), "u1", in); err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}

	u := users.users["u1"]
	if u.Introduction != "hi" || u.City != "Oslo" || u.Country != "Norway" {
		t.Errorf("profile not updated: %+v", u)
	}

	if err := svc.UpdateProfile(context.Background(), "ghost", in); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown user, got %v", err)
	}
}
