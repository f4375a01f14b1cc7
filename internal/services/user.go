package services

import (
	"context"
	"time"

	"matchdate-backend/internal/apperrors"
	"matchdate-backend/internal/models"
	"matchdate-backend/internal/pagination"
	"matchdate-backend/internal/repository"
)

// UserService handles the member directory and the like relation.
type UserService struct {
	users UserStore
	likes LikeStore
}

// NewUserService creates a new user service
func NewUserService(users UserStore, likes LikeStore) *UserService {
	return &UserService{users: users, likes: likes}
}

// Get returns a user with their photos.
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// ListFilter is the caller-facing filter for the member directory.
type ListFilter struct {
	Gender string
	MinAge int
	MaxAge int
}

// List returns one page of the member directory. The caller is always
// excluded; with no explicit gender filter the directory defaults to the
// opposite of the caller's gender.
func (s *UserService) List(ctx context.Context, callerID string, f ListFilter, p pagination.Params) ([]*models.User, pagination.Meta, error) {
	if f.Gender == "" {
		caller, err := s.users.GetByID(ctx, callerID)
		if err != nil {
			return nil, pagination.Meta{}, err
		}
		if caller.Gender == "male" {
			f.Gender = "female"
		} else {
			f.Gender = "male"
		}
	}

	filter := repository.UserFilter{
		ExcludeID: callerID,
		Gender:    f.Gender,
		MinAge:    f.MinAge,
		MaxAge:    f.MaxAge,
	}

	users, total, err := s.users.List(ctx, filter, p)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return users, pagination.NewMeta(p, total), nil
}

// UpdateProfileInput carries the editable profile fields.
type UpdateProfileInput struct {
	Introduction string
	LookingFor   string
	Interests    string
	City         string
	Country      string
}

// UpdateProfile overwrites the user's editable profile fields.
func (s *UserService) UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}

	user.Introduction = in.Introduction
	user.LookingFor = in.LookingFor
	user.Interests = in.Interests
	user.City = in.City
	user.Country = in.Country

	return s.users.UpdateProfile(ctx, user)
}

// Like records a one-directional like edge. The recipient must exist and
// differ from the liker; a duplicate edge returns ErrAlreadyLiked.
func (s *UserService) Like(ctx context.Context, likerID, likeeID string) error {
	if likerID == likeeID {
		return apperrors.ErrSelfLike
	}

	if _, err := s.users.GetByID(ctx, likeeID); err != nil {
		return err
	}

	like := &models.Like{
		LikerID: likerID,
		LikeeID: likeeID,
		Created: time.Now(),
	}
	return s.likes.Create(ctx, like)
}
