package services

import (
	"context"
	"io"

	"matchdate-backend/internal/models"
	"matchdate-backend/internal/pagination"
	"matchdate-backend/internal/repository"
)

// UserStore is the persistence surface the services need for users.
// *repository.UserRepository satisfies it.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context, f repository.UserFilter, p pagination.Params) ([]*models.User, int, error)
	UpdateProfile(ctx context.Context, user *models.User) error
}

// LikeStore persists like edges.
type LikeStore interface {
	Create(ctx context.Context, like *models.Like) error
}

// MessageStore persists messages and owns the atomic delete/purge step.
type MessageStore interface {
	Create(ctx context.Context, msg *models.Message) error
	GetByID(ctx context.Context, id string) (*models.Message, error)
	ListForUser(ctx context.Context, userID string, box repository.MessageBox, p pagination.Params) ([]*models.Message, int, error)
	Thread(ctx context.Context, requesterID, otherID string) ([]*models.Message, error)
	MarkThreadRead(ctx context.Context, readerID, senderID string) error
	MarkDeleted(ctx context.Context, messageID, partyID string) error
}

// PhotoStore persists photo rows and owns the atomic main-photo swap.
type PhotoStore interface {
	Create(ctx context.Context, photo *models.Photo) error
	GetByID(ctx context.Context, id string) (*models.Photo, error)
	SetMain(ctx context.Context, userID, photoID string) error
	Delete(ctx context.Context, id string) error
}

// ObjectStore is the external host for photo binaries. Upload returns the
// public URL; the key is the opaque id used for later deletion.
type ObjectStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}
