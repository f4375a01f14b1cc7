package services

import (
	"context"
	"fmt"
	"io"
	"sort"

	"matchdate-backend/internal/apperrors"
	"matchdate-backend/internal/models"
	"matchdate-backend/internal/pagination"
	"matchdate-backend/internal/repository"
)

// fakeUserStore is an in-memory UserStore mirroring the repository contract.
type fakeUserStore struct {
	users      map[string]*models.User
	lastFilter repository.UserFilter
	lastParams pagination.Params
	listUsers  []*models.User
	listTotal  int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}}
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Username == user.Username {
			return apperrors.ErrDuplicateUser
		}
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeUserStore) List(_ context.Context, filter repository.UserFilter, p pagination.Params) ([]*models.User, int, error) {
	f.lastFilter = filter
	f.lastParams = p
	return f.listUsers, f.listTotal, nil
}

func (f *fakeUserStore) UpdateProfile(_ context.Context, user *models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return apperrors.ErrNotFound
	}
	f.users[user.ID] = user
	return nil
}

// fakeLikeStore enforces ordered-pair uniqueness like the composite PK does.
type fakeLikeStore struct {
	edges map[string]bool
}

func newFakeLikeStore() *fakeLikeStore {
	return &fakeLikeStore{edges: map[string]bool{}}
}

func (f *fakeLikeStore) Create(_ context.Context, like *models.Like) error {
	key := like.LikerID + "|" + like.LikeeID
	if f.edges[key] {
		return apperrors.ErrAlreadyLiked
	}
	f.edges[key] = true
	return nil
}

// fakeMessageStore mirrors the repository's box, thread and delete/purge
// semantics over an in-memory map, reusing the model's lifecycle methods.
type fakeMessageStore struct {
	msgs map[string]*models.Message
}

func newFakeMessageStore() *fakeMessageStore {
	return &fakeMessageStore{msgs: map[string]*models.Message{}}
}

func (f *fakeMessageStore) Create(_ context.Context, msg *models.Message) error {
	f.msgs[msg.ID] = msg
	return nil
}

func (f *fakeMessageStore) GetByID(_ context.Context, id string) (*models.Message, error) {
	m, ok := f.msgs[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return m, nil
}

func (f *fakeMessageStore) ListForUser(_ context.Context, userID string, box repository.MessageBox, p pagination.Params) ([]*models.Message, int, error) {
	var matches []*models.Message
	for _, m := range f.msgs {
		switch box {
		case repository.BoxOutbox:
			if m.SenderID == userID && !m.SenderDeleted {
				matches = append(matches, m)
			}
		case repository.BoxInbox:
			if m.RecipientID == userID && !m.RecipientDeleted {
				matches = append(matches, m)
			}
		default:
			if m.RecipientID == userID && !m.RecipientDeleted && !m.IsRead {
				matches = append(matches, m)
			}
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].MessageSent.After(matches[j].MessageSent)
	})

	total := len(matches)
	start := p.Offset()
	if start > total {
		start = total
	}
	end := start + p.PageSize
	if end > total {
		end = total
	}
	return matches[start:end], total, nil
}

func (f *fakeMessageStore) Thread(_ context.Context, requesterID, otherID string) ([]*models.Message, error) {
	var matches []*models.Message
	for _, m := range f.msgs {
		between := (m.SenderID == requesterID && m.RecipientID == otherID) ||
			(m.SenderID == otherID && m.RecipientID == requesterID)
		if between && m.VisibleTo(requesterID) {
			matches = append(matches, m)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].MessageSent.Before(matches[j].MessageSent)
	})
	return matches, nil
}

func (f *fakeMessageStore) MarkThreadRead(_ context.Context, readerID, senderID string) error {
	for _, m := range f.msgs {
		if m.RecipientID == readerID && m.SenderID == senderID && !m.IsRead {
			m.IsRead = true
			read := m.MessageSent
			m.DateRead = &read
		}
	}
	return nil
}

func (f *fakeMessageStore) MarkDeleted(_ context.Context, messageID, partyID string) error {
	m, ok := f.msgs[messageID]
	if !ok {
		return apperrors.ErrNotFound
	}
	if err := m.MarkDeletedBy(partyID); err != nil {
		return err
	}
	if m.FullyDeleted() {
		delete(f.msgs, messageID)
	}
	return nil
}

// fakePhotoStore mirrors the first-photo-is-main insert and the atomic swap.
type fakePhotoStore struct {
	photos map[string]*models.Photo
}

func newFakePhotoStore() *fakePhotoStore {
	return &fakePhotoStore{photos: map[string]*models.Photo{}}
}

func (f *fakePhotoStore) Create(_ context.Context, photo *models.Photo) error {
	hasMain := false
	for _, p := range f.photos {
		if p.UserID == photo.UserID && p.IsMain {
			hasMain = true
			break
		}
	}
	photo.IsMain = !hasMain
	f.photos[photo.ID] = photo
	return nil
}

func (f *fakePhotoStore) GetByID(_ context.Context, id string) (*models.Photo, error) {
	p, ok := f.photos[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return p, nil
}

func (f *fakePhotoStore) SetMain(_ context.Context, userID, photoID string) error {
	target, ok := f.photos[photoID]
	if !ok || target.UserID != userID {
		return apperrors.ErrNotFound
	}
	for _, p := range f.photos {
		if p.UserID == userID {
			p.IsMain = false
		}
	}
	target.IsMain = true
	return nil
}

func (f *fakePhotoStore) Delete(_ context.Context, id string) error {
	if _, ok := f.photos[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.photos, id)
	return nil
}

func (f *fakePhotoStore) mainCount(userID string) int {
	n := 0
	for _, p := range f.photos {
		if p.UserID == userID && p.IsMain {
			n++
		}
	}
	return n
}

// fakeObjectStore records uploads and deletions without touching a network.
type fakeObjectStore struct {
	objects   map[string]bool
	deleteErr error
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{objects: map[string]bool{}}
}

func (f *fakeObjectStore) Upload(_ context.Context, key, _ string, _ io.Reader) (string, error) {
	f.objects[key] = true
	return fmt.Sprintf("https://photos.test/%s", key), nil
}

func (f *fakeObjectStore) Delete(_ context.Context, key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.objects, key)
	return nil
}
