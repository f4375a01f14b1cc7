package handlers

import (
	"time"

	"matchdate-backend/internal/models"
)

// userListItem is the directory card representation of a user.
type userListItem struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	KnownAs    string    `json:"known_as"`
	Age        int       `json:"age"`
	Gender     string    `json:"gender"`
	City       string    `json:"city"`
	Country    string    `json:"country"`
	Created    time.Time `json:"created"`
	LastActive time.Time `json:"last_active"`
	PhotoURL   string    `json:"photo_url"`
}

func toUserListItem(u *models.User) userListItem {
	return userListItem{
		ID:         u.ID,
		Username:   u.Username,
		KnownAs:    u.KnownAs,
		Age:        u.Age(),
		Gender:     u.Gender,
		City:       u.City,
		Country:    u.Country,
		Created:    u.Created,
		LastActive: u.LastActive,
		PhotoURL:   u.MainPhotoURL(),
	}
}

func toUserListItems(users []*models.User) []userListItem {
	items := make([]userListItem, 0, len(users))
	for _, u := range users {
		items = append(items, toUserListItem(u))
	}
	return items
}

// userDetail is the full profile representation.
type userDetail struct {
	userListItem
	Introduction string          `json:"introduction"`
	LookingFor   string          `json:"looking_for"`
	Interests    string          `json:"interests"`
	Photos       []*models.Photo `json:"photos"`
}

func toUserDetail(u *models.User) userDetail {
	photos := u.Photos
	if photos == nil {
		photos = []*models.Photo{}
	}
	return userDetail{
		userListItem: toUserListItem(u),
		Introduction: u.Introduction,
		LookingFor:   u.LookingFor,
		Interests:    u.Interests,
		Photos:       photos,
	}
}
