package models

import "time"

// User represents a registered profile
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash []byte    `json:"-"`
	PasswordSalt []byte    `json:"-"`
	Gender       string    `json:"gender"`
	DateOfBirth  time.Time `json:"date_of_birth"`
	KnownAs      string    `json:"known_as"`
	Introduction string    `json:"introduction"`
	LookingFor   string    `json:"looking_for"`
	Interests    string    `json:"interests"`
	City         string    `json:"city"`
	Country      string    `json:"country"`
	Created      time.Time `json:"created"`
	LastActive   time.Time `json:"last_active"`
	Photos       []*Photo  `json:"photos,omitempty"`
}

// Age returns the user's age in full years as of today.
func (u *User) Age() int {
	return AgeAt(u.DateOfBirth, time.Now())
}

// AgeAt returns the number of full years between dob and now.
func AgeAt(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	anniversary := dob.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return years
}

// MainPhotoURL returns the URL of the main photo, or "" if the user has no
// photos loaded.
func (u *User) MainPhotoURL() string {
	for _, p := range u.Photos {
		if p.IsMain {
			return p.URL
		}
	}
	return ""
}

// Photo represents an image hosted on the external object store. PublicID is
// the store's opaque key and is only ever passed back to the store.
type Photo struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user_id"`
	URL      string    `json:"url"`
	PublicID string    `json:"-"`
	IsMain   bool      `json:"is_main"`
	Added    time.Time `json:"added"`
}

// Like is a one-directional edge between two users. The pair (LikerID,
// LikeeID) is unique, enforced by the composite primary key.
type Like struct {
	LikerID string    `json:"liker_id"`
	LikeeID string    `json:"likee_id"`
	Created time.Time `json:"created"`
}
