package domain

import "time"

// User is the account entity. Username and email are unique across all
// accounts; the storage layer enforces both, so the pre-registration
// duplicate check is advisory rather than load-bearing.
type User struct {
	ID            int64     `json:"id"`
	FullName      string    `json:"fullName"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	AvatarURL     string    `json:"avatar"`
	CoverImageURL string    `json:"coverImage"`
	RefreshToken  string    `json:"-"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Sanitized returns a copy safe to embed in a response body: the password
// digest and the stored refresh token are blanked.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	u.RefreshToken = ""
	return u
}
