package models

import "time"

// User represents a registered account stored in the credential store.
// PasswordHash holds the adaptive hash output and must never leave the
// persistence boundary in any response or rendered page.
type User struct {
	// UserID is the monotonically assigned primary key.
	UserID int64 `json:"-"`

	// Username is unique across all users and compared case-sensitively.
	Username string `json:"username"`

	// Email is unique across all users.
	Email string `json:"email"`

	// PasswordHash is the bcrypt digest of the user's password.
	PasswordHash string `json:"-"`

	// CreatedAt is set once when the row is inserted.
	CreatedAt time.Time `json:"created_at"`
}

// Listing projects the user to the fields that may be displayed.
func (u User) Listing() UserListing {
	return UserListing{
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// UserListing is the read-only projection of a User shown on the dashboard.
type UserListing struct {
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
