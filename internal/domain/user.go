package domain

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrUserNotFound is returned when the user directory has no record for the given id or email.
	ErrUserNotFound = errors.New("user not found")
	// ErrTokenExpired is wrapped by TokenVerifier errors for tokens past their expiry.
	ErrTokenExpired = errors.New("token expired")
)

// User is a registered account as seen through the user directory.
// swagger:model User
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Summary returns the public projection of the user embedded in event payloads.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username, Email: u.Email}
}

// UserSummary is the populated creator reference returned with events.
// swagger:model UserSummary
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// UserRepository is the user directory. Accounts are provisioned out of band; Upsert backs the
// operator CLI.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// Upsert inserts u or updates the username of the account with the same email, filling in ID and CreatedAt.
	Upsert(ctx context.Context, u *User) error
}
