package domain

import (
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionSnapshot is the subset of a user's identity captured at login or
// registration time. It is deliberately not refreshed when the underlying
// User record changes: a promoted or demoted admin flag, or a renamed user,
// takes effect at the next login.
type SessionSnapshot struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// Session is the server-side state behind one browser's session cookie.
// Expiry is absolute: ExpiresAt is fixed at creation and never slides.
type Session struct {
	ID        string          `json:"id"`
	User      SessionSnapshot `json:"user"`
	CreatedAt time.Time       `json:"created_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// Expired reports whether the session has passed its absolute expiry.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
