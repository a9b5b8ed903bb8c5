package ports

import (
	"context"

	"github.com/hotel-louvain/booking-system/internal/core/domain"
)

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Email           string
	Username        string
	Password        string
	ConfirmPassword string
}

// AuthService implements registration and login.
//
// Register validates in order: missing fields, password mismatch, duplicate
// email. Login reports the same domain.ErrInvalidCredentials for an unknown
// email and for a wrong password so callers cannot probe which emails are
// registered.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
}
