package ports

import (
	"context"

	"github.com/hotel-louvain/booking-system/internal/core/domain"
)

// SessionStore persists per-browser session state. Implementations must be
// safe for concurrent use; the application keeps no in-process session table.
type SessionStore interface {
	Create(ctx context.Context, s *domain.Session) error
	// Get returns domain.ErrSessionNotFound for unknown ids. Expiry is the
	// caller's concern: Get may return a session past its ExpiresAt.
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}
