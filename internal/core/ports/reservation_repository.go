package ports

import (
	"context"

	"github.com/hotel-louvain/booking-system/internal/core/domain"
)

// ReservationRepository defines persistence operations for reservations.
// Reservations are insert-only; there is no update or delete.
type ReservationRepository interface {
	Insert(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error)
	// FindByUser returns the user's reservations, newest first.
	FindByUser(ctx context.Context, userID string) ([]*domain.Reservation, error)
	// FindAll returns every reservation system-wide, newest first.
	FindAll(ctx context.Context) ([]*domain.Reservation, error)
}
