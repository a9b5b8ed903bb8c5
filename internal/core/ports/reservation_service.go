package ports

import (
	"context"
	"time"

	"github.com/hotel-louvain/booking-system/internal/core/domain"
)

// CreateReservationInput carries all data needed to book a room.
type CreateReservationInput struct {
	UserID   string
	RoomID   string
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
}

// ReservationWithRoom pairs a reservation with its referenced room. Room is
// nil when the room was deleted after booking (dangling reference).
type ReservationWithRoom struct {
	Reservation *domain.Reservation
	Room        *domain.Room
}

// ReservationDetail is the admin view: reservation plus both referenced
// records. Either may be nil when the referent no longer exists.
type ReservationDetail struct {
	Reservation *domain.Reservation
	Room        *domain.Room
	User        *domain.User
}

// ReservationService defines use-case operations for bookings.
type ReservationService interface {
	// Create books a room. It re-fetches the room and returns
	// domain.ErrRoomNotFound when the room is unknown or inactive. There is
	// deliberately no date-order, capacity, or overlap validation.
	Create(ctx context.Context, input CreateReservationInput) (*domain.Reservation, error)
	// HistoryForUser lists the user's reservations, newest first.
	HistoryForUser(ctx context.Context, userID string) ([]ReservationWithRoom, error)
	// ListAll lists every reservation system-wide, newest first.
	ListAll(ctx context.Context) ([]ReservationDetail, error)
}
