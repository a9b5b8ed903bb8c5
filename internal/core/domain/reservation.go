package domain

import "time"

// Reservation is a guest's booking of a room for a date range. Reservations
// are insert-only: no exposed operation updates or cancels one, and deleting
// a room does not cascade to its reservations.
type Reservation struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	RoomID    string    `json:"room_id"`
	CheckIn   time.Time `json:"check_in"`
	CheckOut  time.Time `json:"check_out"`
	Guests    int       `json:"guests"`
	CreatedAt time.Time `json:"created_at"`
}
