package ports

import (
	"context"

	"github.com/hotel-louvain/booking-system/internal/core/domain"
)

// RoomSearchInput carries the public /rooms query parameters after coercion.
type RoomSearchInput struct {
	Type     string // "" or "all" = any type
	MinPrice *float64
	MaxPrice *float64
}

// CreateRoomInput carries the admin room-creation form. Amenities is the raw
// comma-delimited string; the service splits and trims it.
type CreateRoomInput struct {
	Name          string
	Type          string
	PricePerNight float64
	Capacity      int
	Description   string
	Amenities     string
	ImageURL      string
}

// RoomService defines use-case operations over the room inventory.
type RoomService interface {
	// Featured returns up to six active rooms for the home page.
	Featured(ctx context.Context) ([]*domain.Room, error)
	// Search returns active rooms matching input, sorted by price ascending.
	Search(ctx context.Context, input RoomSearchInput) ([]*domain.Room, error)
	// GetActive returns domain.ErrRoomNotFound when the room is unknown or
	// inactive, regardless of the caller's identity.
	GetActive(ctx context.Context, id string) (*domain.Room, error)

	// Admin operations.
	ListAll(ctx context.Context) ([]*domain.Room, error)
	Create(ctx context.Context, input CreateRoomInput) (*domain.Room, error)
	ToggleActive(ctx context.Context, id string) (*domain.Room, error)
	Delete(ctx context.Context, id string) error
}
