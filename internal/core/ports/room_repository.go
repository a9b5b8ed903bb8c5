package ports

import (
	"context"

	"github.com/hotel-louvain/booking-system/internal/core/domain"
)

// RoomSearchFilter narrows the active-room queries used by public browsing.
// Price bounds are inclusive; a nil bound means unbounded.
type RoomSearchFilter struct {
	Type         string // empty = any type
	MinPrice     *float64
	MaxPrice     *float64
	SortPriceAsc bool
	Limit        int64 // 0 = no limit
}

// RoomRepository defines persistence operations for the room inventory.
type RoomRepository interface {
	Insert(ctx context.Context, room *domain.Room) (*domain.Room, error)
	// FindByID returns domain.ErrRoomNotFound for unknown or malformed ids.
	FindByID(ctx context.Context, id string) (*domain.Room, error)
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Room, error)
	// Search returns active rooms matching filter.
	Search(ctx context.Context, filter RoomSearchFilter) ([]*domain.Room, error)
	// ListAll returns every room, active and inactive, sorted by name.
	ListAll(ctx context.Context) ([]*domain.Room, error)
	SetActive(ctx context.Context, id string, active bool) error
	// Delete removes a room unconditionally. Deleting an unknown id is not
	// an error.
	Delete(ctx context.Context, id string) error
}
