package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hotel-louvain/booking-system/internal/core/domain"
	"github.com/hotel-louvain/booking-system/internal/core/ports"
)

// featuredLimit caps the number of rooms shown on the home page.
const featuredLimit = 6

// RoomService implements public browsing and admin inventory management.
type RoomService struct {
	rooms  ports.RoomRepository
	logger zerolog.Logger
}

func NewRoomService(rooms ports.RoomRepository, logger zerolog.Logger) *RoomService {
	return &RoomService{rooms: rooms, logger: logger}
}

// Featured returns up to six active rooms in store-default order.
func (s *RoomService) Featured(ctx context.Context) ([]*domain.Room, error) {
	return s.rooms.Search(ctx, ports.RoomSearchFilter{Limit: featuredLimit})
}

// Search returns active rooms matching input, sorted by price ascending.
// The sentinel type "all" means no type filter.
func (s *RoomService) Search(ctx context.Context, input ports.RoomSearchInput) ([]*domain.Room, error) {
	filter := ports.RoomSearchFilter{
		MinPrice:     input.MinPrice,
		MaxPrice:     input.MaxPrice,
		SortPriceAsc: true,
	}
	if input.Type != "" && input.Type != "all" {
		filter.Type = input.Type
	}
	return s.rooms.Search(ctx, filter)
}

// GetActive fetches a room for public viewing. Unknown and inactive rooms
// are indistinguishable to the caller, admin or not.
func (s *RoomService) GetActive(ctx context.Context, id string) (*domain.Room, error) {
	room, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !room.IsActive {
		return nil, domain.ErrRoomNotFound
	}
	return room, nil
}

func (s *RoomService) ListAll(ctx context.Context) ([]*domain.Room, error) {
	return s.rooms.ListAll(ctx)
}

func (s *RoomService) Create(ctx context.Context, input ports.CreateRoomInput) (*domain.Room, error) {
	roomType := domain.RoomType(input.Type)
	if !roomType.Valid() {
		return nil, domain.ErrInvalidRoomType
	}

	room := &domain.Room{
		Name:          input.Name,
		Type:          roomType,
		PricePerNight: input.PricePerNight,
		Capacity:      input.Capacity,
		Description:   input.Description,
		Amenities:     splitAmenities(input.Amenities),
		ImageURL:      input.ImageURL,
		IsActive:      true,
	}

	created, err := s.rooms.Insert(ctx, room)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create room")
		return nil, err
	}

	s.logger.Info().Str("room_id", created.ID).Str("name", created.Name).Msg("room created")
	return created, nil
}

// ToggleActive flips a room's visibility flag and returns the updated room.
func (s *RoomService) ToggleActive(ctx context.Context, id string) (*domain.Room, error) {
	room, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	room.IsActive = !room.IsActive
	if err := s.rooms.SetActive(ctx, id, room.IsActive); err != nil {
		return nil, err
	}

	s.logger.Info().Str("room_id", id).Bool("is_active", room.IsActive).Msg("room visibility toggled")
	return room, nil
}

// Delete removes a room without checking for dependent reservations; any
// existing reservation keeps its now-dangling room reference.
func (s *RoomService) Delete(ctx context.Context, id string) error {
	if err := s.rooms.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("room_id", id).Msg("room deleted")
	return nil
}

// splitAmenities turns a comma-delimited string into a trimmed list with
// empty entries dropped.
func splitAmenities(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
