package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hotel-louvain/booking-system/internal/core/domain"
	"github.com/hotel-louvain/booking-system/internal/core/ports"
)

// ReservationService implements booking and reservation listing.
type ReservationService struct {
	reservations ports.ReservationRepository
	rooms        ports.RoomRepository
	users        ports.UserRepository
	logger       zerolog.Logger
}

func NewReservationService(
	reservations ports.ReservationRepository,
	rooms ports.RoomRepository,
	users ports.UserRepository,
	logger zerolog.Logger,
) *ReservationService {
	return &ReservationService{
		reservations: reservations,
		rooms:        rooms,
		users:        users,
		logger:       logger,
	}
}

// Create books a room for the given user. The room is re-fetched so a room
// deactivated or deleted since the form was rendered is rejected. There is
// no availability check: overlapping reservations for the same room and
// dates are accepted.
func (s *ReservationService) Create(ctx context.Context, input ports.CreateReservationInput) (*domain.Reservation, error) {
	room, err := s.rooms.FindByID(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}
	if !room.IsActive {
		return nil, domain.ErrRoomNotFound
	}

	reservation := &domain.Reservation{
		UserID:    input.UserID,
		RoomID:    room.ID,
		CheckIn:   input.CheckIn,
		CheckOut:  input.CheckOut,
		Guests:    input.Guests,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.reservations.Insert(ctx, reservation)
	if err != nil {
		s.logger.Error().Err(err).Str("room_id", input.RoomID).Msg("failed to create reservation")
		return nil, err
	}

	s.logger.Info().
		Str("reservation_id", created.ID).
		Str("user_id", created.UserID).
		Str("room_id", created.RoomID).
		Msg("reservation created")

	return created, nil
}

// HistoryForUser lists the user's reservations newest-first with each room
// expanded. Rooms deleted since booking come back nil.
func (s *ReservationService) HistoryForUser(ctx context.Context, userID string) ([]ports.ReservationWithRoom, error) {
	reservations, err := s.reservations.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	rooms, err := s.rooms.FindByIDs(ctx, roomIDs(reservations))
	if err != nil {
		return nil, err
	}

	out := make([]ports.ReservationWithRoom, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, ports.ReservationWithRoom{
			Reservation: r,
			Room:        rooms[r.RoomID],
		})
	}
	return out, nil
}

// ListAll lists every reservation newest-first with both referenced records
// expanded for the admin overview.
func (s *ReservationService) ListAll(ctx context.Context) ([]ports.ReservationDetail, error) {
	reservations, err := s.reservations.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	rooms, err := s.rooms.FindByIDs(ctx, roomIDs(reservations))
	if err != nil {
		return nil, err
	}

	userIDs := make([]string, 0, len(reservations))
	seen := make(map[string]struct{}, len(reservations))
	for _, r := range reservations {
		if _, ok := seen[r.UserID]; !ok {
			seen[r.UserID] = struct{}{}
			userIDs = append(userIDs, r.UserID)
		}
	}
	users, err := s.users.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	out := make([]ports.ReservationDetail, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, ports.ReservationDetail{
			Reservation: r,
			Room:        rooms[r.RoomID],
			User:        users[r.UserID],
		})
	}
	return out, nil
}

func roomIDs(reservations []*domain.Reservation) []string {
	ids := make([]string, 0, len(reservations))
	seen := make(map[string]struct{}, len(reservations))
	for _, r := range reservations {
		if _, ok := seen[r.RoomID]; !ok {
			seen[r.RoomID] = struct{}{}
			ids = append(ids, r.RoomID)
		}
	}
	return ids
}
