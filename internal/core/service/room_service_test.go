package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hotel-louvain/booking-system/internal/core/domain"
	"github.com/hotel-louvain/booking-system/internal/core/ports"
)

type stubRoomRepo struct {
	rooms      map[string]*domain.Room
	seq        int
	lastFilter ports.RoomSearchFilter
	searched   bool
}

func newStubRoomRepo() *stubRoomRepo {
	return &stubRoomRepo{rooms: make(map[string]*domain.Room)}
}

func (r *stubRoomRepo) Insert(_ context.Context, room *domain.Room) (*domain.Room, error) {
	r.seq++
	created := *room
	created.ID = fmt.Sprintf("room-%d", r.seq)
	r.rooms[created.ID] = &created
	clone := created
	return &clone, nil
}

func (r *stubRoomRepo) FindByID(_ context.Context, id string) (*domain.Room, error) {
	room, ok := r.rooms[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	clone := *room
	return &clone, nil
}

func (r *stubRoomRepo) FindByIDs(_ context.Context, ids []string) (map[string]*domain.Room, error) {
	out := make(map[string]*domain.Room)
	for _, id := range ids {
		if room, ok := r.rooms[id]; ok {
			clone := *room
			out[id] = &clone
		}
	}
	return out, nil
}

func (r *stubRoomRepo) Search(_ context.Context, filter ports.RoomSearchFilter) ([]*domain.Room, error) {
	r.lastFilter = filter
	r.searched = true
	return nil, nil
}

func (r *stubRoomRepo) ListAll(_ context.Context) ([]*domain.Room, error) {
	out := make([]*domain.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		clone := *room
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubRoomRepo) SetActive(_ context.Context, id string, active bool) error {
	room, ok := r.rooms[id]
	if !ok {
		return domain.ErrRoomNotFound
	}
	room.IsActive = active
	return nil
}

func (r *stubRoomRepo) Delete(_ context.Context, id string) error {
	delete(r.rooms, id)
	return nil
}

func floatPtr(v float64) *float64 { return &v }

func TestRoomService_Featured_LimitsToSix(t *testing.T) {
	repo := newStubRoomRepo()
	svc := NewRoomService(repo, zerolog.Nop())

	if _, err := svc.Featured(context.Background()); err != nil {
		t.Fatalf("Featured returned error: %v", err)
	}
	want := ports.RoomSearchFilter{Limit: 6}
	if !reflect.DeepEqual(repo.lastFilter, want) {
		t.Fatalf("unexpected filter: %+v", repo.lastFilter)
	}
}

func TestRoomService_Search_BuildsFilter(t *testing.T) {
	repo := newStubRoomRepo()
	svc := NewRoomService(repo, zerolog.Nop())

	_, err := svc.Search(context.Background(), ports.RoomSearchInput{
		Type:     "double",
		MinPrice: floatPtr(50),
		MaxPrice: floatPtr(150),
	})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	f := repo.lastFilter
	if f.Type != "double" || !f.SortPriceAsc {
		t.Fatalf("unexpected filter: %+v", f)
	}
	if f.MinPrice == nil || *f.MinPrice != 50 || f.MaxPrice == nil || *f.MaxPrice != 150 {
		t.Fatalf("price bounds not forwarded: %+v", f)
	}
}

func TestRoomService_Search_AllTypeIsIgnored(t *testing.T) {
	repo := newStubRoomRepo()
	svc := NewRoomService(repo, zerolog.Nop())

	if _, err := svc.Search(context.Background(), ports.RoomSearchInput{Type: "all"}); err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if repo.lastFilter.Type != "" {
		t.Fatalf("sentinel type should not filter, got %q", repo.lastFilter.Type)
	}
}

func TestRoomService_GetActive_HidesInactiveRooms(t *testing.T) {
	repo := newStubRoomRepo()
	svc := NewRoomService(repo, zerolog.Nop())

	room, _ := repo.Insert(context.Background(), &domain.Room{Name: "101", Type: domain.RoomSingle, IsActive: false})

	if _, err := svc.GetActive(context.Background(), room.ID); !errors.Is(err, domain.ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound for inactive room, got %v", err)
	}
	if _, err := svc.GetActive(context.Background(), "missing"); !errors.Is(err, domain.ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound for unknown id, got %v", err)
	}
}

func TestRoomService_Create_SplitsAmenitiesAndDefaultsActive(t *testing.T) {
	repo := newStubRoomRepo()
	svc := NewRoomService(repo, zerolog.Nop())

	room, err := svc.Create(context.Background(), ports.CreateRoomInput{
		Name:          "Suite 301",
		Type:          "suite",
		PricePerNight: 220,
		Capacity:      4,
		Amenities:     " WiFi , TV ,, Breakfast ",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !room.IsActive {
		t.Fatalf("new rooms must default to active")
	}
	want := []string{"WiFi", "TV", "Breakfast"}
	if !reflect.DeepEqual(room.Amenities, want) {
		t.Fatalf("amenities = %v, want %v", room.Amenities, want)
	}
}

func TestRoomService_Create_RejectsUnknownType(t *testing.T) {
	repo := newStubRoomRepo()
	svc := NewRoomService(repo, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateRoomInput{Name: "x", Type: "penthouse"}); !errors.Is(err, domain.ErrInvalidRoomType) {
		t.Fatalf("expected ErrInvalidRoomType, got %v", err)
	}
	if len(repo.rooms) != 0 {
		t.Fatalf("invalid room must not be persisted")
	}
}

func TestRoomService_ToggleActive_TwiceRestoresOriginal(t *testing.T) {
	repo := newStubRoomRepo()
	svc := NewRoomService(repo, zerolog.Nop())

	room, _ := repo.Insert(context.Background(), &domain.Room{Name: "202", Type: domain.RoomDouble, IsActive: true})

	toggled, err := svc.ToggleActive(context.Background(), room.ID)
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if toggled.IsActive {
		t.Fatalf("expected room to become inactive")
	}

	toggled, err = svc.ToggleActive(context.Background(), room.ID)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if !toggled.IsActive {
		t.Fatalf("expected room to be active again")
	}
}

func TestRoomService_ToggleActive_UnknownRoom(t *testing.T) {
	repo := newStubRoomRepo()
	svc := NewRoomService(repo, zerolog.Nop())

	if _, err := svc.ToggleActive(context.Background(), "missing"); !errors.Is(err, domain.ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}
