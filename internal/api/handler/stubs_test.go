package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hotel-louvain/booking-system/internal/api/view"
	"github.com/hotel-louvain/booking-system/internal/core/domain"
	"github.com/hotel-louvain/booking-system/internal/core/ports"
)

// newTestContext builds an echo context with the real renderer and validator
// so handlers exercise the same template and validation paths as production.
func newTestContext(t *testing.T, method, target string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	renderer, err := view.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	e.Renderer = renderer
	e.Validator = NewValidator()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type stubAuthService struct {
	registerFn func(ports.RegisterInput) (*domain.User, error)
	loginFn    func(email, password string) (*domain.User, error)
}

func (s *stubAuthService) Register(_ context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(input)
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (*domain.User, error) {
	return s.loginFn(email, password)
}

type stubRoomService struct {
	featured     []*domain.Room
	searchResult []*domain.Room
	lastSearch   ports.RoomSearchInput
	active       map[string]*domain.Room
	all          []*domain.Room
	created      []ports.CreateRoomInput
	toggled      *domain.Room
	toggleErr    error
	deleted      []string
}

func (s *stubRoomService) Featured(_ context.Context) ([]*domain.Room, error) {
	return s.featured, nil
}

func (s *stubRoomService) Search(_ context.Context, input ports.RoomSearchInput) ([]*domain.Room, error) {
	s.lastSearch = input
	return s.searchResult, nil
}

func (s *stubRoomService) GetActive(_ context.Context, id string) (*domain.Room, error) {
	room, ok := s.active[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	return room, nil
}

func (s *stubRoomService) ListAll(_ context.Context) ([]*domain.Room, error) {
	return s.all, nil
}

func (s *stubRoomService) Create(_ context.Context, input ports.CreateRoomInput) (*domain.Room, error) {
	s.created = append(s.created, input)
	return &domain.Room{ID: "room-new", Name: input.Name}, nil
}

func (s *stubRoomService) ToggleActive(_ context.Context, id string) (*domain.Room, error) {
	if s.toggleErr != nil {
		return nil, s.toggleErr
	}
	return s.toggled, nil
}

func (s *stubRoomService) Delete(_ context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

type stubReservationService struct {
	created   []ports.CreateReservationInput
	createErr error
	history   []ports.ReservationWithRoom
	all       []ports.ReservationDetail
}

func (s *stubReservationService) Create(_ context.Context, input ports.CreateReservationInput) (*domain.Reservation, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = append(s.created, input)
	return &domain.Reservation{ID: "res-1", UserID: input.UserID, RoomID: input.RoomID}, nil
}

func (s *stubReservationService) HistoryForUser(_ context.Context, userID string) ([]ports.ReservationWithRoom, error) {
	return s.history, nil
}

func (s *stubReservationService) ListAll(_ context.Context) ([]ports.ReservationDetail, error) {
	return s.all, nil
}

type memSessionStore struct {
	sessions map[string]*domain.Session
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]*domain.Session)}
}

func (s *memSessionStore) Create(_ context.Context, sess *domain.Session) error {
	clone := *sess
	s.sessions[sess.ID] = &clone
	return nil
}

func (s *memSessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	clone := *sess
	return &clone, nil
}

func (s *memSessionStore) Delete(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}
