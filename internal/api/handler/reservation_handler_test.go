package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hotel-louvain/booking-system/internal/api/middleware"
	"github.com/hotel-louvain/booking-system/internal/core/domain"
	"github.com/hotel-louvain/booking-system/internal/core/ports"
)

func guestSession() *domain.Session {
	return &domain.Session{User: domain.SessionSnapshot{UserID: "user-1", Username: "alice"}}
}

func reserveValues() url.Values {
	return url.Values{
		"checkIn":  {"2026-09-01"},
		"checkOut": {"2026-09-04"},
		"guests":   {"2"},
	}
}

func newReserveContext(t *testing.T, form url.Values) (echo.Context, *stubReservationService, *stubRoomService, *httptest.ResponseRecorder) {
	t.Helper()
	reservations := &stubReservationService{}
	rooms := &stubRoomService{
		active: map[string]*domain.Room{
			"r1": {ID: "r1", Name: "Garden Single", Type: domain.RoomSingle, PricePerNight: 80, Capacity: 2, IsActive: true},
		},
	}
	c, rec := newTestContext(t, http.MethodPost, "/rooms/r1/reserve", form)
	c.SetParamNames("id")
	c.SetParamValues("r1")
	middleware.SetSession(c, guestSession())
	return c, reservations, rooms, rec
}

func TestReservationHandler_Reserve_Success(t *testing.T) {
	c, reservations, rooms, rec := newReserveContext(t, reserveValues())
	h := NewReservationHandler(reservations, rooms)

	if err := h.Reserve(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/my-reservations" {
		t.Fatalf("expected 302 to /my-reservations, got %d %q", rec.Code, rec.Header().Get("Location"))
	}

	if len(reservations.created) != 1 {
		t.Fatalf("expected one reservation, have %d", len(reservations.created))
	}
	in := reservations.created[0]
	if in.UserID != "user-1" || in.RoomID != "r1" || in.Guests != 2 {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.CheckIn.Format("2006-01-02") != "2026-09-01" || in.CheckOut.Format("2006-01-02") != "2026-09-04" {
		t.Fatalf("dates not parsed: %+v", in)
	}
}

func TestReservationHandler_Reserve_MissingFieldsRerendersDetail(t *testing.T) {
	form := reserveValues()
	form.Del("checkOut")
	c, reservations, rooms, rec := newReserveContext(t, form)
	h := NewReservationHandler(reservations, rooms)

	if err := h.Reserve(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 re-render, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, msgMissingReservation) || !strings.Contains(body, "Garden Single") {
		t.Fatalf("expected detail page with message")
	}
	if len(reservations.created) != 0 {
		t.Fatalf("no reservation should be created")
	}
}

func TestReservationHandler_Reserve_RejectsBadGuestCount(t *testing.T) {
	for _, guests := range []string{"0", "-1", "two"} {
		form := reserveValues()
		form.Set("guests", guests)
		c, reservations, rooms, rec := newReserveContext(t, form)
		h := NewReservationHandler(reservations, rooms)

		if err := h.Reserve(c); err != nil {
			t.Fatalf("guests=%s: handler returned error: %v", guests, err)
		}
		if rec.Code != http.StatusOK || len(reservations.created) != 0 {
			t.Fatalf("guests=%s: expected re-render without booking", guests)
		}
	}
}

func TestReservationHandler_History_RendersReservations(t *testing.T) {
	checkIn := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	reservations := &stubReservationService{
		history: []ports.ReservationWithRoom{
			{
				Reservation: &domain.Reservation{ID: "res-1", CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, 3), Guests: 2},
				Room:        &domain.Room{ID: "r1", Name: "Garden Single"},
			},
			{
				Reservation: &domain.Reservation{ID: "res-2", CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, 1), Guests: 1},
				Room:        nil,
			},
		},
	}
	h := NewReservationHandler(reservations, &stubRoomService{})

	c, rec := newTestContext(t, http.MethodGet, "/my-reservations", nil)
	middleware.SetSession(c, guestSession())

	if err := h.History(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Garden Single") {
		t.Fatalf("expected room name in body")
	}
	if !strings.Contains(body, "room no longer available") {
		t.Fatalf("dangling reference should render a placeholder")
	}
}
