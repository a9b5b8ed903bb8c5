package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hotel-louvain/booking-system/internal/api/metrics"
	"github.com/hotel-louvain/booking-system/internal/api/middleware"
	"github.com/hotel-louvain/booking-system/internal/core/ports"
)

// ReservationHandler serves booking and reservation history. Both routes sit
// behind RequireAuth, so the session is always present.
type ReservationHandler struct {
	reservations ports.ReservationService
	rooms        ports.RoomService
}

func NewReservationHandler(reservations ports.ReservationService, rooms ports.RoomService) *ReservationHandler {
	return &ReservationHandler{reservations: reservations, rooms: rooms}
}

// Reserve handles POST /rooms/:id/reserve. A form failure re-renders the
// room detail page with a message; success redirects to the caller's
// history.
func (h *ReservationHandler) Reserve(c echo.Context) error {
	sess := middleware.SessionFromContext(c)
	roomID := c.Param("id")

	var f reserveForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	input, ok := f.input()
	if !ok {
		room, err := h.rooms.GetActive(c.Request().Context(), roomID)
		if err != nil {
			return err
		}
		return c.Render(http.StatusOK, "room_detail.html", echo.Map{
			"Room":  room,
			"Error": msgMissingReservation,
		})
	}

	input.UserID = sess.User.UserID
	input.RoomID = roomID
	if _, err := h.reservations.Create(c.Request().Context(), input); err != nil {
		return err
	}

	metrics.ReservationsCreatedTotal.Inc()
	return c.Redirect(http.StatusFound, "/my-reservations")
}

// History handles GET /my-reservations.
func (h *ReservationHandler) History(c echo.Context) error {
	sess := middleware.SessionFromContext(c)

	items, err := h.reservations.HistoryForUser(c.Request().Context(), sess.User.UserID)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "my_reservations.html", echo.Map{
		"Reservations": items,
		"User":         sess.User,
	})
}
