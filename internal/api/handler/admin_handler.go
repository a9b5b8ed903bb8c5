package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hotel-louvain/booking-system/internal/api/metrics"
	"github.com/hotel-louvain/booking-system/internal/core/ports"
)

// AdminHandler serves the staff interface. Every route sits behind
// RequireAdmin.
type AdminHandler struct {
	rooms        ports.RoomService
	reservations ports.ReservationService
}

func NewAdminHandler(rooms ports.RoomService, reservations ports.ReservationService) *AdminHandler {
	return &AdminHandler{rooms: rooms, reservations: reservations}
}

// Dashboard handles GET /admin.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	return c.Render(http.StatusOK, "admin_index.html", echo.Map{})
}

// ListRooms handles GET /admin/rooms: every room, active or not, by name.
func (h *AdminHandler) ListRooms(c echo.Context) error {
	rooms, err := h.rooms.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "admin_rooms.html", echo.Map{"Rooms": rooms})
}

// CreateRoom handles POST /admin/rooms.
func (h *AdminHandler) CreateRoom(c echo.Context) error {
	var f adminRoomForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	if err := c.Validate(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.rooms.Create(c.Request().Context(), f.input()); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/admin/rooms")
}

// ToggleRoom handles POST /admin/rooms/:id/toggle.
func (h *AdminHandler) ToggleRoom(c echo.Context) error {
	room, err := h.rooms.ToggleActive(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	state := "inactive"
	if room.IsActive {
		state = "active"
	}
	metrics.RoomTogglesTotal.WithLabelValues(state).Inc()
	return c.Redirect(http.StatusFound, "/admin/rooms")
}

// DeleteRoom handles POST /admin/rooms/:id/delete. Reservations referencing
// the room are left in place.
func (h *AdminHandler) DeleteRoom(c echo.Context) error {
	if err := h.rooms.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/admin/rooms")
}

// ListReservations handles GET /admin/reservations.
func (h *AdminHandler) ListReservations(c echo.Context) error {
	items, err := h.reservations.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "admin_reservations.html", echo.Map{"Reservations": items})
}
