package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hotel-louvain/booking-system/internal/api/middleware"
	"github.com/hotel-louvain/booking-system/internal/core/ports"
)

// RoomHandler serves the public browsing pages.
type RoomHandler struct {
	rooms ports.RoomService
}

func NewRoomHandler(rooms ports.RoomService) *RoomHandler {
	return &RoomHandler{rooms: rooms}
}

// Home handles GET /: up to six active rooms.
func (h *RoomHandler) Home(c echo.Context) error {
	rooms, err := h.rooms.Featured(c.Request().Context())
	if err != nil {
		return err
	}

	data := echo.Map{"Rooms": rooms}
	if sess := middleware.SessionFromContext(c); sess != nil {
		data["User"] = sess.User
	}
	return c.Render(http.StatusOK, "index.html", data)
}

// Search handles GET /rooms with optional type and price filters.
func (h *RoomHandler) Search(c echo.Context) error {
	var f roomSearchForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	rooms, err := h.rooms.Search(c.Request().Context(), f.input())
	if err != nil {
		return err
	}

	selected := f.Type
	if selected == "" {
		selected = "all"
	}
	return c.Render(http.StatusOK, "rooms.html", echo.Map{
		"Rooms": rooms,
		"Filters": echo.Map{
			"Type":     selected,
			"MinPrice": f.MinPrice,
			"MaxPrice": f.MaxPrice,
		},
	})
}

// Detail handles GET /rooms/:id. Unknown and inactive rooms 404 for every
// caller.
func (h *RoomHandler) Detail(c echo.Context) error {
	room, err := h.rooms.GetActive(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "room_detail.html", echo.Map{"Room": room})
}
