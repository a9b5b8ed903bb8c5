package handler

import (
	"strconv"
	"time"

	"github.com/hotel-louvain/booking-system/internal/core/ports"
)

// Form messages rendered back to the visitor on validation failure.
const (
	msgMissingFields      = "please fill in all fields"
	msgPasswordMismatch   = "passwords do not match"
	msgAccountExists      = "an account with this email already exists"
	msgBadCredentials     = "incorrect email or password"
	msgServerError        = "server error, please try again"
	msgMissingReservation = "please fill in all reservation details"
)

const dateLayout = "2006-01-02"

type registerForm struct {
	Email           string `form:"email"`
	Username        string `form:"username"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirmPassword"`
}

type loginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// roomSearchForm carries the raw /rooms query parameters. Prices are kept as
// strings so the original input can be echoed back into the form; coercion
// happens in input().
type roomSearchForm struct {
	Type     string `query:"type"`
	MinPrice string `query:"minPrice"`
	MaxPrice string `query:"maxPrice"`
}

// input coerces the search form. Non-numeric price input is treated as
// absent rather than producing an unbounded comparison.
func (f roomSearchForm) input() ports.RoomSearchInput {
	return ports.RoomSearchInput{
		Type:     f.Type,
		MinPrice: parsePrice(f.MinPrice),
		MaxPrice: parsePrice(f.MaxPrice),
	}
}

type reserveForm struct {
	CheckIn  string `form:"checkIn"`
	CheckOut string `form:"checkOut"`
	Guests   string `form:"guests"`
}

// input coerces the reservation form. The second return is false when any
// field is missing or fails coercion; date ordering and guest counts against
// capacity are deliberately not checked.
func (f reserveForm) input() (ports.CreateReservationInput, bool) {
	if f.CheckIn == "" || f.CheckOut == "" || f.Guests == "" {
		return ports.CreateReservationInput{}, false
	}

	checkIn, err := time.Parse(dateLayout, f.CheckIn)
	if err != nil {
		return ports.CreateReservationInput{}, false
	}
	checkOut, err := time.Parse(dateLayout, f.CheckOut)
	if err != nil {
		return ports.CreateReservationInput{}, false
	}
	guests, err := strconv.Atoi(f.Guests)
	if err != nil || guests < 1 {
		return ports.CreateReservationInput{}, false
	}

	return ports.CreateReservationInput{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   guests,
	}, true
}

type adminRoomForm struct {
	Name          string  `form:"name"          validate:"required"`
	Type          string  `form:"type"          validate:"required,oneof=single double suite"`
	PricePerNight float64 `form:"pricePerNight" validate:"required,gt=0"`
	Capacity      int     `form:"capacity"      validate:"required,min=1"`
	Description   string  `form:"description"`
	Amenities     string  `form:"amenities"`
	ImageURL      string  `form:"imageUrl"`
}

func (f adminRoomForm) input() ports.CreateRoomInput {
	return ports.CreateRoomInput{
		Name:          f.Name,
		Type:          f.Type,
		PricePerNight: f.PricePerNight,
		Capacity:      f.Capacity,
		Description:   f.Description,
		Amenities:     f.Amenities,
		ImageURL:      f.ImageURL,
	}
}

func parsePrice(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
