package domain

import "errors"

// RoomType enumerates the categories a room can be offered as.
type RoomType string

const (
	RoomSingle RoomType = "single"
	RoomDouble RoomType = "double"
	RoomSuite  RoomType = "suite"
)

var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrInvalidRoomType = errors.New("invalid room type")
)

// Valid reports whether t is one of the known room types.
func (t RoomType) Valid() bool {
	switch t {
	case RoomSingle, RoomDouble, RoomSuite:
		return true
	}
	return false
}

// Room is a bookable hotel room. Inactive rooms stay in the inventory but
// are hidden from every non-admin flow.
type Room struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Type          RoomType `json:"type"`
	PricePerNight float64  `json:"price_per_night"`
	Capacity      int      `json:"capacity"`
	Description   string   `json:"description,omitempty"`
	Amenities     []string `json:"amenities"`
	ImageURL      string   `json:"image_url,omitempty"`
	IsActive      bool     `json:"is_active"`
}
