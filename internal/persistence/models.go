package persistence

import (
	"time"

	"github.com/example/hotel-desk/internal/calendar"
)

// Room represents a catalog entry for a bookable hotel room.
type Room struct {
	Number     int
	Category   string
	PriceCents int64
	Available  bool
}

// Reservation represents the active booking stored for a room.
type Reservation struct {
	RoomNumber   int
	Confirmation string
	CustomerName string
	CheckIn      calendar.Date
	CheckOut     calendar.Date
	TotalCents   int64
	CreatedAt    time.Time
}
