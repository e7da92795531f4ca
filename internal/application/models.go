package application

import (
	"strings"
	"time"

	"github.com/example/hotel-desk/internal/calendar"
)

// RoomInput captures caller provided room fields.
type RoomInput struct {
	Number        int
	Category      string
	PricePerNight Money
}

// Room represents a catalog entry for a bookable hotel room.
type Room struct {
	Number        int
	Category      string
	PricePerNight Money
	Available     bool
}

// NewRoom validates input and returns an available room.
func NewRoom(input RoomInput) (Room, error) {
	if vErr := validateRoomInput(input); vErr.HasErrors() {
		return Room{}, vErr
	}
	return Room{
		Number:        input.Number,
		Category:      strings.TrimSpace(input.Category),
		PricePerNight: input.PricePerNight,
		Available:     true,
	}, nil
}

// DefaultSeed returns the rooms the desk opens with.
func DefaultSeed() []RoomInput {
	return []RoomInput{
		{Number: 101, Category: "Single", PricePerNight: Dollars(100, 0)},
		{Number: 102, Category: "Double", PricePerNight: Dollars(150, 0)},
		{Number: 103, Category: "Suite", PricePerNight: Dollars(250, 0)},
	}
}

// Reservation is the active booking for a room. Room is resolved from the
// catalog when the reservation is read.
type Reservation struct {
	Confirmation string
	Room         Room
	CustomerName string
	CheckIn      calendar.Date
	CheckOut     calendar.Date
	TotalPrice   Money
	CreatedAt    time.Time
}

// Nights returns the number of nights between check-in and check-out.
func (r Reservation) Nights() int {
	return r.CheckIn.DaysUntil(r.CheckOut)
}

// MakeReservationParams wraps the data required to book a room.
type MakeReservationParams struct {
	RoomNumber   int
	CustomerName string
	CheckIn      calendar.Date
	CheckOut     calendar.Date
}

func validateRoomInput(input RoomInput) *ValidationError {
	vErr := &ValidationError{}

	if input.Number <= 0 {
		vErr.add("number", "room number must be positive")
	}
	if strings.TrimSpace(input.Category) == "" {
		vErr.add("category", "category is required")
	}
	if input.PricePerNight <= 0 {
		vErr.add("price_per_night", "price per night must be positive")
	}

	return vErr
}

// validateStay checks the stay before anything is mutated. A bad date range
// is reported as ErrInvalidDateRange rather than a field error.
func validateStay(customerName string, checkIn, checkOut calendar.Date) error {
	if !checkOut.After(checkIn) {
		return ErrInvalidDateRange
	}

	vErr := &ValidationError{}
	if strings.TrimSpace(customerName) == "" {
		vErr.add("customer_name", "customer name is required")
	}
	if vErr.HasErrors() {
		return vErr
	}
	return nil
}
