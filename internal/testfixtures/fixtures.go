package testfixtures

import (
	"github.com/example/hotel-desk/internal/calendar"
	"github.com/example/hotel-desk/internal/persistence"
)

// ----------------------------- Room fixtures -----------------------------

// RoomOption configures a generated room record.
type RoomOption func(*persistence.Room)

// NewRoom returns an available single room numbered 101 with optional
// overrides applied.
func NewRoom(opts ...RoomOption) persistence.Room {
	room := persistence.Room{
		Number:     101,
		Category:   "Single",
		PriceCents: 10000,
		Available:  true,
	}
	for _, opt := range opts {
		opt(&room)
	}
	return room
}

// WithRoomNumber overrides the room number.
func WithRoomNumber(number int) RoomOption {
	return func(r *persistence.Room) {
		r.Number = number
	}
}

// WithRoomCategory overrides the room category.
func WithRoomCategory(category string) RoomOption {
	return func(r *persistence.Room) {
		r.Category = category
	}
}

// WithRoomPriceCents overrides the nightly rate.
func WithRoomPriceCents(cents int64) RoomOption {
	return func(r *persistence.Room) {
		r.PriceCents = cents
	}
}

// DefaultRooms returns the three rooms the desk opens with.
func DefaultRooms() []persistence.Room {
	return []persistence.Room{
		NewRoom(),
		NewRoom(WithRoomNumber(102), WithRoomCategory("Double"), WithRoomPriceCents(15000)),
		NewRoom(WithRoomNumber(103), WithRoomCategory("Suite"), WithRoomPriceCents(25000)),
	}
}

// -------------------------- Reservation fixtures --------------------------

// ReservationOption configures a generated reservation record.
type ReservationOption func(*persistence.Reservation)

// NewReservation returns a three night booking of room 101 for Alice
// starting on 2024-01-01.
func NewReservation(opts ...ReservationOption) persistence.Reservation {
	reservation := persistence.Reservation{
		RoomNumber:   101,
		Confirmation: "res-1",
		CustomerName: "Alice",
		CheckIn:      calendar.NewDate(2024, 1, 1),
		CheckOut:     calendar.NewDate(2024, 1, 4),
		TotalCents:   30000,
		CreatedAt:    ReferenceTime(),
	}
	for _, opt := range opts {
		opt(&reservation)
	}
	return reservation
}

// WithReservationRoom overrides the booked room number.
func WithReservationRoom(number int) ReservationOption {
	return func(r *persistence.Reservation) {
		r.RoomNumber = number
	}
}

// WithReservationConfirmation overrides the confirmation code.
func WithReservationConfirmation(code string) ReservationOption {
	return func(r *persistence.Reservation) {
		r.Confirmation = code
	}
}

// WithReservationCustomer overrides the guest name.
func WithReservationCustomer(name string) ReservationOption {
	return func(r *persistence.Reservation) {
		r.CustomerName = name
	}
}

// WithReservationStay overrides the stay and its total.
func WithReservationStay(checkIn, checkOut calendar.Date, totalCents int64) ReservationOption {
	return func(r *persistence.Reservation) {
		r.CheckIn = checkIn
		r.CheckOut = checkOut
		r.TotalCents = totalCents
	}
}
