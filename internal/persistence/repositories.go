package persistence

import "context"

// RoomRepository stores the room catalog. ListRooms returns rooms in the
// order they were created.
type RoomRepository interface {
	CreateRoom(ctx context.Context, room Room) error
	GetRoom(ctx context.Context, number int) (Room, error)
	ListRooms(ctx context.Context) ([]Room, error)
	// MarkReserved flips an available room to unavailable. It returns
	// ErrConflict when the room is already unavailable.
	MarkReserved(ctx context.Context, number int) error
	MarkAvailable(ctx context.Context, number int) error
}

// ReservationRepository stores at most one reservation per room number.
type ReservationRepository interface {
	// PutReservation stores the reservation, replacing any previous entry
	// for the same room number.
	PutReservation(ctx context.Context, reservation Reservation) error
	GetReservation(ctx context.Context, roomNumber int) (Reservation, error)
}
