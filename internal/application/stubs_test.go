package application

import (
	"context"
	"iter"
	"time"

	"github.com/example/hotel-desk/internal/calendar"
	"github.com/example/hotel-desk/internal/persistence"
)

type roomRepoStub struct {
	rooms map[int]Room
	order []int

	createErr  error
	listErr    error
	reserveErr error
	listCalls  int
	freedIDs   []int
}

func newRoomRepoStub() *roomRepoStub {
	return &roomRepoStub{rooms: make(map[int]Room)}
}

func (r *roomRepoStub) CreateRoom(ctx context.Context, room Room) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, ok := r.rooms[room.Number]; ok {
		return persistence.ErrDuplicate
	}
	r.rooms[room.Number] = room
	r.order = append(r.order, room.Number)
	return nil
}

func (r *roomRepoStub) GetRoom(ctx context.Context, number int) (Room, error) {
	room, ok := r.rooms[number]
	if !ok {
		return Room{}, persistence.ErrNotFound
	}
	return room, nil
}

func (r *roomRepoStub) ListRooms(ctx context.Context) ([]Room, error) {
	r.listCalls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]Room, 0, len(r.order))
	for _, number := range r.order {
		out = append(out, r.rooms[number])
	}
	return out, nil
}

func (r *roomRepoStub) MarkReserved(ctx context.Context, number int) error {
	if r.reserveErr != nil {
		return r.reserveErr
	}
	room, ok := r.rooms[number]
	if !ok {
		return persistence.ErrNotFound
	}
	if !room.Available {
		return persistence.ErrConflict
	}
	room.Available = false
	r.rooms[number] = room
	return nil
}

func (r *roomRepoStub) MarkAvailable(ctx context.Context, number int) error {
	room, ok := r.rooms[number]
	if !ok {
		return persistence.ErrNotFound
	}
	room.Available = true
	r.rooms[number] = room
	r.freedIDs = append(r.freedIDs, number)
	return nil
}

type reservationRepoStub struct {
	reservations map[int]Reservation
	putErr       error
	puts         int
}

func newReservationRepoStub() *reservationRepoStub {
	return &reservationRepoStub{reservations: make(map[int]Reservation)}
}

func (r *reservationRepoStub) PutReservation(ctx context.Context, reservation Reservation) error {
	if r.putErr != nil {
		return r.putErr
	}
	r.puts++
	// Only the room number is kept, as the real repositories do.
	reservation.Room = Room{Number: reservation.Room.Number}
	r.reservations[reservation.Room.Number] = reservation
	return nil
}

func (r *reservationRepoStub) GetReservation(ctx context.Context, roomNumber int) (Reservation, error) {
	reservation, ok := r.reservations[roomNumber]
	if !ok {
		return Reservation{}, persistence.ErrNotFound
	}
	return reservation, nil
}

var referenceTime = time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)

func date(value string) calendar.Date {
	d, err := calendar.ParseDate(value)
	if err != nil {
		panic(err)
	}
	return d
}

type deskHarness struct {
	rooms        *roomRepoStub
	reservations *reservationRepoStub
	catalog      *RoomCatalog
	ledger       *ReservationLedger
	desk         *Desk
}

func newDeskHarness() *deskHarness {
	h := &deskHarness{
		rooms:        newRoomRepoStub(),
		reservations: newReservationRepoStub(),
	}
	h.catalog = NewRoomCatalog(h.rooms)
	if err := h.catalog.Seed(context.Background(), DefaultSeed()); err != nil {
		panic(err)
	}
	h.ledger = NewReservationLedger(h.reservations, h.catalog, func() string { return "res-1" }, func() time.Time { return referenceTime })
	h.desk = NewDesk(h.catalog, h.ledger, nil)
	return h
}

func collect(seq iter.Seq2[Room, error]) ([]Room, error) {
	var rooms []Room
	for room, err := range seq {
		if err != nil {
			return rooms, err
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}
