package application

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
)

// Desk is the front desk: it owns the catalog and the ledger and keeps them
// consistent while booking.
type Desk struct {
	catalog *RoomCatalog
	ledger  *ReservationLedger
	logger  *slog.Logger
}

// NewDesk constructs a desk over an already seeded catalog.
func NewDesk(catalog *RoomCatalog, ledger *ReservationLedger, logger *slog.Logger) *Desk {
	return &Desk{catalog: catalog, ledger: ledger, logger: defaultLogger(logger)}
}

func (d *Desk) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, d.logger, "Desk", operation, attrs...)
}

// AvailableRooms lists the rooms that can be booked right now.
func (d *Desk) AvailableRooms(ctx context.Context) iter.Seq2[Room, error] {
	return d.catalog.ListAvailable(ctx)
}

// CheckRoom returns the room when it exists and is available. It returns
// ErrNotFound or ErrAlreadyReserved otherwise.
func (d *Desk) CheckRoom(ctx context.Context, number int) (Room, error) {
	room, err := d.catalog.Get(ctx, number)
	if err != nil {
		return Room{}, err
	}
	if !room.Available {
		return room, ErrAlreadyReserved
	}
	return room, nil
}

// MakeReservation books a room. Nothing is mutated unless the room is
// available and the stay is valid.
func (d *Desk) MakeReservation(ctx context.Context, params MakeReservationParams) (reservation Reservation, err error) {
	if d == nil || d.catalog == nil || d.ledger == nil {
		err = fmt.Errorf("desk not configured")
		return
	}

	logger := d.loggerWith(ctx, "MakeReservation", "room_number", params.RoomNumber)
	defer func() { logOutcome(ctx, logger, err, "reservation rejected", "reservation made") }()

	var room Room
	room, err = d.CheckRoom(ctx, params.RoomNumber)
	if err != nil {
		return
	}

	if err = validateStay(params.CustomerName, params.CheckIn, params.CheckOut); err != nil {
		return
	}

	if err = d.catalog.Reserve(ctx, room.Number); err != nil {
		return
	}
	room.Available = false

	reservation, err = d.ledger.Create(ctx, room, params.CheckIn, params.CheckOut, params.CustomerName)
	if err != nil {
		// Undo the availability flip so no room is left reserved without a booking.
		if freeErr := d.catalog.Free(ctx, room.Number); freeErr != nil {
			err = errors.Join(err, fmt.Errorf("release room %d: %w", room.Number, freeErr))
		}
		return
	}
	return
}

// ViewReservation returns the reservation held for a room.
func (d *Desk) ViewReservation(ctx context.Context, roomNumber int) (Reservation, error) {
	return d.ledger.Get(ctx, roomNumber)
}
