package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/example/hotel-desk/internal/calendar"
	"github.com/example/hotel-desk/internal/persistence"
)

// ReservationRepository captures the persistence operations needed by the ledger.
type ReservationRepository interface {
	PutReservation(ctx context.Context, reservation Reservation) error
	GetReservation(ctx context.Context, roomNumber int) (Reservation, error)
}

// RoomLookup resolves the catalog entry a reservation refers to.
type RoomLookup interface {
	Get(ctx context.Context, number int) (Room, error)
}

// ReservationLedger owns the mapping from room number to its reservation.
type ReservationLedger struct {
	reservations ReservationRepository
	rooms        RoomLookup
	idGenerator  func() string
	now          func() time.Time
	logger       *slog.Logger
}

// NewReservationLedger constructs a ledger with the provided dependencies.
func NewReservationLedger(reservations ReservationRepository, rooms RoomLookup, idGenerator func() string, now func() time.Time) *ReservationLedger {
	return NewReservationLedgerWithLogger(reservations, rooms, idGenerator, now, nil)
}

// NewReservationLedgerWithLogger constructs a ledger with a specified logger.
func NewReservationLedgerWithLogger(reservations ReservationRepository, rooms RoomLookup, idGenerator func() string, now func() time.Time, logger *slog.Logger) *ReservationLedger {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	if now == nil {
		now = time.Now
	}
	return &ReservationLedger{
		reservations: reservations,
		rooms:        rooms,
		idGenerator:  idGenerator,
		now:          now,
		logger:       defaultLogger(logger),
	}
}

func (l *ReservationLedger) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, l.logger, "ReservationLedger", operation, attrs...)
}

// Create records a reservation for room, replacing any earlier entry for the
// same room number. The total price is fixed at creation from the room's
// current nightly price.
func (l *ReservationLedger) Create(ctx context.Context, room Room, checkIn, checkOut calendar.Date, customerName string) (reservation Reservation, err error) {
	if l == nil || l.reservations == nil {
		err = fmt.Errorf("reservation ledger not configured")
		return
	}

	logger := l.loggerWith(ctx, "Create", "room_number", room.Number)
	defer func() {
		if err == nil {
			logger = logger.With("confirmation", reservation.Confirmation, "nights", reservation.Nights())
		}
		logOutcome(ctx, logger, err, "failed to create reservation", "reservation created")
	}()

	if err = validateStay(customerName, checkIn, checkOut); err != nil {
		return
	}

	nights := checkIn.DaysUntil(checkOut)
	reservation = Reservation{
		Confirmation: l.idGenerator(),
		Room:         room,
		CustomerName: strings.TrimSpace(customerName),
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		TotalPrice:   room.PricePerNight.Times(nights),
		CreatedAt:    l.now(),
	}

	if err = l.reservations.PutReservation(ctx, reservation); err != nil {
		err = mapReservationRepoError(err)
		reservation = Reservation{}
		return
	}
	return
}

// Get returns the reservation for a room with its catalog entry resolved.
func (l *ReservationLedger) Get(ctx context.Context, roomNumber int) (Reservation, error) {
	if l == nil || l.reservations == nil {
		return Reservation{}, fmt.Errorf("reservation ledger not configured")
	}

	reservation, err := l.reservations.GetReservation(ctx, roomNumber)
	if err != nil {
		return Reservation{}, mapReservationRepoError(err)
	}

	if l.rooms != nil {
		room, err := l.rooms.Get(ctx, roomNumber)
		if err != nil {
			return Reservation{}, fmt.Errorf("resolve room %d: %w", roomNumber, err)
		}
		reservation.Room = room
	}
	return reservation, nil
}

func mapReservationRepoError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, persistence.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, persistence.ErrConstraintViolation):
		vErr := &ValidationError{}
		vErr.add("reservation", "reservation violates ledger constraints")
		return vErr
	}
	return err
}
