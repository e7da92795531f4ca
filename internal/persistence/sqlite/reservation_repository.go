package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/example/hotel-desk/internal/calendar"
	"github.com/example/hotel-desk/internal/persistence"
)

// ReservationRepository implements persistence.ReservationRepository using SQLite
type ReservationRepository struct {
	pool *ConnectionPool
}

// NewReservationRepository creates a new SQLite reservation repository
func NewReservationRepository(pool *ConnectionPool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

// PutReservation inserts the reservation or replaces the one already stored
// for the same room.
func (r *ReservationRepository) PutReservation(ctx context.Context, reservation persistence.Reservation) error {
	query := `
		INSERT INTO reservations (room_number, confirmation, customer_name, check_in, check_out, total_cents, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (room_number) DO UPDATE SET
			confirmation  = excluded.confirmation,
			customer_name = excluded.customer_name,
			check_in      = excluded.check_in,
			check_out     = excluded.check_out,
			total_cents   = excluded.total_cents,
			created_at    = excluded.created_at
	`

	_, err := r.pool.DB().ExecContext(ctx, query,
		reservation.RoomNumber,
		reservation.Confirmation,
		reservation.CustomerName,
		reservation.CheckIn.String(),
		reservation.CheckOut.String(),
		reservation.TotalCents,
		reservation.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return mapError(err)
	}
	return nil
}

// GetReservation retrieves the reservation stored for a room.
func (r *ReservationRepository) GetReservation(ctx context.Context, roomNumber int) (persistence.Reservation, error) {
	query := `
		SELECT room_number, confirmation, customer_name, check_in, check_out, total_cents, created_at
		FROM reservations
		WHERE room_number = ?
	`

	var reservation persistence.Reservation
	var checkInStr, checkOutStr, createdAtStr string

	err := r.pool.DB().QueryRowContext(ctx, query, roomNumber).Scan(
		&reservation.RoomNumber,
		&reservation.Confirmation,
		&reservation.CustomerName,
		&checkInStr,
		&checkOutStr,
		&reservation.TotalCents,
		&createdAtStr,
	)
	if err != nil {
		return persistence.Reservation{}, mapError(err)
	}

	if reservation.CheckIn, err = calendar.ParseDate(checkInStr); err != nil {
		return persistence.Reservation{}, fmt.Errorf("failed to parse check_in: %w", err)
	}
	if reservation.CheckOut, err = calendar.ParseDate(checkOutStr); err != nil {
		return persistence.Reservation{}, fmt.Errorf("failed to parse check_out: %w", err)
	}
	if reservation.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAtStr); err != nil {
		return persistence.Reservation{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return reservation, nil
}
