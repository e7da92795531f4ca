package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/hotel-desk/internal/persistence"
)

// RoomRepository implements persistence.RoomRepository using SQLite
type RoomRepository struct {
	pool *ConnectionPool
}

// NewRoomRepository creates a new SQLite room repository
func NewRoomRepository(pool *ConnectionPool) *RoomRepository {
	return &RoomRepository{pool: pool}
}

// CreateRoom inserts a new room at the end of the catalog order.
func (r *RoomRepository) CreateRoom(ctx context.Context, room persistence.Room) error {
	if room.Number <= 0 || room.Category == "" || room.PriceCents <= 0 {
		return persistence.ErrConstraintViolation
	}

	query := `
		INSERT INTO rooms (number, category, price_cents, available)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.pool.DB().ExecContext(ctx, query,
		room.Number,
		room.Category,
		room.PriceCents,
		boolToInt(room.Available),
	)
	if err != nil {
		return mapError(err)
	}

	return nil
}

// GetRoom retrieves a room by number.
func (r *RoomRepository) GetRoom(ctx context.Context, number int) (persistence.Room, error) {
	query := `
		SELECT number, category, price_cents, available
		FROM rooms
		WHERE number = ?
	`

	room, err := scanRoom(r.pool.DB().QueryRowContext(ctx, query, number))
	if err != nil {
		return persistence.Room{}, mapError(err)
	}
	return room, nil
}

// ListRooms returns all rooms in insertion order.
func (r *RoomRepository) ListRooms(ctx context.Context) ([]persistence.Room, error) {
	query := `
		SELECT number, category, price_cents, available
		FROM rooms
		ORDER BY position ASC
	`

	rows, err := r.pool.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var rooms []persistence.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, mapError(err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	return rooms, nil
}

// MarkReserved flips an available room to unavailable inside a transaction.
func (r *RoomRepository) MarkReserved(ctx context.Context, number int) error {
	return r.pool.WithTransaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			"UPDATE rooms SET available = 0 WHERE number = ? AND available = 1", number)
		if err != nil {
			return mapError(err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rowsAffected > 0 {
			return nil
		}

		// Nothing changed: either the room is unknown or already reserved.
		var exists int
		err = tx.QueryRowContext(ctx, "SELECT 1 FROM rooms WHERE number = ?", number).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return persistence.ErrNotFound
		}
		if err != nil {
			return mapError(err)
		}
		return persistence.ErrConflict
	})
}

// MarkAvailable makes a room available regardless of its current state.
func (r *RoomRepository) MarkAvailable(ctx context.Context, number int) error {
	result, err := r.pool.DB().ExecContext(ctx,
		"UPDATE rooms SET available = 1 WHERE number = ?", number)
	if err != nil {
		return mapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return persistence.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoom(row rowScanner) (persistence.Room, error) {
	var room persistence.Room
	var available int64
	if err := row.Scan(&room.Number, &room.Category, &room.PriceCents, &available); err != nil {
		return persistence.Room{}, err
	}
	room.Available = available != 0
	return room, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
