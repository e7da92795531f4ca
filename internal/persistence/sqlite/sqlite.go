// Package sqlite implements the persistence repositories on top of
// modernc.org/sqlite. The default DSN is an in-memory database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS rooms (
		position    INTEGER PRIMARY KEY AUTOINCREMENT,
		number      INTEGER NOT NULL UNIQUE CHECK (number > 0),
		category    TEXT    NOT NULL CHECK (length(category) > 0),
		price_cents INTEGER NOT NULL CHECK (price_cents > 0),
		available   INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS reservations (
		room_number   INTEGER PRIMARY KEY REFERENCES rooms (number),
		confirmation  TEXT    NOT NULL,
		customer_name TEXT    NOT NULL,
		check_in      TEXT    NOT NULL,
		check_out     TEXT    NOT NULL CHECK (check_out > check_in),
		total_cents   INTEGER NOT NULL,
		created_at    TEXT    NOT NULL
	)`,
}

// Storage bundles the SQLite-backed repositories over a single pool.
type Storage struct {
	pool         *ConnectionPool
	Rooms        *RoomRepository
	Reservations *ReservationRepository
}

// Open connects to the database described by cfg and applies the schema.
func Open(ctx context.Context, cfg Config) (*Storage, error) {
	pool, err := NewConnectionPool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	s := &Storage{
		pool:         pool,
		Rooms:        NewRoomRepository(pool),
		Reservations: NewReservationRepository(pool),
	}
	if err := s.Migrate(ctx); err != nil {
		_ = pool.Close()
		return nil, err
	}
	return s, nil
}

// Migrate creates the tables when they do not exist yet.
func (s *Storage) Migrate(ctx context.Context) error {
	return s.pool.WithTransaction(ctx, func(tx *sql.Tx) error {
		for _, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("sqlite: apply schema: %w", err)
			}
		}
		return nil
	})
}

// Close releases the underlying connection pool.
func (s *Storage) Close() error {
	return s.pool.Close()
}
