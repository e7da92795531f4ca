package testfixtures

import (
	"context"
	"testing"

	"github.com/example/hotel-desk/internal/persistence"
	"github.com/example/hotel-desk/internal/persistence/memory"
	"github.com/example/hotel-desk/internal/persistence/sqlite"
)

// Backend exposes the repositories of one storage implementation.
type Backend struct {
	Name         string
	Rooms        persistence.RoomRepository
	Reservations persistence.ReservationRepository
}

// Backends opens a fresh instance of every storage implementation. Each is
// closed when the test finishes.
func Backends(tb testing.TB) []Backend {
	tb.Helper()

	mem := memory.New()
	tb.Cleanup(func() {
		_ = mem.Close()
	})

	db, err := sqlite.Open(context.Background(), sqlite.DefaultConfig(sqlite.InMemoryDSN))
	if err != nil {
		tb.Fatalf("failed to open sqlite storage: %v", err)
	}
	tb.Cleanup(func() {
		_ = db.Close()
	})

	return []Backend{
		{Name: "memory", Rooms: mem, Reservations: mem},
		{Name: "sqlite", Rooms: db.Rooms, Reservations: db.Reservations},
	}
}

// SeedRooms stores rooms in order and fails the test on the first error.
func SeedRooms(tb testing.TB, repo persistence.RoomRepository, rooms ...persistence.Room) {
	tb.Helper()

	for _, room := range rooms {
		if err := repo.CreateRoom(context.Background(), room); err != nil {
			tb.Fatalf("failed to seed room %d: %v", room.Number, err)
		}
	}
}
