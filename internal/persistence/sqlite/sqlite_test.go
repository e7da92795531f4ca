package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/example/hotel-desk/internal/persistence"
)

var (
	_ persistence.RoomRepository        = (*RoomRepository)(nil)
	_ persistence.ReservationRepository = (*ReservationRepository)(nil)
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	storage, err := Open(context.Background(), DefaultConfig(InMemoryDSN))
	if err != nil {
		t.Fatalf("failed to open storage: %v", err)
	}

	t.Cleanup(func() {
		_ = storage.Close()
	})

	return storage
}

func TestDefaultConfig(t *testing.T) {
	t.Run("pins in-memory databases to one connection", func(t *testing.T) {
		for _, dsn := range []string{"", InMemoryDSN, "file::memory:?cache=shared", "file:hotel?mode=memory"} {
			cfg := DefaultConfig(dsn)
			if cfg.MaxOpenConns != 1 {
				t.Fatalf("expected a single connection for %q, got %d", dsn, cfg.MaxOpenConns)
			}
		}
		if got := DefaultConfig("").DSN; got != InMemoryDSN {
			t.Fatalf("expected empty DSN to default to %q, got %q", InMemoryDSN, got)
		}
	})

	t.Run("recognises in-memory DSNs", func(t *testing.T) {
		for _, dsn := range []string{InMemoryDSN, "file::memory:?cache=shared", "file:hotel?mode=memory"} {
			if !IsInMemory(dsn) {
				t.Fatalf("expected %q to be in-memory", dsn)
			}
		}
		for _, dsn := range []string{"hotel.db", "file:hotel.db", "/tmp/hotel.db"} {
			if IsInMemory(dsn) {
				t.Fatalf("expected %q to be a file database", dsn)
			}
		}
	})

	t.Run("allows a small pool for file databases", func(t *testing.T) {
		cfg := DefaultConfig("hotel.db")
		if cfg.MaxOpenConns <= 1 {
			t.Fatalf("expected pooled connections, got %d", cfg.MaxOpenConns)
		}
		if !cfg.EnableForeignKeys {
			t.Fatalf("expected foreign keys to be enabled")
		}
	})
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects an empty DSN", func(t *testing.T) {
		if _, err := Open(ctx, Config{}); err == nil {
			t.Fatal("expected error for empty DSN")
		}
	})

	t.Run("migrate is idempotent", func(t *testing.T) {
		storage := newTestStorage(t)
		if err := storage.Migrate(ctx); err != nil {
			t.Fatalf("second Migrate failed: %v", err)
		}
		if err := storage.pool.DB().PingContext(ctx); err != nil {
			t.Fatalf("Ping failed: %v", err)
		}
	})

	t.Run("opens file databases", func(t *testing.T) {
		dsn := filepath.Join(t.TempDir(), "hotel.db")
		storage, err := Open(ctx, DefaultConfig(dsn))
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		defer storage.Close()

		if err := storage.Rooms.CreateRoom(ctx, persistence.Room{Number: 1, Category: "Single", PriceCents: 100, Available: true}); err != nil {
			t.Fatalf("CreateRoom failed: %v", err)
		}
	})
}
