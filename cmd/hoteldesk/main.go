package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/example/hotel-desk/internal/application"
	"github.com/example/hotel-desk/internal/config"
	"github.com/example/hotel-desk/internal/console"
	"github.com/example/hotel-desk/internal/logging"
	"github.com/example/hotel-desk/internal/persistence"
	"github.com/example/hotel-desk/internal/persistence/memory"
	"github.com/example/hotel-desk/internal/persistence/sqlite"
)

func main() {
	if err := run(context.Background(), os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run wires the desk and drives the console until it terminates. Failures
// are logged to errOut before being returned.
func run(ctx context.Context, in io.Reader, out, errOut io.Writer) error {
	cfg, err := config.Load(".env")
	if err != nil {
		slog.New(slog.NewTextHandler(errOut, nil)).Error("failed to load configuration", "error", err)
		return err
	}

	logger := logging.New(errOut, cfg.LogLevel, cfg.LogFormat)
	ctx = logging.ContextWithLogger(ctx, logger)

	store, err := openStorage(ctx, cfg)
	if err != nil {
		logger.Error("failed to open storage", "storage", cfg.Storage, "error", err)
		return err
	}
	defer func() {
		if cerr := store.closer.Close(); cerr != nil {
			logger.Error("failed to close storage", "error", cerr)
		}
	}()

	catalog := application.NewRoomCatalogWithLogger(newRoomRepositoryAdapter(store.rooms), logger)
	if err := catalog.Seed(ctx, application.DefaultSeed()); err != nil {
		logger.Error("failed to seed room catalog", "error", err)
		return err
	}

	ledger := application.NewReservationLedgerWithLogger(
		newReservationRepositoryAdapter(store.reservations),
		catalog,
		uuid.NewString,
		time.Now,
		logger,
	)
	desk := application.NewDesk(catalog, ledger, logger)

	logger.Info("front desk open", "storage", cfg.Storage)
	if err := console.New(desk, in, out, logger).Run(ctx); err != nil {
		logger.Error("console stopped", "error", err)
		return err
	}
	return nil
}

type storage struct {
	rooms        persistence.RoomRepository
	reservations persistence.ReservationRepository
	closer       io.Closer
}

func openStorage(ctx context.Context, cfg config.Config) (storage, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		s := memory.New()
		return storage{rooms: s, reservations: s, closer: s}, nil
	case config.StorageSQLite:
		s, err := sqlite.Open(ctx, sqlite.DefaultConfig(cfg.SQLiteDSN))
		if err != nil {
			return storage{}, err
		}
		return storage{rooms: s.Rooms, reservations: s.Reservations, closer: s}, nil
	default:
		return storage{}, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}
