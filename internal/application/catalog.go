package application

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"

	"github.com/example/hotel-desk/internal/persistence"
)

// RoomRepository captures the persistence operations needed by the catalog.
type RoomRepository interface {
	CreateRoom(ctx context.Context, room Room) error
	GetRoom(ctx context.Context, number int) (Room, error)
	ListRooms(ctx context.Context) ([]Room, error)
	MarkReserved(ctx context.Context, number int) error
	MarkAvailable(ctx context.Context, number int) error
}

// RoomCatalog owns the fixed set of rooms and their availability.
type RoomCatalog struct {
	rooms  RoomRepository
	logger *slog.Logger
}

// NewRoomCatalog constructs a catalog over the provided repository.
func NewRoomCatalog(rooms RoomRepository) *RoomCatalog {
	return NewRoomCatalogWithLogger(rooms, nil)
}

// NewRoomCatalogWithLogger constructs a catalog with a specified logger.
func NewRoomCatalogWithLogger(rooms RoomRepository, logger *slog.Logger) *RoomCatalog {
	return &RoomCatalog{rooms: rooms, logger: defaultLogger(logger)}
}

func (c *RoomCatalog) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, c.logger, "RoomCatalog", operation, attrs...)
}

// Seed validates every input before storing any of them, so a bad entry
// leaves the catalog untouched.
func (c *RoomCatalog) Seed(ctx context.Context, inputs []RoomInput) (err error) {
	if c == nil || c.rooms == nil {
		return fmt.Errorf("room catalog not configured")
	}

	logger := c.loggerWith(ctx, "Seed", "room_count", len(inputs))
	defer func() { logOutcome(ctx, logger, err, "failed to seed catalog", "catalog seeded") }()

	rooms := make([]Room, 0, len(inputs))
	for _, input := range inputs {
		room, vErr := NewRoom(input)
		if vErr != nil {
			return fmt.Errorf("seed room %d: %w", input.Number, vErr)
		}
		rooms = append(rooms, room)
	}

	for _, room := range rooms {
		if err = c.rooms.CreateRoom(ctx, room); err != nil {
			return fmt.Errorf("seed room %d: %w", room.Number, mapRoomRepoError(err))
		}
	}
	return nil
}

// ListAvailable returns the available rooms in catalog order. The sequence
// reads the repository each time it is ranged over.
func (c *RoomCatalog) ListAvailable(ctx context.Context) iter.Seq2[Room, error] {
	return func(yield func(Room, error) bool) {
		if c == nil || c.rooms == nil {
			yield(Room{}, fmt.Errorf("room catalog not configured"))
			return
		}

		rooms, err := c.rooms.ListRooms(ctx)
		if err != nil {
			err = mapRoomRepoError(err)
			c.loggerWith(ctx, "ListAvailable").ErrorContext(ctx, "failed to list rooms", "error", err, "error_kind", ErrorKind(err))
			yield(Room{}, err)
			return
		}

		for _, room := range rooms {
			if !room.Available {
				continue
			}
			if !yield(room, nil) {
				return
			}
		}
	}
}

// Get returns the room with the given number.
func (c *RoomCatalog) Get(ctx context.Context, number int) (Room, error) {
	if c == nil || c.rooms == nil {
		return Room{}, fmt.Errorf("room catalog not configured")
	}

	room, err := c.rooms.GetRoom(ctx, number)
	if err != nil {
		return Room{}, mapRoomRepoError(err)
	}
	return room, nil
}

// Reserve marks an available room as taken.
func (c *RoomCatalog) Reserve(ctx context.Context, number int) (err error) {
	if c == nil || c.rooms == nil {
		return fmt.Errorf("room catalog not configured")
	}

	logger := c.loggerWith(ctx, "Reserve", "room_number", number)
	defer func() { logOutcome(ctx, logger, err, "failed to reserve room", "room reserved") }()

	if err = c.rooms.MarkReserved(ctx, number); err != nil {
		err = mapRoomRepoError(err)
	}
	return err
}

// Free marks a room as available whatever its current state.
func (c *RoomCatalog) Free(ctx context.Context, number int) (err error) {
	if c == nil || c.rooms == nil {
		return fmt.Errorf("room catalog not configured")
	}

	logger := c.loggerWith(ctx, "Free", "room_number", number)
	defer func() { logOutcome(ctx, logger, err, "failed to free room", "room freed") }()

	if err = c.rooms.MarkAvailable(ctx, number); err != nil {
		err = mapRoomRepoError(err)
	}
	return err
}

func mapRoomRepoError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, persistence.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, ErrAlreadyReserved), errors.Is(err, persistence.ErrConflict):
		return ErrAlreadyReserved
	case errors.Is(err, persistence.ErrDuplicate):
		return ErrAlreadyExists
	case errors.Is(err, persistence.ErrConstraintViolation):
		vErr := &ValidationError{}
		vErr.add("room", "room violates catalog constraints")
		return vErr
	}
	return err
}
