// Package memory provides a map-backed implementation of the persistence
// repositories. Nothing it holds survives the process.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/example/hotel-desk/internal/persistence"
)

// Storage keeps rooms and reservations in maps keyed by room number.
type Storage struct {
	mu           sync.RWMutex
	rooms        map[int]persistence.Room
	order        []int
	reservations map[int]persistence.Reservation
}

// New returns an empty Storage.
func New() *Storage {
	return &Storage{
		rooms:        make(map[int]persistence.Room),
		reservations: make(map[int]persistence.Reservation),
	}
}

// Close releases resources held by the storage. No-op for the in-memory implementation.
func (s *Storage) Close() error {
	return nil
}

// --- RoomRepository implementation ---

// CreateRoom stores a new room at the end of the catalog order.
func (s *Storage) CreateRoom(ctx context.Context, room persistence.Room) error {
	if room.Number <= 0 || room.Category == "" || room.PriceCents <= 0 {
		return persistence.ErrConstraintViolation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[room.Number]; ok {
		return fmt.Errorf("memory: room %d: %w", room.Number, persistence.ErrDuplicate)
	}

	s.rooms[room.Number] = room
	s.order = append(s.order, room.Number)
	return nil
}

// GetRoom retrieves a room by number.
func (s *Storage) GetRoom(ctx context.Context, number int) (persistence.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, ok := s.rooms[number]
	if !ok {
		return persistence.Room{}, persistence.ErrNotFound
	}
	return room, nil
}

// ListRooms returns all rooms in insertion order.
func (s *Storage) ListRooms(ctx context.Context) ([]persistence.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rooms := make([]persistence.Room, 0, len(s.order))
	for _, number := range s.order {
		rooms = append(rooms, s.rooms[number])
	}
	return rooms, nil
}

// MarkReserved flips an available room to unavailable.
func (s *Storage) MarkReserved(ctx context.Context, number int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[number]
	if !ok {
		return persistence.ErrNotFound
	}
	if !room.Available {
		return persistence.ErrConflict
	}

	room.Available = false
	s.rooms[number] = room
	return nil
}

// MarkAvailable makes a room available regardless of its current state.
func (s *Storage) MarkAvailable(ctx context.Context, number int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[number]
	if !ok {
		return persistence.ErrNotFound
	}

	room.Available = true
	s.rooms[number] = room
	return nil
}

// --- ReservationRepository implementation ---

// PutReservation stores a reservation for an existing room, replacing any
// earlier one.
func (s *Storage) PutReservation(ctx context.Context, reservation persistence.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[reservation.RoomNumber]; !ok {
		return fmt.Errorf("memory: reservation for unknown room %d: %w", reservation.RoomNumber, persistence.ErrConstraintViolation)
	}

	s.reservations[reservation.RoomNumber] = reservation
	return nil
}

// GetReservation retrieves the reservation stored for a room.
func (s *Storage) GetReservation(ctx context.Context, roomNumber int) (persistence.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reservation, ok := s.reservations[roomNumber]
	if !ok {
		return persistence.Reservation{}, persistence.ErrNotFound
	}
	return reservation, nil
}
