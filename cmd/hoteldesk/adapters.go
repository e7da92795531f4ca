package main

import (
	"context"

	"github.com/example/hotel-desk/internal/application"
	"github.com/example/hotel-desk/internal/persistence"
)

type roomRepositoryAdapter struct {
	repo persistence.RoomRepository
}

func newRoomRepositoryAdapter(repo persistence.RoomRepository) *roomRepositoryAdapter {
	return &roomRepositoryAdapter{repo: repo}
}

func (a *roomRepositoryAdapter) CreateRoom(ctx context.Context, room application.Room) error {
	return a.repo.CreateRoom(ctx, toPersistenceRoom(room))
}

func (a *roomRepositoryAdapter) GetRoom(ctx context.Context, number int) (application.Room, error) {
	stored, err := a.repo.GetRoom(ctx, number)
	if err != nil {
		return application.Room{}, err
	}
	return toApplicationRoom(stored), nil
}

func (a *roomRepositoryAdapter) ListRooms(ctx context.Context) ([]application.Room, error) {
	models, err := a.repo.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return nil, nil
	}
	rooms := make([]application.Room, 0, len(models))
	for _, model := range models {
		rooms = append(rooms, toApplicationRoom(model))
	}
	return rooms, nil
}

func (a *roomRepositoryAdapter) MarkReserved(ctx context.Context, number int) error {
	return a.repo.MarkReserved(ctx, number)
}

func (a *roomRepositoryAdapter) MarkAvailable(ctx context.Context, number int) error {
	return a.repo.MarkAvailable(ctx, number)
}

type reservationRepositoryAdapter struct {
	repo persistence.ReservationRepository
}

func newReservationRepositoryAdapter(repo persistence.ReservationRepository) *reservationRepositoryAdapter {
	return &reservationRepositoryAdapter{repo: repo}
}

func (a *reservationRepositoryAdapter) PutReservation(ctx context.Context, reservation application.Reservation) error {
	return a.repo.PutReservation(ctx, toPersistenceReservation(reservation))
}

func (a *reservationRepositoryAdapter) GetReservation(ctx context.Context, roomNumber int) (application.Reservation, error) {
	stored, err := a.repo.GetReservation(ctx, roomNumber)
	if err != nil {
		return application.Reservation{}, err
	}
	return toApplicationReservation(stored), nil
}

func toApplicationRoom(model persistence.Room) application.Room {
	return application.Room{
		Number:        model.Number,
		Category:      model.Category,
		PricePerNight: application.Money(model.PriceCents),
		Available:     model.Available,
	}
}

func toPersistenceRoom(room application.Room) persistence.Room {
	return persistence.Room{
		Number:     room.Number,
		Category:   room.Category,
		PriceCents: room.PricePerNight.Cents(),
		Available:  room.Available,
	}
}

// toApplicationReservation leaves the room unresolved; the ledger fills it
// in from the catalog.
func toApplicationReservation(model persistence.Reservation) application.Reservation {
	return application.Reservation{
		Confirmation: model.Confirmation,
		Room:         application.Room{Number: model.RoomNumber},
		CustomerName: model.CustomerName,
		CheckIn:      model.CheckIn,
		CheckOut:     model.CheckOut,
		TotalPrice:   application.Money(model.TotalCents),
		CreatedAt:    model.CreatedAt,
	}
}

func toPersistenceReservation(reservation application.Reservation) persistence.Reservation {
	return persistence.Reservation{
		RoomNumber:   reservation.Room.Number,
		Confirmation: reservation.Confirmation,
		CustomerName: reservation.CustomerName,
		CheckIn:      reservation.CheckIn,
		CheckOut:     reservation.CheckOut,
		TotalCents:   reservation.TotalPrice.Cents(),
		CreatedAt:    reservation.CreatedAt,
	}
}
