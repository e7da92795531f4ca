package main

import (
	"context"
	"errors"
	"testing"

	"github.com/example/hotel-desk/internal/application"
	"github.com/example/hotel-desk/internal/calendar"
	"github.com/example/hotel-desk/internal/testfixtures"
)

func TestAdapters_DeskOverEveryBackend(t *testing.T) {
	for _, backend := range testfixtures.Backends(t) {
		t.Run(backend.Name, func(t *testing.T) {
			ctx := context.Background()
			clock := testfixtures.NewClock(testfixtures.ReferenceTime())
			ids := testfixtures.NewIDGenerator("")

			catalog := application.NewRoomCatalog(newRoomRepositoryAdapter(backend.Rooms))
			if err := catalog.Seed(ctx, application.DefaultSeed()); err != nil {
				t.Fatalf("Seed failed: %v", err)
			}
			ledger := application.NewReservationLedger(
				newReservationRepositoryAdapter(backend.Reservations),
				catalog,
				ids.NextFunc(),
				clock.NowFunc(),
			)
			desk := application.NewDesk(catalog, ledger, nil)

			made, err := desk.MakeReservation(ctx, application.MakeReservationParams{
				RoomNumber:   102,
				CustomerName: "Bob",
				CheckIn:      calendar.NewDate(2024, 3, 10),
				CheckOut:     calendar.NewDate(2024, 3, 12),
			})
			if err != nil {
				t.Fatalf("MakeReservation failed: %v", err)
			}
			if made.Confirmation != "HD-000001" || made.TotalPrice != application.Dollars(300, 0) {
				t.Fatalf("unexpected reservation: %+v", made)
			}

			clock.AdvanceDays(1)
			if ids.Issued() != 1 {
				t.Fatalf("expected one confirmation code, got %d", ids.Issued())
			}
			viewed, err := desk.ViewReservation(ctx, 102)
			if err != nil {
				t.Fatalf("ViewReservation failed: %v", err)
			}
			if viewed.Room.Category != "Double" || viewed.Room.Available {
				t.Fatalf("expected the resolved, reserved room, got %+v", viewed.Room)
			}
			if !viewed.CreatedAt.Equal(testfixtures.ReferenceTime()) {
				t.Fatalf("expected booking time %v, got %v", testfixtures.ReferenceTime(), viewed.CreatedAt)
			}

			if _, err := desk.CheckRoom(ctx, 102); !errors.Is(err, application.ErrAlreadyReserved) {
				t.Fatalf("expected ErrAlreadyReserved, got %v", err)
			}
			if _, err := desk.CheckRoom(ctx, 999); !errors.Is(err, application.ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
			if err := catalog.Seed(ctx, application.DefaultSeed()); !errors.Is(err, application.ErrAlreadyExists) {
				t.Fatalf("expected ErrAlreadyExists on reseed, got %v", err)
			}

			var numbers []int
			for room, err := range desk.AvailableRooms(ctx) {
				if err != nil {
					t.Fatalf("AvailableRooms failed: %v", err)
				}
				numbers = append(numbers, room.Number)
			}
			if len(numbers) != 2 || numbers[0] != 101 || numbers[1] != 103 {
				t.Fatalf("expected rooms 101 and 103, got %v", numbers)
			}
		})
	}
}
