package application

import (
	"context"
	"errors"
	"testing"

	"github.com/example/hotel-desk/internal/persistence"
)

func TestReservationLedger_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("computes the total from nights and nightly price", func(t *testing.T) {
		h := newDeskHarness()
		room, _ := h.catalog.Get(ctx, 101)

		reservation, err := h.ledger.Create(ctx, room, date("2024-01-01"), date("2024-01-04"), " Alice ")
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		if reservation.TotalPrice != Dollars(300, 0) {
			t.Fatalf("expected $300.00, got %v", reservation.TotalPrice)
		}
		if reservation.Nights() != 3 {
			t.Fatalf("expected 3 nights, got %d", reservation.Nights())
		}
		if reservation.CustomerName != "Alice" {
			t.Fatalf("expected trimmed customer name, got %q", reservation.CustomerName)
		}
		if reservation.Confirmation != "res-1" || !reservation.CreatedAt.Equal(referenceTime) {
			t.Fatalf("expected injected id and clock, got %+v", reservation)
		}
	})

	t.Run("rejects check-out on or before check-in", func(t *testing.T) {
		h := newDeskHarness()
		room, _ := h.catalog.Get(ctx, 101)

		for _, checkOut := range []string{"2024-01-01", "2023-12-31"} {
			_, err := h.ledger.Create(ctx, room, date("2024-01-01"), date(checkOut), "Alice")
			if !errors.Is(err, ErrInvalidDateRange) {
				t.Fatalf("expected ErrInvalidDateRange for %s, got %v", checkOut, err)
			}
		}
		if h.reservations.puts != 0 {
			t.Fatalf("expected no reservation stored, got %d", h.reservations.puts)
		}
	})

	t.Run("requires a customer name", func(t *testing.T) {
		h := newDeskHarness()
		room, _ := h.catalog.Get(ctx, 101)

		_, err := h.ledger.Create(ctx, room, date("2024-01-01"), date("2024-01-02"), "  ")
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if _, ok := vErr.FieldErrors["customer_name"]; !ok {
			t.Fatalf("expected customer_name error, got %v", vErr.FieldErrors)
		}
	})

	t.Run("replaces the prior entry for the room", func(t *testing.T) {
		h := newDeskHarness()
		room, _ := h.catalog.Get(ctx, 102)

		if _, err := h.ledger.Create(ctx, room, date("2024-01-01"), date("2024-01-02"), "Alice"); err != nil {
			t.Fatalf("first Create failed: %v", err)
		}
		if _, err := h.ledger.Create(ctx, room, date("2024-02-01"), date("2024-02-03"), "Bob"); err != nil {
			t.Fatalf("second Create failed: %v", err)
		}

		got, err := h.ledger.Get(ctx, 102)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.CustomerName != "Bob" || got.TotalPrice != Dollars(300, 0) {
			t.Fatalf("expected Bob's reservation, got %+v", got)
		}
	})

	t.Run("maps repository constraint failures", func(t *testing.T) {
		h := newDeskHarness()
		h.reservations.putErr = persistence.ErrConstraintViolation
		room, _ := h.catalog.Get(ctx, 101)

		_, err := h.ledger.Create(ctx, room, date("2024-01-01"), date("2024-01-02"), "Alice")
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})
}

func TestReservationLedger_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("reports missing reservations", func(t *testing.T) {
		h := newDeskHarness()

		if _, err := h.ledger.Get(ctx, 101); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("resolves the room from the catalog", func(t *testing.T) {
		h := newDeskHarness()
		room, _ := h.catalog.Get(ctx, 103)
		if _, err := h.ledger.Create(ctx, room, date("2024-01-01"), date("2024-01-02"), "Carol"); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		got, err := h.ledger.Get(ctx, 103)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.Room.Category != "Suite" || got.Room.PricePerNight != Dollars(250, 0) {
			t.Fatalf("expected catalog room, got %+v", got.Room)
		}
	})

	t.Run("requires a repository", func(t *testing.T) {
		ledger := NewReservationLedger(nil, nil, nil, nil)
		if _, err := ledger.Get(ctx, 101); err == nil {
			t.Fatal("expected error without repository")
		}
	})
}
