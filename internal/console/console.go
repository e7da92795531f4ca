// Package console drives the front desk through a numbered menu read from a
// text stream.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/example/hotel-desk/internal/application"
	"github.com/example/hotel-desk/internal/calendar"
)

// Desk is the set of use cases the menu exposes.
type Desk interface {
	AvailableRooms(ctx context.Context) iter.Seq2[application.Room, error]
	CheckRoom(ctx context.Context, number int) (application.Room, error)
	MakeReservation(ctx context.Context, params application.MakeReservationParams) (application.Reservation, error)
	ViewReservation(ctx context.Context, roomNumber int) (application.Reservation, error)
}

// State is the lifecycle of a Console.
type State int

const (
	// StateRunning means the console keeps prompting for commands.
	StateRunning State = iota
	// StateTerminated means the exit command was handled or input ended.
	StateTerminated
)

const (
	optionListRooms = iota + 1
	optionMakeReservation
	optionViewReservation
	optionExit
)

// Console reads menu selections from its input and writes prompts and
// results to its output.
type Console struct {
	desk   Desk
	in     *tokenReader
	closer io.Closer
	out    io.Writer
	logger *slog.Logger
	state  State
}

// New returns a console over desk. When in is an io.Closer it is closed once
// the exit command is handled.
func New(desk Desk, in io.Reader, out io.Writer, logger *slog.Logger) *Console {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Console{
		desk:   desk,
		in:     newTokenReader(in),
		out:    out,
		logger: logger.With("component", "console"),
		state:  StateRunning,
	}
	if closer, ok := in.(io.Closer); ok {
		c.closer = closer
	}
	return c
}

// State reports whether the console is still running.
func (c *Console) State() State {
	return c.state
}

// Run shows the menu and handles commands until the exit command, the end of
// the input, or cancellation of ctx. Reaching the end of the input is not an
// error.
func (c *Console) Run(ctx context.Context) error {
	for c.state == StateRunning {
		if err := ctx.Err(); err != nil {
			c.state = StateTerminated
			return err
		}

		c.printMenu()
		token, err := c.in.next()
		if err != nil && !isInputFormatError(err) {
			return c.stop(err)
		}

		choice, err := parseNumber(token, err)
		if err != nil {
			c.logger.DebugContext(ctx, "rejected menu input", "error", err)
			c.println("Invalid input. Please enter a number.")
			continue
		}

		if err := c.dispatch(ctx, choice); err != nil {
			return c.stop(err)
		}
	}
	return nil
}

func (c *Console) dispatch(ctx context.Context, choice int) error {
	switch choice {
	case optionListRooms:
		c.listRooms(ctx)
		return nil
	case optionMakeReservation:
		return c.makeReservation(ctx)
	case optionViewReservation:
		return c.viewReservation(ctx)
	case optionExit:
		c.exit(ctx)
		return nil
	default:
		c.println("Invalid option. Please try again.")
		return nil
	}
}

func (c *Console) stop(err error) error {
	c.state = StateTerminated
	if errors.Is(err, io.EOF) {
		c.logger.Info("input closed")
		return nil
	}
	return err
}

func (c *Console) printMenu() {
	c.println()
	c.println("--- Hotel Reservation System ---")
	c.println("1. View Available Rooms")
	c.println("2. Make a Reservation")
	c.println("3. View Reservation Details")
	c.println("4. Exit")
	c.print("Choose an option: ")
}

func (c *Console) listRooms(ctx context.Context) {
	c.println("Available Rooms:")
	for room, err := range c.desk.AvailableRooms(ctx) {
		if err != nil {
			c.reportFailure(ctx, "list rooms", err)
			return
		}
		c.printf("Room Number: %d, Category: %s, Price per Night: %s\n", room.Number, room.Category, room.PricePerNight)
	}
}

func (c *Console) makeReservation(ctx context.Context) error {
	c.print("Enter room number to reserve: ")
	number, err := c.readPositiveInt()
	if err != nil {
		return err
	}

	_, err = c.desk.CheckRoom(ctx, number)
	switch {
	case errors.Is(err, application.ErrNotFound):
		c.println("Invalid room number.")
		return nil
	case errors.Is(err, application.ErrAlreadyReserved):
		c.println("Room is already reserved.")
		return nil
	case err != nil:
		c.reportFailure(ctx, "check room", err)
		return nil
	}

	c.print("Enter your name: ")
	name, err := c.in.next()
	if isInputFormatError(err) {
		c.println("Name is too long.")
		return nil
	}
	if err != nil {
		return err
	}

	c.print("Enter check-in date (YYYY-MM-DD): ")
	checkIn, ok, err := c.readDate()
	if err != nil || !ok {
		return err
	}

	c.print("Enter check-out date (YYYY-MM-DD): ")
	checkOut, ok, err := c.readDate()
	if err != nil || !ok {
		return err
	}

	reservation, err := c.desk.MakeReservation(ctx, application.MakeReservationParams{
		RoomNumber:   number,
		CustomerName: name,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
	})
	var vErr *application.ValidationError
	switch {
	case err == nil:
		c.println("Reservation successful!")
		c.printf("Confirmation: %s\n", reservation.Confirmation)
	case errors.Is(err, application.ErrInvalidDateRange):
		c.println("Check-out date must be after check-in date.")
	case errors.Is(err, application.ErrAlreadyReserved):
		c.println("Room is already reserved.")
	case errors.Is(err, application.ErrNotFound):
		c.println("Invalid room number.")
	case errors.As(err, &vErr):
		c.printf("Invalid reservation details: %s\n", vErr.Error())
	default:
		c.reportFailure(ctx, "make reservation", err)
	}
	return nil
}

func (c *Console) viewReservation(ctx context.Context) error {
	c.print("Enter room number to view reservation: ")
	number, err := c.readPositiveInt()
	if err != nil {
		return err
	}

	reservation, err := c.desk.ViewReservation(ctx, number)
	switch {
	case errors.Is(err, application.ErrNotFound):
		c.println("No reservation found for this room.")
		return nil
	case err != nil:
		c.reportFailure(ctx, "view reservation", err)
		return nil
	}

	c.printf("Reservation for %s\n", reservation.CustomerName)
	c.printf("Room Number: %d, Category: %s\n", reservation.Room.Number, reservation.Room.Category)
	c.printf("Check-in Date: %s, Check-out Date: %s\n", reservation.CheckIn, reservation.CheckOut)
	c.printf("Total Price: %s\n", reservation.TotalPrice)
	return nil
}

func (c *Console) exit(ctx context.Context) {
	c.println("Exiting...")
	if c.closer != nil {
		if err := c.closer.Close(); err != nil {
			c.logger.WarnContext(ctx, "failed to close input", "error", err)
		}
		c.closer = nil
	}
	c.state = StateTerminated
}

// readPositiveInt keeps prompting until a positive integer is entered.
func (c *Console) readPositiveInt() (int, error) {
	for {
		token, err := c.in.next()
		if err != nil && !isInputFormatError(err) {
			return 0, err
		}

		value, err := parseNumber(token, err)
		switch {
		case err != nil:
			c.print("Invalid input. Please enter a number: ")
		case value <= 0:
			c.print("Please enter a positive number: ")
		default:
			return value, nil
		}
	}
}

// readDate reads one date token. A malformed token is reported to the
// user and ok is false; the caller abandons the command.
func (c *Console) readDate() (d calendar.Date, ok bool, err error) {
	token, err := c.in.next()
	if err != nil && !isInputFormatError(err) {
		return d, false, err
	}
	if err == nil {
		d, err = parseDate(token)
	}
	if err != nil {
		c.println("Invalid date format. Please use YYYY-MM-DD.")
		return d, false, nil
	}
	return d, true, nil
}

func (c *Console) reportFailure(ctx context.Context, operation string, err error) {
	c.logger.ErrorContext(ctx, "command failed", "operation", operation, "error", err, "error_kind", application.ErrorKind(err))
	c.println("Something went wrong. Please try again.")
}

func (c *Console) print(s string) {
	fmt.Fprint(c.out, s)
}

func (c *Console) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}
