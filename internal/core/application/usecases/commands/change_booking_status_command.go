package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrChangeBookingStatusCommandIsNotConstructed = errors.New(
	"ChangeBookingStatusCommand must be created via NewChangeBookingStatusCommand constructor",
)

// ChangeBookingStatusCommand moves a booking along its lifecycle. Moving
// into assigned is not possible through this command; that transition
// belongs to the assignment coordinator.
type ChangeBookingStatusCommand struct { //nolint:recvcheck //using for validation
	bookingID kernel.UUID
	target    booking.Status

	guard guard.ConstructorGuard
}

// NewChangeBookingStatusCommand creates a command to move bookingID to
// target status.
func NewChangeBookingStatusCommand(bookingID kernel.UUID, target booking.Status) (ChangeBookingStatusCommand, error) {
	if err := errors.Join(bookingID.Validate(), target.Validate()); err != nil {
		return ChangeBookingStatusCommand{}, err
	}

	return ChangeBookingStatusCommand{
		bookingID: bookingID,
		target:    target,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeBookingStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeBookingStatusCommandIsNotConstructed)
}

// BookingID returns the booking to move.
func (c ChangeBookingStatusCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// Target returns the requested status.
func (c ChangeBookingStatusCommand) Target() booking.Status {
	return c.target
}
