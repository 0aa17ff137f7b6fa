package commands

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCreateBookingCommandIsNotConstructed = errors.New(
	"CreateBookingCommand must be created via NewCreateBookingCommand constructor",
)

// CreateBookingCommand represents a request to register a new booking.
// The booking enters the system in pending status with its price fixed
// at creation.
type CreateBookingCommand struct { //nolint:recvcheck //using for validation
	bookingID               kernel.UUID
	customerID              kernel.UUID
	serviceType             booking.ServiceType
	scheduledAt             time.Time
	location                kernel.GeoPoint
	addOnIDs                []string
	recurring               bool
	subscriptionDiscountPct float64
	notes                   string

	guard guard.ConstructorGuard
}

// NewCreateBookingCommand creates a command to register a new booking.
// Validates identifiers, service type, schedule and coordinate before the
// handler ever runs.
func NewCreateBookingCommand(
	bookingID kernel.UUID,
	customerID kernel.UUID,
	serviceType booking.ServiceType,
	scheduledAt time.Time,
	location kernel.GeoPoint,
	addOnIDs []string,
	recurring bool,
	subscriptionDiscountPct float64,
	notes string,
) (CreateBookingCommand, error) {
	cmd := CreateBookingCommand{
		addOnIDs:  addOnIDs,
		recurring: recurring,
		notes:     notes,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBookingID(bookingID),
		cmd.setCustomerID(customerID),
		cmd.setServiceType(serviceType),
		cmd.setScheduledAt(scheduledAt),
		cmd.setLocation(location),
		cmd.setSubscriptionDiscountPct(subscriptionDiscountPct),
	); err != nil {
		return CreateBookingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBookingCommand) Validate() error {
	return c.guard.Validate(ErrCreateBookingCommandIsNotConstructed)
}

// BookingID returns the identifier for the new booking.
func (c CreateBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// CustomerID returns the requesting customer.
func (c CreateBookingCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ServiceType returns the requested service type.
func (c CreateBookingCommand) ServiceType() booking.ServiceType {
	return c.serviceType
}

// ScheduledAt returns the requested service time.
func (c CreateBookingCommand) ScheduledAt() time.Time {
	return c.scheduledAt
}

// Location returns the service coordinate.
func (c CreateBookingCommand) Location() kernel.GeoPoint {
	return c.location
}

// AddOnIDs returns the requested add-on identifiers.
func (c CreateBookingCommand) AddOnIDs() []string {
	return c.addOnIDs
}

// IsRecurring reports whether the booking is part of a repeating schedule.
func (c CreateBookingCommand) IsRecurring() bool {
	return c.recurring
}

// SubscriptionDiscountPct returns the customer's membership discount
// percentage, zero when none.
func (c CreateBookingCommand) SubscriptionDiscountPct() float64 {
	return c.subscriptionDiscountPct
}

// Notes returns the customer's free-text notes.
func (c CreateBookingCommand) Notes() string {
	return c.notes
}

func (c *CreateBookingCommand) setBookingID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.bookingID = id
	return nil
}

func (c *CreateBookingCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.customerID = id
	return nil
}

func (c *CreateBookingCommand) setServiceType(t booking.ServiceType) error {
	if err := t.Validate(); err != nil {
		return err
	}

	c.serviceType = t
	return nil
}

func (c *CreateBookingCommand) setScheduledAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("scheduledAt")
	}

	c.scheduledAt = at
	return nil
}

func (c *CreateBookingCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}

func (c *CreateBookingCommand) setSubscriptionDiscountPct(pct float64) error {
	if pct < 0 || pct > 100 {
		return errs.NewValueIsOutOfRangeError("subscriptionDiscountPct", pct, 0, 100)
	}

	c.subscriptionDiscountPct = pct
	return nil
}
