package booking

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrBookingIsNotConstructed is returned when a Booking instance was not
// created through the NewBooking or RestoreBooking factories.
var ErrBookingIsNotConstructed = errors.New("Booking must be created via NewBooking constructor")

// Booking is the aggregate root for a scheduled cleaning job. It owns the
// booking lifecycle from creation through assignment to completion and
// guards these invariants:
//
//   - the price is fixed at creation and immutable thereafter
//   - workerID is non-nil iff status ∈ {assigned, en_route, in_progress, completed}
//   - status transitions follow the Status state machine
//   - bookings are never destroyed; terminal bookings are retained for history
//
// pending→assigned is committed only by the assignment coordinator through
// a conditional store update; Assign here records the domain-side effect of
// that commit.
type Booking struct {
	// id is the unique identifier of the booking
	id kernel.UUID

	// customerID references the customer who requested the service
	customerID kernel.UUID

	// workerID is the assigned worker (nil while unassigned or cancelled)
	workerID *kernel.UUID

	// serviceType is the kind of cleaning service booked
	serviceType ServiceType

	// scheduledAt is the agreed date and time of service
	scheduledAt time.Time

	// location is the service-area coordinate of the booking address
	location kernel.GeoPoint

	// status is the current lifecycle state
	status Status

	// price is the total fixed at creation by the pricing engine
	price float64

	// addOnIDs are the requested add-on identifiers
	addOnIDs []string

	// recurring marks bookings that belong to a repeating schedule
	recurring bool

	// notes is free-form customer text
	notes string

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewBooking creates a pending booking with its price fixed. The price comes
// from the pricing engine at intake time and never changes afterwards.
//
// Parameters:
//   - id: unique booking identifier
//   - customerID: requesting customer
//   - serviceType: one of the supported service types
//   - scheduledAt: agreed service time (must not be zero)
//   - location: validated service-area coordinate
//   - price: total computed at intake (must not be negative)
//   - addOnIDs: requested add-on identifiers (may be empty)
//   - recurring: repeating-schedule flag
//   - notes: free-form text
func NewBooking(
	id kernel.UUID,
	customerID kernel.UUID,
	serviceType ServiceType,
	scheduledAt time.Time,
	location kernel.GeoPoint,
	price float64,
	addOnIDs []string,
	recurring bool,
	notes string,
) (*Booking, error) {
	now := time.Now().UTC()
	b := &Booking{
		status:    Pending,
		recurring: recurring,
		notes:     notes,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setCustomerID(customerID),
		b.setServiceType(serviceType),
		b.setScheduledAt(scheduledAt),
		b.setLocation(location),
		b.setPrice(price),
		b.setAddOnIDs(addOnIDs),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBooking reconstructs a booking aggregate from persistence,
// including its status and worker assignment. The worker invariant is
// re-checked so corrupted rows cannot enter the domain.
func RestoreBooking(
	id kernel.UUID,
	customerID kernel.UUID,
	workerID *kernel.UUID,
	serviceType ServiceType,
	scheduledAt time.Time,
	location kernel.GeoPoint,
	status Status,
	price float64,
	addOnIDs []string,
	recurring bool,
	notes string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Booking, error) {
	b := &Booking{
		recurring: recurring,
		notes:     notes,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setCustomerID(customerID),
		b.setServiceType(serviceType),
		b.setScheduledAt(scheduledAt),
		b.setLocation(location),
		b.setPrice(price),
		b.setAddOnIDs(addOnIDs),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	b.status = status
	b.workerID = workerID

	if err := b.validateWorkerInvariant(); err != nil {
		return nil, err
	}

	return b, nil
}

// Validate ensures the Booking was constructed through a factory.
func (b *Booking) Validate() error {
	if b == nil {
		return ErrBookingIsNotConstructed
	}
	return b.guard.Validate(ErrBookingIsNotConstructed)
}

// IsEqual compares two bookings by identifier.
func (b *Booking) IsEqual(other *Booking) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the booking's unique identifier.
func (b *Booking) ID() kernel.UUID {
	return b.id
}

// CustomerID returns the requesting customer's identifier.
func (b *Booking) CustomerID() kernel.UUID {
	return b.customerID
}

// Worker returns the assigned worker's identifier, or nil if unassigned.
func (b *Booking) Worker() *kernel.UUID {
	return b.workerID
}

// ServiceType returns the booked service type.
func (b *Booking) ServiceType() ServiceType {
	return b.serviceType
}

// ScheduledAt returns the agreed service time.
func (b *Booking) ScheduledAt() time.Time {
	return b.scheduledAt
}

// Location returns the service-area coordinate of the booking.
func (b *Booking) Location() kernel.GeoPoint {
	return b.location
}

// Status returns the current lifecycle state.
func (b *Booking) Status() Status {
	return b.status
}

// Price returns the total fixed at creation.
func (b *Booking) Price() float64 {
	return b.price
}

// AddOnIDs returns the requested add-on identifiers.
func (b *Booking) AddOnIDs() []string {
	return b.addOnIDs
}

// IsRecurring reports whether the booking belongs to a repeating schedule.
func (b *Booking) IsRecurring() bool {
	return b.recurring
}

// Notes returns the free-form customer notes.
func (b *Booking) Notes() string {
	return b.notes
}

// CreatedAt returns the creation timestamp.
func (b *Booking) CreatedAt() time.Time {
	return b.createdAt
}

// UpdatedAt returns the last-modification timestamp.
func (b *Booking) UpdatedAt() time.Time {
	return b.updatedAt
}

// Assign records the assignment of a worker, moving pending→assigned.
// Only the assignment coordinator calls this, after winning the conditional
// store update. Returns StateConflictError if the booking is not pending.
func (b *Booking) Assign(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	newStatus, err := b.status.TransitionTo(Assigned)
	if err != nil {
		return err
	}

	b.status = newStatus
	b.workerID = &workerID
	b.touch()
	return nil
}

// Unassign reverts a freshly committed assignment back to pending, clearing
// the worker. Used only as compensation when assignment-record creation
// fails after the booking update committed.
func (b *Booking) Unassign() error {
	if b.status != Assigned {
		return errs.NewStateConflictError("booking", b.status.String(), Pending.String())
	}

	b.status = Pending
	b.workerID = nil
	b.touch()
	return nil
}

// TransitionTo moves the booking to the target status through the public
// status-transition operation. Assigned is rejected as a target here;
// assignment is committed only by the coordinator. Cancelling clears the
// worker reference so the worker invariant holds in the terminal state.
// On any violation the booking is left unchanged and a StateConflictError
// is returned.
func (b *Booking) TransitionTo(to Status) error {
	if to == Assigned {
		return errs.NewStateConflictErrorWithCause("booking", b.status.String(), to.String(),
			errors.New("assignment is committed only by the dispatch coordinator"))
	}

	newStatus, err := b.status.TransitionTo(to)
	if err != nil {
		return err
	}

	b.status = newStatus
	if newStatus == Cancelled {
		b.workerID = nil
	}
	b.touch()
	return nil
}

// validateWorkerInvariant enforces: workerID non-nil iff status is in
// {assigned, en_route, in_progress, completed}.
func (b *Booking) validateWorkerInvariant() error {
	requiresWorker := b.status == Assigned || b.status == EnRoute ||
		b.status == InProgress || b.status == Completed

	if requiresWorker && b.workerID == nil {
		return errs.NewValueIsRequiredErrorWithCause("workerId",
			errors.New(b.status.String()+" booking must have a worker"))
	}

	if !requiresWorker && b.workerID != nil {
		return errs.NewValueIsInvalidErrorWithCause("workerId",
			errors.New(b.status.String()+" booking must not have a worker"))
	}

	return nil
}

func (b *Booking) touch() {
	b.updatedAt = time.Now().UTC()
}

// setID validates and sets the booking identifier.
func (b *Booking) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

// setCustomerID validates and sets the customer reference.
func (b *Booking) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	b.customerID = id
	return nil
}

func (b *Booking) setServiceType(t ServiceType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	b.serviceType = t
	return nil
}

func (b *Booking) setScheduledAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("scheduledAt")
	}
	b.scheduledAt = at
	return nil
}

func (b *Booking) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	b.location = location
	return nil
}

func (b *Booking) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsOutOfRangeError("price", price, 0, "unbounded")
	}
	b.price = price
	return nil
}

func (b *Booking) setAddOnIDs(ids []string) error {
	for _, id := range ids {
		if id == "" {
			return errs.NewValueIsRequiredError("addOnId")
		}
	}
	b.addOnIDs = ids
	return nil
}
