package booking

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a booking.
//
// State transitions:
//
//	pending ──> assigned ──> en_route ──> in_progress ──> completed
//	   │            │            │
//	   └────────────┴────────────┴──────> cancelled
//
// pending→assigned is committed only by the assignment coordinator; the
// public status-transition use case rejects assigned as a target. completed
// and cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a newly created booking waiting for
	// a worker.
	Pending

	// Assigned indicates a worker has been committed to the booking.
	Assigned

	// EnRoute indicates the assigned worker is travelling to the booking
	// location.
	EnRoute

	// InProgress indicates the service is being performed.
	InProgress

	// Completed indicates the service finished successfully. Terminal.
	Completed

	// Cancelled indicates the booking was cancelled before work started.
	// Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Assigned:   "assigned",
		EnRoute:    "en_route",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// StatusFromString parses the persistence/API representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid booking status", s))
}

// Validate checks that the Status value is one of the defined states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	switch s {
	case Pending, Assigned, EnRoute, InProgress, Completed, Cancelled:
		return nil
	case Unknown:
	}
	return errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%d is not a valid booking status", s))
}

// String returns the snake_case name of the status.
// Implements fmt.Stringer; safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether the state machine allows moving from the
// current status to the target. The switch is exhaustive over the closed
// enum so a new state cannot be silently mishandled.
func (s Status) CanTransitionTo(to Status) bool {
	switch s {
	case Pending:
		return to == Assigned || to == Cancelled
	case Assigned:
		return to == EnRoute || to == Cancelled
	case EnRoute:
		return to == InProgress || to == Cancelled
	case InProgress:
		return to == Completed
	case Completed, Cancelled:
		return false
	case Unknown:
		return false
	}
	return false
}

// TransitionTo returns the target status if the transition is legal, or a
// StateConflictError leaving the current status unchanged.
func (s Status) TransitionTo(to Status) (Status, error) {
	if err := to.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(to) {
		return Unknown, errs.NewStateConflictError("booking", s.String(), to.String())
	}
	return to, nil
}
