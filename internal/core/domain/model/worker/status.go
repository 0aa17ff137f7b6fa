package worker

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents a worker's availability state. Transitions are
// caller-directed (dispatcher or the worker's own device) and unordered;
// the only lifecycle rules are enforced at assignment time: an offline
// worker cannot be selected, and neither can a worker whose concurrent-job
// counter has reached the configured limit.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Available means the worker can be dispatched.
	Available

	// EnRoute means the worker is travelling to a booking.
	EnRoute

	// OnJob means the worker is performing a service.
	OnJob

	// Break means the worker is temporarily unavailable by choice.
	Break

	// Offline means the worker is off shift and must not be assigned.
	Offline
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Available: "available",
		EnRoute:   "en_route",
		OnJob:     "on_job",
		Break:     "break",
		Offline:   "offline",
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
		fmt.Errorf("%q is not a valid worker status", s))
}

// Validate checks that the Status value is one of the defined states.
func (s Status) Validate() error {
	switch s {
	case Available, EnRoute, OnJob, Break, Offline:
		return nil
	case Unknown:
	}
	return errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%d is not a valid worker status", s))
}

// String returns the snake_case name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
