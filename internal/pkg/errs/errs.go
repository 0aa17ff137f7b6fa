package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
var (
	// ErrObjectNotFound indicates a lookup by identifier found nothing.
	ErrObjectNotFound = errors.New("object not found")
	// ErrValueIsInvalid indicates a value failed validation.
	ErrValueIsInvalid = errors.New("value is invalid")
	// ErrValueIsOutOfRange indicates a value is outside its allowed bounds.
	ErrValueIsOutOfRange = errors.New("value is out of range")
	// ErrValueIsRequired indicates a required value is missing.
	ErrValueIsRequired = errors.New("value is required")
	// ErrStateConflict indicates an invalid lifecycle transition or a lost
	// assignment race. Expected and retry-safe for racing dispatchers.
	ErrStateConflict = errors.New("state conflict")
	// ErrOutOfServiceArea indicates a coordinate outside the service disc.
	ErrOutOfServiceArea = errors.New("out of service area")
	// ErrCapacityExceeded indicates a worker that is offline or already at
	// its concurrent-job limit.
	ErrCapacityExceeded = errors.New("worker unavailable or at capacity")
	// ErrUnknownServiceType indicates a service type missing from the
	// pricing catalog. Never retried.
	ErrUnknownServiceType = errors.New("unknown service type")
	// ErrAssignmentCorrupted indicates a failed rollback after a partial
	// assignment commit. Fatal; requires manual reconciliation.
	ErrAssignmentCorrupted = errors.New("assignment corrupted")
)

// sanitize flattens newlines so error messages stay single-line in logs.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%s", v), "\n", " ")
}

// ObjectNotFoundError is returned when an entity cannot be found by its
// identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError is returned when a value fails validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an
// underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError is returned when a value lies outside its allowed
// bounds, e.g. a latitude beyond ±90.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError
// wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitizeValue(e.Value), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", sanitize(e.Cause))
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// sanitizeValue keeps non-string values formatted with %v while still
// flattening newlines inside string values.
func sanitizeValue(v any) any {
	if s, ok := v.(string); ok {
		return strings.ReplaceAll(s, "\n", " ")
	}
	return v
}

// ValueIsRequiredError is returned when a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an
// underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// StateConflictError is returned for lifecycle transitions that violate the
// booking or worker state machine, and for assignment races lost to a
// concurrent caller. Callers may retry with fresh state; the entity itself
// is left untouched.
type StateConflictError struct {
	Entity string
	From   string
	To     string
	Cause  error
}

// NewStateConflictError creates a StateConflictError for an invalid
// transition of the named entity.
func NewStateConflictError(entity, from, to string) *StateConflictError {
	return &StateConflictError{Entity: entity, From: from, To: to}
}

// NewStateConflictErrorWithCause creates a StateConflictError wrapping an
// underlying cause, e.g. a lost compare-and-swap.
func NewStateConflictErrorWithCause(entity, from, to string, cause error) *StateConflictError {
	return &StateConflictError{Entity: entity, From: from, To: to, Cause: cause}
}

func (e *StateConflictError) Error() string {
	msg := fmt.Sprintf("%s: %s cannot transition from %s to %s", ErrStateConflict, e.Entity, e.From, e.To)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", sanitize(e.Cause))
	}
	return msg
}

func (e *StateConflictError) Unwrap() error {
	return ErrStateConflict
}

// OutOfServiceAreaError is returned when a coordinate lies outside the
// service disc.
type OutOfServiceAreaError struct {
	DistanceMiles float64
	RadiusMiles   float64
}

// NewOutOfServiceAreaError creates an OutOfServiceAreaError with the measured
// distance and the configured radius.
func NewOutOfServiceAreaError(distanceMiles, radiusMiles float64) *OutOfServiceAreaError {
	return &OutOfServiceAreaError{DistanceMiles: distanceMiles, RadiusMiles: radiusMiles}
}

func (e *OutOfServiceAreaError) Error() string {
	return fmt.Sprintf("%s: %.2f mi from center, service radius is %.2f mi",
		ErrOutOfServiceArea, e.DistanceMiles, e.RadiusMiles)
}

func (e *OutOfServiceAreaError) Unwrap() error {
	return ErrOutOfServiceArea
}

// CapacityError is returned when a worker cannot accept a new assignment,
// either because the worker is offline or because the concurrent-job counter
// has reached the configured limit.
type CapacityError struct {
	WorkerID   string
	ActiveJobs int
	Limit      int
	Cause      error
}

// NewCapacityError creates a CapacityError for a worker at its limit.
func NewCapacityError(workerID string, activeJobs, limit int) *CapacityError {
	return &CapacityError{WorkerID: workerID, ActiveJobs: activeJobs, Limit: limit}
}

// NewCapacityErrorWithCause creates a CapacityError wrapping an underlying
// cause, e.g. the worker being offline.
func NewCapacityErrorWithCause(workerID string, activeJobs, limit int, cause error) *CapacityError {
	return &CapacityError{WorkerID: workerID, ActiveJobs: activeJobs, Limit: limit, Cause: cause}
}

func (e *CapacityError) Error() string {
	msg := fmt.Sprintf("%s: worker %s, active jobs %d, limit %d",
		ErrCapacityExceeded, e.WorkerID, e.ActiveJobs, e.Limit)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", sanitize(e.Cause))
	}
	return msg
}

func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}

// UnknownServiceTypeError is returned by the pricing engine for a service
// type that is absent from the injected catalog.
type UnknownServiceTypeError struct {
	ServiceType string
}

// NewUnknownServiceTypeError creates an UnknownServiceTypeError.
func NewUnknownServiceTypeError(serviceType string) *UnknownServiceTypeError {
	return &UnknownServiceTypeError{ServiceType: serviceType}
}

func (e *UnknownServiceTypeError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnknownServiceType, sanitize(e.ServiceType))
}

func (e *UnknownServiceTypeError) Unwrap() error {
	return ErrUnknownServiceType
}

// AssignmentCorruptionError is returned when the coordinator committed the
// booking update but could neither finish the assignment nor roll the
// booking back. The at-most-one-assignment invariant may be violated; the
// caller must not retry blindly.
type AssignmentCorruptionError struct {
	BookingID string
	WorkerID  string
	Cause     error
}

// NewAssignmentCorruptionError creates an AssignmentCorruptionError wrapping
// the failure that interrupted the rollback.
func NewAssignmentCorruptionError(bookingID, workerID string, cause error) *AssignmentCorruptionError {
	return &AssignmentCorruptionError{BookingID: bookingID, WorkerID: workerID, Cause: cause}
}

func (e *AssignmentCorruptionError) Error() string {
	msg := fmt.Sprintf("%s: booking %s, worker %s", ErrAssignmentCorrupted, e.BookingID, e.WorkerID)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", sanitize(e.Cause))
	}
	return msg
}

func (e *AssignmentCorruptionError) Unwrap() error {
	return ErrAssignmentCorrupted
}
