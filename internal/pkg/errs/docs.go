// Package errs provides the standardized error taxonomy of the dispatch
// application.
//
// Generic errors cover malformed input and failed lookups:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError
//   - ObjectNotFoundError
//
// Domain errors cover the dispatch lifecycle:
//   - StateConflictError: invalid lifecycle transition or lost assignment race
//   - OutOfServiceAreaError: coordinate outside the service disc
//   - CapacityError: worker offline or at its concurrent-job limit
//   - UnknownServiceTypeError: service type absent from the pricing catalog
//   - AssignmentCorruptionError: rollback after a partial commit failed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrStateConflict) for errors.Is checks
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// All errors are returned explicitly; nothing is suppressed. Callers decide
// whether to retry: ValueIs*/UnknownServiceType errors are never retried,
// StateConflictError from a lost race is an expected non-fatal outcome, and
// AssignmentCorruptionError requires manual reconciliation.
package errs
