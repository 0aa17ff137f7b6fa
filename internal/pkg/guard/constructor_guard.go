// Package guard provides the constructor guard used by value objects,
// aggregates and commands to reject zero-value instances that bypassed
// their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes
// a nil validation error for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes objects built through their constructor from
// zero values. Embed it as a private field and set it with NewConstructorGuard
// inside the constructor; Validate then fails for any zero-value instance.
//
// Example:
//
//	type Booking struct {
//	    id    kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func NewBooking(id kernel.UUID) (*Booking, error) {
//	    return &Booking{id: id, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (b *Booking) Validate() error {
//	    return b.guard.Validate(ErrBookingIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for constructed objects. For zero values it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
