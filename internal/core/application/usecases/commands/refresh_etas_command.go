package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrRefreshEtasCommandIsNotConstructed = errors.New(
	"RefreshEtasCommand must be created via NewRefreshEtasCommand constructor",
)

// RefreshEtasCommand triggers one sweep over the en_route bookings,
// re-announcing each one's ETA from the worker's latest known position.
type RefreshEtasCommand struct {
	guard guard.ConstructorGuard
}

// NewRefreshEtasCommand creates a command to trigger an ETA sweep.
func NewRefreshEtasCommand() RefreshEtasCommand {
	return RefreshEtasCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *RefreshEtasCommand) Validate() error {
	return c.guard.Validate(ErrRefreshEtasCommandIsNotConstructed)
}
