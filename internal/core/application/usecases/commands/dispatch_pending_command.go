package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrDispatchPendingCommandIsNotConstructed = errors.New(
	"DispatchPendingCommand must be created via NewDispatchPendingCommand constructor",
)

// DispatchPendingCommand triggers one round of automatic dispatch: the
// oldest pending booking is matched with the closest eligible worker.
type DispatchPendingCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchPendingCommand creates a command to trigger automatic
// dispatch.
func NewDispatchPendingCommand() DispatchPendingCommand {
	return DispatchPendingCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *DispatchPendingCommand) Validate() error {
	return c.guard.Validate(ErrDispatchPendingCommandIsNotConstructed)
}
