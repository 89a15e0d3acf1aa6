package commands

import (
	"errors"

	"bistro/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand represents a request to run one round of courier
// assignment. It carries no parameters: the handler picks the oldest pending
// order and the nearest free courier on its own.
type AssignCourierCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignCourierCommand creates a command to trigger courier assignment.
func NewAssignCourierCommand() AssignCourierCommand {
	return AssignCourierCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}
