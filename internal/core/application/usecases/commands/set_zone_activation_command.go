package commands

import (
	"errors"

	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/pkg/guard"
)

var ErrSetZoneActivationCommandIsNotConstructed = errors.New(
	"SetZoneActivationCommand must be created via NewSetZoneActivationCommand constructor",
)

// SetZoneActivationCommand represents a request to activate or deactivate a zone.
// Deactivation excludes the zone from matching without deleting its configuration.
type SetZoneActivationCommand struct { //nolint:recvcheck //using for validation
	zoneID kernel.UUID
	active bool

	guard guard.ConstructorGuard
}

// NewSetZoneActivationCommand creates a command to flip a zone's activation state.
func NewSetZoneActivationCommand(zoneID kernel.UUID, active bool) (SetZoneActivationCommand, error) {
	activationCommand := SetZoneActivationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := activationCommand.setZoneID(zoneID); err != nil {
		return SetZoneActivationCommand{}, err
	}

	activationCommand.active = active
	return activationCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SetZoneActivationCommand) Validate() error {
	return c.guard.Validate(ErrSetZoneActivationCommandIsNotConstructed)
}

// ZoneID returns the unique identifier of the zone.
func (c SetZoneActivationCommand) ZoneID() kernel.UUID {
	return c.zoneID
}

// Active returns the desired activation state.
func (c SetZoneActivationCommand) Active() bool {
	return c.active
}

func (c *SetZoneActivationCommand) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}

	c.zoneID = zoneID
	return nil
}
