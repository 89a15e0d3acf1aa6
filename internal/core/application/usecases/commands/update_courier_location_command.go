package commands

import (
	"errors"

	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/pkg/guard"
)

var ErrUpdateCourierLocationCommandIsNotConstructed = errors.New(
	"UpdateCourierLocationCommand must be created via NewUpdateCourierLocationCommand constructor",
)

// UpdateCourierLocationCommand represents a GPS ping from a courier's app.
type UpdateCourierLocationCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	location  kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewUpdateCourierLocationCommand creates a command to record a courier's position.
func NewUpdateCourierLocationCommand(
	courierID kernel.UUID,
	location kernel.GeoPoint,
) (UpdateCourierLocationCommand, error) {
	locationCommand := UpdateCourierLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		locationCommand.setCourierID(courierID),
		locationCommand.setLocation(location),
	); err != nil {
		return UpdateCourierLocationCommand{}, err
	}

	return locationCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCourierLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCourierLocationCommandIsNotConstructed)
}

// CourierID returns the unique identifier of the courier.
func (c UpdateCourierLocationCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Location returns the reported GPS position.
func (c UpdateCourierLocationCommand) Location() kernel.GeoPoint {
	return c.location
}

func (c *UpdateCourierLocationCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *UpdateCourierLocationCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
