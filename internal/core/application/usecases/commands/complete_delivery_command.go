package commands

import (
	"errors"

	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents a request to mark an order as delivered.
// Completion is the settlement point: the handler computes the courier's
// commission from the config in force right now and freezes it onto the order.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to complete a delivery.
func NewCompleteDeliveryCommand(orderID kernel.UUID) (CompleteDeliveryCommand, error) {
	deliveryCommand := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deliveryCommand.setOrderID(orderID); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return deliveryCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order to complete.
func (c CompleteDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CompleteDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
