package commands

import (
	"errors"
	"fmt"

	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customerName is required")
	ErrTotalIsInvalid         = errors.New("total must not be negative")
)

// CreateOrderCommand represents a request to create a new delivery order.
// Encapsulates the customer's coordinate, which the handler resolves against
// the configured zones to stamp a delivery charge.
//
// Example:
//
//	point, _ := kernel.NewGeoPoint(28.6139, 77.2090)
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "Asha Verma", point, 1000)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerName  string
	deliveryPoint kernel.GeoPoint
	total         float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// Validates that the order ID is valid, the customer name is not empty, the
// delivery point is properly constructed and the total is not negative.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerName string,
	deliveryPoint kernel.GeoPoint,
	total float64,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerName(customerName),
		orderCommand.setDeliveryPoint(deliveryPoint),
		orderCommand.setTotal(total),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the name the order is placed under.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// DeliveryPoint returns the customer's GPS coordinate.
func (c CreateOrderCommand) DeliveryPoint() kernel.GeoPoint {
	return c.deliveryPoint
}

// Total returns the order total in currency units.
func (c CreateOrderCommand) Total() float64 {
	return c.total
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setDeliveryPoint(deliveryPoint kernel.GeoPoint) error {
	if err := deliveryPoint.Validate(); err != nil {
		return err
	}

	c.deliveryPoint = deliveryPoint
	return nil
}

func (c *CreateOrderCommand) setTotal(total float64) error {
	if total < 0 {
		return fmt.Errorf("%w: got %g", ErrTotalIsInvalid, total)
	}

	c.total = total
	return nil
}
