package commands

import (
	"errors"

	"bistro/internal/core/domain/model/courier"
	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/pkg/guard"
)

var (
	ErrCreateCourierCommandIsNotConstructed = errors.New(
		"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
	)
	ErrCourierNameIsRequired = errors.New("name is required")
)

// CreateCourierCommand represents a request to register a new courier with
// their commission configuration.
//
// Example:
//
//	cfg, _ := courier.NewCommissionConfig(courier.CommissionPercent, 10)
//	cmd, err := NewCreateCourierCommand(kernel.NewUUID(), "Ravi Kumar", "+91-9800000000", cfg)
//	if err != nil {
//	    return fmt.Errorf("invalid courier data: %w", err)
//	}
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID  kernel.UUID
	name       string
	phone      string
	commission courier.CommissionConfig

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand creates a command to register a new courier.
// Validates that the courier ID is valid, the name is not empty and the
// commission config is properly constructed.
func NewCreateCourierCommand(
	courierID kernel.UUID,
	name string,
	phone string,
	commission courier.CommissionConfig,
) (CreateCourierCommand, error) {
	courierCommand := CreateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courierCommand.setCourierID(courierID),
		courierCommand.setName(name),
		courierCommand.setCommission(commission),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	courierCommand.phone = phone
	return courierCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

// CourierID returns the unique identifier for the courier.
func (c CreateCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Name returns the courier's name.
func (c CreateCourierCommand) Name() string {
	return c.name
}

// Phone returns the courier's contact number. May be empty.
func (c CreateCourierCommand) Phone() string {
	return c.phone
}

// Commission returns the courier's commission configuration.
func (c CreateCourierCommand) Commission() courier.CommissionConfig {
	return c.commission
}

func (c *CreateCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *CreateCourierCommand) setName(name string) error {
	if name == "" {
		return ErrCourierNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCourierCommand) setCommission(commission courier.CommissionConfig) error {
	if err := commission.Validate(); err != nil {
		return err
	}

	c.commission = commission
	return nil
}
