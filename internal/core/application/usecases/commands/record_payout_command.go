package commands

import (
	"errors"
	"fmt"

	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/pkg/guard"
)

var (
	ErrRecordPayoutCommandIsNotConstructed = errors.New(
		"RecordPayoutCommand must be created via NewRecordPayoutCommand constructor",
	)
	ErrPayoutAmountIsInvalid = errors.New("amount must be greater than 0")
)

// RecordPayoutCommand represents a request to append a payment to a courier's
// payout ledger.
type RecordPayoutCommand struct { //nolint:recvcheck //using for validation
	payoutID  kernel.UUID
	courierID kernel.UUID
	amount    float64
	notes     string

	guard guard.ConstructorGuard
}

// NewRecordPayoutCommand creates a command to record a courier payout.
// Validates that both IDs are valid and the amount is strictly positive.
// The amount is deliberately not capped at the courier's current due; an
// overpayment shows up as a negative due on the balance query.
func NewRecordPayoutCommand(
	payoutID kernel.UUID,
	courierID kernel.UUID,
	amount float64,
	notes string,
) (RecordPayoutCommand, error) {
	payoutCommand := RecordPayoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		payoutCommand.setPayoutID(payoutID),
		payoutCommand.setCourierID(courierID),
		payoutCommand.setAmount(amount),
	); err != nil {
		return RecordPayoutCommand{}, err
	}

	payoutCommand.notes = notes
	return payoutCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPayoutCommand) Validate() error {
	return c.guard.Validate(ErrRecordPayoutCommandIsNotConstructed)
}

// PayoutID returns the unique identifier for the ledger entry.
func (c RecordPayoutCommand) PayoutID() kernel.UUID {
	return c.payoutID
}

// CourierID returns the courier being paid.
func (c RecordPayoutCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Amount returns the currency amount to record.
func (c RecordPayoutCommand) Amount() float64 {
	return c.amount
}

// Notes returns the free-form remark for the entry.
func (c RecordPayoutCommand) Notes() string {
	return c.notes
}

func (c *RecordPayoutCommand) setPayoutID(payoutID kernel.UUID) error {
	if err := payoutID.Validate(); err != nil {
		return err
	}

	c.payoutID = payoutID
	return nil
}

func (c *RecordPayoutCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *RecordPayoutCommand) setAmount(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: got %g", ErrPayoutAmountIsInvalid, amount)
	}

	c.amount = amount
	return nil
}
