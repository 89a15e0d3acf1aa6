package payout

import (
	"errors"
	"fmt"
	"time"

	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/pkg/errs"
	"bistro/internal/pkg/guard"
)

// ErrPayoutIsNotConstructed is returned when using an improperly initialized Payout.
var ErrPayoutIsNotConstructed = errors.New("Payout must be created via NewPayout constructor")

// Payout is one immutable entry in a courier's payout ledger.
// The ledger is append-only: entries are never updated or deleted, and a
// courier's due amount is always derived as settled commissions minus the sum
// of these entries.
//
// Business rules:
//   - Amount must be strictly positive; zero or negative payouts are rejected
//   - Nothing caps the amount at the courier's current due; overpaying drives
//     the due negative, which the balance query surfaces as an advance
type Payout struct {
	// id uniquely identifies the ledger entry
	id kernel.UUID
	// courierID references the courier the payment was made to
	courierID kernel.UUID
	// amount is the currency amount paid out
	amount float64
	// notes is a free-form remark recorded by the admin
	notes string
	// recordedAt is the moment the entry was appended
	recordedAt time.Time
	// guard ensures the payout was properly constructed
	guard guard.ConstructorGuard
}

// NewPayout creates a new ledger entry timestamped with the current UTC time.
//
// Parameters:
//   - id: Unique identifier (must be valid UUID)
//   - courierID: Courier being paid (must be valid UUID)
//   - amount: Currency amount (must be strictly positive)
//   - notes: Free-form remark (may be empty)
func NewPayout(id kernel.UUID, courierID kernel.UUID, amount float64, notes string) (*Payout, error) {
	payout := &Payout{
		recordedAt: time.Now().UTC(),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		payout.setID(id),
		payout.setCourierID(courierID),
		payout.setAmount(amount),
	); err != nil {
		return nil, err
	}

	payout.notes = notes
	return payout, nil
}

// RestorePayout reconstructs a ledger entry from persistent storage with its
// original timestamp.
func RestorePayout(
	id kernel.UUID,
	courierID kernel.UUID,
	amount float64,
	notes string,
	recordedAt time.Time,
) (*Payout, error) {
	payout, err := NewPayout(id, courierID, amount, notes)
	if err != nil {
		return nil, err
	}

	payout.recordedAt = recordedAt
	return payout, nil
}

// Validate checks if the Payout was properly constructed via NewPayout.
func (p *Payout) Validate() error {
	if p == nil {
		return ErrPayoutIsNotConstructed
	}
	return p.guard.Validate(ErrPayoutIsNotConstructed)
}

// IsEqual compares two payouts by their unique identifiers.
func (p *Payout) IsEqual(other *Payout) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the ledger entry's unique identifier.
func (p *Payout) ID() kernel.UUID {
	return p.id
}

// CourierID returns the courier the payment was made to.
func (p *Payout) CourierID() kernel.UUID {
	return p.courierID
}

// Amount returns the currency amount paid out.
func (p *Payout) Amount() float64 {
	return p.amount
}

// Notes returns the free-form remark recorded with the payment.
func (p *Payout) Notes() string {
	return p.notes
}

// RecordedAt returns the moment the entry was appended.
func (p *Payout) RecordedAt() time.Time {
	return p.recordedAt
}

// setID validates and sets the entry's unique identifier.
func (p *Payout) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setCourierID validates and sets the courier reference.
func (p *Payout) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	p.courierID = courierID
	return nil
}

// setAmount validates and sets the amount. Amount must be strictly positive.
func (p *Payout) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%g is not greater than 0", amount))
	}
	p.amount = amount
	return nil
}
