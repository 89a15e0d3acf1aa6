package services

import (
	"fmt"
	"math"

	"bistro/internal/core/domain/model/courier"
	"bistro/internal/pkg/errs"
)

// SettlementCalculator is a domain service that computes courier earnings.
//
// Key responsibilities:
//   - Computing the driver commission for a completed delivery
//   - Deriving the amount currently due to a courier from ledger totals
//
// Business rules:
//   - Fixed commission pays the configured rate regardless of the order total
//   - Percent commission pays rate percent of the order total
//   - The due amount is settled commissions minus recorded payouts and may be
//     negative when payouts overshoot, which callers surface as an advance
type SettlementCalculator struct{}

// NewSettlementCalculator creates a new SettlementCalculator instance.
func NewSettlementCalculator() SettlementCalculator {
	return SettlementCalculator{}
}

// CommissionFor computes the commission owed for one delivered order.
//
// Parameters:
//   - total: The order total (must be non-negative)
//   - config: The courier's commission config as it stands at this instant
//
// Returns:
//   - float64: Commission in currency units, rounded to two decimals
//   - error: Validation errors for the total or the config
//
// The caller freezes the result onto the order at the delivered transition;
// later edits to the config never change it.
func (s SettlementCalculator) CommissionFor(total float64, config courier.CommissionConfig) (float64, error) {
	if err := config.Validate(); err != nil {
		return 0, err
	}

	if total < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("%g is negative", total))
	}

	switch config.Kind() {
	case courier.CommissionFixed:
		return roundMoney(config.Rate()), nil
	case courier.CommissionPercent:
		return roundMoney(total * config.Rate() / 100), nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause("commission kind",
			fmt.Errorf("%s cannot be settled", config.Kind()))
	}
}

// Due derives the amount currently owed to a courier from the sum of settled
// commissions and the sum of recorded payouts. The result is rounded to two
// decimals and is negative when the courier has been paid in advance.
func (s SettlementCalculator) Due(earned float64, paid float64) float64 {
	return roundMoney(earned - paid)
}

// roundMoney rounds a currency amount to two decimals, half away from zero.
func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
