package queries

import (
	"errors"

	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/pkg/guard"
)

var ErrGetCourierBalanceQueryIsNotConstructed = errors.New(
	"GetCourierBalanceQuery must be created via NewGetCourierBalanceQuery constructor",
)

// GetCourierBalanceQuery computes a courier's settlement balance: commissions
// earned on delivered orders, amounts already paid out, and the remaining due.
//
// Example:
//
//	query, err := NewGetCourierBalanceQuery(courierID)
//	if err != nil {
//	    return err
//	}
//
//	balance, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get balance: %w", err)
//	}
//
//	fmt.Printf("Due: %.2f\n", balance.Due)
type GetCourierBalanceQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	guard     guard.ConstructorGuard
}

// NewGetCourierBalanceQuery creates a balance query for the given courier.
func NewGetCourierBalanceQuery(courierID kernel.UUID) (GetCourierBalanceQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierBalanceQuery{}, err
	}

	return GetCourierBalanceQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// CourierID returns the courier whose balance is requested.
func (q GetCourierBalanceQuery) CourierID() kernel.UUID {
	return q.courierID
}

// Validate ensures the query was created through the constructor.
func (q GetCourierBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierBalanceQueryIsNotConstructed)
}

// GetCourierBalanceQueryResponse is the courier settlement read model.
//
// Earned sums the commission snapshots frozen onto delivered orders. Paid sums
// the payout ledger. Due is earned minus paid and may be negative when the
// courier was overpaid in advance.
type GetCourierBalanceQueryResponse struct {
	CourierID kernel.UUID
	Earned    float64
	Paid      float64
	Due       float64
}
