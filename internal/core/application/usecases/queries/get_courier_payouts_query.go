package queries

import (
	"errors"
	"time"

	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/pkg/guard"
)

var ErrGetCourierPayoutsQueryIsNotConstructed = errors.New(
	"GetCourierPayoutsQuery must be created via NewGetCourierPayoutsQuery constructor",
)

// GetCourierPayoutsQuery retrieves a courier's payout ledger history,
// newest entries first. Used by the admin settlement screen.
type GetCourierPayoutsQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	guard     guard.ConstructorGuard
}

// NewGetCourierPayoutsQuery creates a payout history query for the given courier.
func NewGetCourierPayoutsQuery(courierID kernel.UUID) (GetCourierPayoutsQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierPayoutsQuery{}, err
	}

	return GetCourierPayoutsQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// CourierID returns the courier whose ledger is requested.
func (q GetCourierPayoutsQuery) CourierID() kernel.UUID {
	return q.courierID
}

// Validate ensures the query was created through the constructor.
func (q GetCourierPayoutsQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierPayoutsQueryIsNotConstructed)
}

// GetCourierPayoutsQueryResponse represents one payout ledger entry.
type GetCourierPayoutsQueryResponse struct {
	ID         kernel.UUID
	Amount     float64
	Notes      string
	RecordedAt time.Time
}
