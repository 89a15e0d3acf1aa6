package ports

import (
	"context"

	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/core/domain/model/payout"
)

// PayoutRepository defines the persistence contract for the payout ledger.
// The ledger is append-only: entries are added and read, never changed.
type PayoutRepository interface {
	// Add appends a new ledger entry to storage.
	// The payout must be valid and not already exist in the repository.
	Add(ctx context.Context, payout *payout.Payout) error

	// GetAllForCourier retrieves a courier's ledger entries, newest first.
	GetAllForCourier(ctx context.Context, courierID kernel.UUID) ([]*payout.Payout, error)
}
