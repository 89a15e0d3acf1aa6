package payoutrepo

import (
	"context"
	"errors"

	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/core/domain/model/payout"
	"bistro/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormPayoutRepository implements PayoutRepository using GORM.
type GormPayoutRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPayoutRepository creates a new GORM payout repository.
func NewGormPayoutRepository(db *gorm.DB, tracker aggregateTracker) *GormPayoutRepository {
	return &GormPayoutRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a new ledger entry to the database.
func (r *GormPayoutRepository) Add(ctx context.Context, aggregate *payout.Payout) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return errs.NewObjectAlreadyExistsErrorWithCause("payout", aggregate.ID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAllForCourier retrieves a courier's ledger entries, newest first.
func (r *GormPayoutRepository) GetAllForCourier(ctx context.Context, courierID kernel.UUID) ([]*payout.Payout, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PayoutDTO
	if err := r.db.WithContext(ctx).
		Where("courier_id = ?", courierID.Bytes()).
		Order("recorded_at DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	payouts := make([]*payout.Payout, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		payouts = append(payouts, p)
	}

	return payouts, nil
}
