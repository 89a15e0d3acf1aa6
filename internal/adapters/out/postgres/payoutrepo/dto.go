// Package payoutrepo provides data transfer objects and mapping functions for
// the payout ledger. Ledger rows are append-only: the repository exposes no
// update or delete operations.
package payoutrepo

import (
	"time"

	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/core/domain/model/payout"

	"github.com/google/uuid"
)

// PayoutDTO represents the database structure for persisting ledger entries.
type PayoutDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourierID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount     float64   `gorm:"type:double precision;not null"`
	Notes      string    `gorm:"type:text"`
	RecordedAt time.Time `gorm:"type:timestamptz;not null"`
}

// TableName specifies the database table name for payout entities.
// Overrides GORM's default naming convention to use "payouts" instead of "payout_dtos".
func (PayoutDTO) TableName() string {
	return "payouts"
}

// fromDomain converts a payout ledger entry to its database representation.
func fromDomain(payout *payout.Payout) PayoutDTO {
	return PayoutDTO{
		ID:         payout.ID().Bytes(),
		CourierID:  payout.CourierID().Bytes(),
		Amount:     payout.Amount(),
		Notes:      payout.Notes(),
		RecordedAt: payout.RecordedAt(),
	}
}

// toDomain converts a database DTO to a payout ledger entry using RestorePayout.
func toDomain(dto PayoutDTO) (*payout.Payout, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	return payout.RestorePayout(id, courierID, dto.Amount, dto.Notes, dto.RecordedAt)
}
