package queries

import (
	"context"
	"time"

	"bistro/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCourierPayoutsQueryHandler retrieves payout ledger entries from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetCourierPayoutsQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierPayoutsQueryHandler creates a handler for payout history queries.
// Requires a GORM database connection for query execution.
func NewGetCourierPayoutsQueryHandler(db *gorm.DB) GetCourierPayoutsQueryHandler {
	return GetCourierPayoutsQueryHandler{db: db}
}

// Handle executes the query to retrieve the courier's payout history.
// Results are sorted newest first.
func (h GetCourierPayoutsQueryHandler) Handle(
	ctx context.Context,
	query GetCourierPayoutsQuery,
) ([]GetCourierPayoutsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	payouts := make([]GetCourierPayoutsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			amount,
			notes,
			recorded_at
		FROM payouts
		WHERE courier_id = ?
		ORDER BY recorded_at DESC
	`, query.CourierID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var payoutResp GetCourierPayoutsQueryResponse
		var id uuid.UUID
		var recordedAt time.Time

		err = rows.Scan(
			&id,
			&payoutResp.Amount,
			&payoutResp.Notes,
			&recordedAt,
		)
		if err != nil {
			return nil, err
		}

		payoutID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		payoutResp.ID = payoutID
		payoutResp.RecordedAt = recordedAt

		payouts = append(payouts, payoutResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payouts, nil
}
