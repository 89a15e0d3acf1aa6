package queries

import (
	"context"

	"bistro/internal/core/domain/model/order"
	"bistro/internal/core/domain/services"
	"bistro/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCourierBalanceQueryHandler computes courier settlement balances from the
// delivered order commissions and the payout ledger. The sums come straight
// from SQL aggregates; the due arithmetic is delegated to the settlement
// calculator so the rounding rule lives in one place.
type GetCourierBalanceQueryHandler struct {
	db         *gorm.DB
	calculator services.SettlementCalculator
}

// NewGetCourierBalanceQueryHandler creates a handler for balance queries.
// Requires a GORM database connection for query execution.
func NewGetCourierBalanceQueryHandler(db *gorm.DB) GetCourierBalanceQueryHandler {
	return GetCourierBalanceQueryHandler{
		db:         db,
		calculator: services.NewSettlementCalculator(),
	}
}

// Handle executes the balance query for the requested courier.
// Returns an object not found error when the courier does not exist.
func (h GetCourierBalanceQueryHandler) Handle(
	ctx context.Context,
	query GetCourierBalanceQuery,
) (GetCourierBalanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCourierBalanceQueryResponse{}, err
	}

	courierID := query.CourierID().Bytes()

	var courierCount int64
	if err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM couriers WHERE id = ?
	`, courierID).Scan(&courierCount).Error; err != nil {
		return GetCourierBalanceQueryResponse{}, err
	}
	if courierCount == 0 {
		return GetCourierBalanceQueryResponse{},
			errs.NewObjectNotFoundError("courier", query.CourierID().String())
	}

	var earned float64
	if err := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(driver_commission), 0)
		FROM orders
		WHERE courier_id = ? AND status = ?
	`, courierID, int(order.Delivered)).Scan(&earned).Error; err != nil {
		return GetCourierBalanceQueryResponse{}, err
	}

	var paid float64
	if err := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount), 0)
		FROM payouts
		WHERE courier_id = ?
	`, courierID).Scan(&paid).Error; err != nil {
		return GetCourierBalanceQueryResponse{}, err
	}

	return GetCourierBalanceQueryResponse{
		CourierID: query.CourierID(),
		Earned:    earned,
		Paid:      paid,
		Due:       h.calculator.Due(earned, paid),
	}, nil
}
