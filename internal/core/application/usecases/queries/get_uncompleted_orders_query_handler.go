package queries

import (
	"context"

	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUncompletedOrdersQueryHandler retrieves orders pending delivery from the database.
// Filters out terminal orders to provide active delivery workload visibility.
type GetUncompletedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUncompletedOrdersQueryHandler creates a handler for pending order queries.
// Requires a GORM database connection for query execution.
func NewGetUncompletedOrdersQueryHandler(db *gorm.DB) GetUncompletedOrdersQueryHandler {
	return GetUncompletedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all uncompleted orders.
// Returns orders in "Created" or "Assigned" status, excluding delivered and
// cancelled orders. Results are sorted by order ID for consistent output.
func (h GetUncompletedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUncompletedOrdersQuery,
) ([]GetUncompletedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUncompletedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			delivery_lat,
			delivery_lon,
			status
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY id
	`, int(order.Delivered), int(order.Cancelled)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetUncompletedOrdersQueryResponse
		var id uuid.UUID
		var deliveryLat, deliveryLon float64
		var status int

		err = rows.Scan(
			&id,
			&orderResp.CustomerName,
			&deliveryLat,
			&deliveryLon,
			&status,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		deliveryPoint, pointErr := kernel.NewGeoPoint(deliveryLat, deliveryLon)
		if pointErr != nil {
			return nil, pointErr
		}
		orderResp.DeliveryPoint = deliveryPoint
		orderResp.Status = order.Status(status).String()

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
