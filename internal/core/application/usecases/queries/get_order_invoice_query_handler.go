package queries

import (
	"context"
	"database/sql"
	"errors"

	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/core/domain/model/order"
	"bistro/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderInvoiceQueryHandler builds the invoice read model for an order.
// Joins the zone and courier tables so the invoice can print display names
// instead of identifiers.
type GetOrderInvoiceQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderInvoiceQueryHandler creates a handler for invoice queries.
// Requires a GORM database connection for query execution.
func NewGetOrderInvoiceQueryHandler(db *gorm.DB) GetOrderInvoiceQueryHandler {
	return GetOrderInvoiceQueryHandler{db: db}
}

// Handle executes the invoice query for the requested order.
// Returns an object not found error when the order does not exist.
func (h GetOrderInvoiceQueryHandler) Handle(
	ctx context.Context,
	query GetOrderInvoiceQuery,
) (GetOrderInvoiceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderInvoiceQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			orders.id,
			orders.customer_name,
			orders.status,
			orders.total,
			orders.delivery_charge,
			zones.name,
			couriers.name
		FROM orders
		LEFT JOIN zones ON zones.id = orders.zone_id
		LEFT JOIN couriers ON couriers.id = orders.courier_id
		WHERE orders.id = ?
	`, query.OrderID().Bytes()).Row()

	var id uuid.UUID
	var customerName string
	var status int
	var total, deliveryCharge float64
	var zoneName, courierName *string

	err := row.Scan(&id, &customerName, &status, &total, &deliveryCharge, &zoneName, &courierName)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderInvoiceQueryResponse{},
			errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderInvoiceQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderInvoiceQueryResponse{}, err
	}

	return GetOrderInvoiceQueryResponse{
		OrderID:        orderID,
		CustomerName:   customerName,
		Status:         order.Status(status).String(),
		Total:          total,
		DeliveryCharge: deliveryCharge,
		GrandTotal:     total + deliveryCharge,
		ZoneName:       zoneName,
		CourierName:    courierName,
	}, nil
}
