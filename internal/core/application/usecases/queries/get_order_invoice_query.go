package queries

import (
	"errors"

	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/pkg/guard"
)

var ErrGetOrderInvoiceQueryIsNotConstructed = errors.New(
	"GetOrderInvoiceQuery must be created via NewGetOrderInvoiceQuery constructor",
)

// GetOrderInvoiceQuery retrieves the data needed to render an order invoice:
// the order amounts plus the resolved zone and courier display names.
type GetOrderInvoiceQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

// NewGetOrderInvoiceQuery creates an invoice query for the given order.
func NewGetOrderInvoiceQuery(orderID kernel.UUID) (GetOrderInvoiceQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderInvoiceQuery{}, err
	}

	return GetOrderInvoiceQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the order to build the invoice for.
func (q GetOrderInvoiceQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
func (q GetOrderInvoiceQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderInvoiceQueryIsNotConstructed)
}

// GetOrderInvoiceQueryResponse is the invoice read model.
//
// ZoneName and CourierName are nil when the order was accepted without zone
// coverage or has no courier assigned. GrandTotal is the order total plus the
// delivery charge.
type GetOrderInvoiceQueryResponse struct {
	OrderID        kernel.UUID
	CustomerName   string
	Status         string
	Total          float64
	DeliveryCharge float64
	GrandTotal     float64
	ZoneName       *string
	CourierName    *string
}
