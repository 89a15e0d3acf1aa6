package commands

import (
	"context"

	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/core/domain/model/order"
	"bistro/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves the customer's coordinate against the active zones, stamps the
// matched zone's delivery charge onto the new order and persists it in
// "created" status.
//
// Orders that fall outside every zone, or arrive while no zone is configured,
// are still accepted: they carry no zone reference and a zero delivery charge,
// and the admin decides how to handle them.
type CreateOrderCommandHandler struct {
	uowFactory OrderZoneUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderZoneUoWFactory so zone resolution and order persistence
// share one transaction.
func NewCreateOrderCommandHandler(uowFactory OrderZoneUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Resolves the delivery zone, stamps the charge and creates the order in
// "created" status within a single transaction.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	activeZones, err := uow.ZoneRepository().GetAllActive(ctx)
	if err != nil {
		return err
	}

	resolution, err := services.NewZoneResolver().Resolve(cmd.DeliveryPoint(), activeZones)
	if err != nil {
		return err
	}

	var (
		zoneID         *kernel.UUID
		deliveryCharge float64
	)
	if resolution.Outcome == services.OutcomeMatched {
		id := resolution.Primary.Zone.ID()
		zoneID = &id
		deliveryCharge = resolution.Primary.Zone.DeliveryCharge()
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerName(),
		cmd.DeliveryPoint(),
		cmd.Total(),
		zoneID,
		deliveryCharge,
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
