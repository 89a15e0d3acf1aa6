package commands

import (
	"context"

	"bistro/internal/core/domain/services"
)

// CompleteDeliveryCommandHandler handles the delivered transition.
// This is the single settlement point: the courier's commission config is read
// exactly once, here, and the computed amount is frozen onto the order. Edits
// to the config after this instant never change the frozen amount.
type CompleteDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
// Requires a UoWFactory because the handler reads the courier while updating
// the order.
func NewCompleteDeliveryCommandHandler(uowFactory UoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery completion command.
// Loads the order and its courier, computes the commission from the courier's
// current config, and transitions the order to Delivered with the snapshot
// frozen. The whole operation is transactional; a failed transition leaves no
// partial state behind.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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

	ordersRepo := uow.OrderRepository()
	existingOrder, err := ordersRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	var driverCommission *float64
	if courierID := existingOrder.Courier(); courierID != nil {
		assignedCourier, courierErr := uow.CourierRepository().Get(ctx, *courierID)
		if courierErr != nil {
			return courierErr
		}

		commission, calcErr := services.NewSettlementCalculator().
			CommissionFor(existingOrder.Total(), assignedCourier.CommissionConfig())
		if calcErr != nil {
			return calcErr
		}

		driverCommission = &commission
	}

	if err = existingOrder.Deliver(driverCommission); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, existingOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
