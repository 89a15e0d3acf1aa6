package commands

import (
	"context"
)

// CancelOrderCommandHandler handles order cancellation.
// Delivered orders can no longer be cancelled; the order aggregate enforces
// the transition rules.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
// Loads the order, performs the cancel transition and persists the change.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err = existingOrder.Cancel(); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, existingOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
