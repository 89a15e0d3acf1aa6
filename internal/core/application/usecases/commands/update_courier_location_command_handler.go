package commands

import (
	"context"
)

// UpdateCourierLocationCommandHandler records GPS pings from courier apps.
// The last known position feeds proximity ranking during dispatch.
type UpdateCourierLocationCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewUpdateCourierLocationCommandHandler creates a handler for location updates.
func NewUpdateCourierLocationCommandHandler(uowFactory CourierUoWFactory) UpdateCourierLocationCommandHandler {
	return UpdateCourierLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the location update command.
// Loads the courier, records the new position and persists it transactionally.
func (h UpdateCourierLocationCommandHandler) Handle(ctx context.Context, cmd UpdateCourierLocationCommand) error {
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

	courierRepo := uow.CourierRepository()
	existingCourier, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if err = existingCourier.UpdateLocation(cmd.Location()); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, existingCourier); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
