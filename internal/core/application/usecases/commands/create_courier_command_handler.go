package commands

import (
	"context"

	"bistro/internal/core/domain/model/courier"
)

// CreateCourierCommandHandler handles the business logic for courier registration.
type CreateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewCreateCourierCommandHandler creates a handler for courier registration operations.
// Requires a CourierUoWFactory for transactional persistence.
func NewCreateCourierCommandHandler(uowFactory CourierUoWFactory) CreateCourierCommandHandler {
	return CreateCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the courier registration command.
// The courier starts with no known location; dispatch ranks them last until
// their app reports a first position.
func (h CreateCourierCommandHandler) Handle(ctx context.Context, cmd CreateCourierCommand) error {
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

	newCourier, err := courier.NewCourier(cmd.CourierID(), cmd.Name(), cmd.Phone(), cmd.Commission())
	if err != nil {
		return err
	}

	if err = uow.CourierRepository().Add(ctx, newCourier); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
