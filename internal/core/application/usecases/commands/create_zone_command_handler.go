package commands

import (
	"context"

	"bistro/internal/core/domain/model/zone"
)

// CreateZoneCommandHandler handles the business logic for zone creation.
// New zones start active and immediately participate in matching when they
// carry a center.
type CreateZoneCommandHandler struct {
	uowFactory ZoneUoWFactory
}

// NewCreateZoneCommandHandler creates a handler for zone creation operations.
// Requires a ZoneUoWFactory for transactional persistence.
func NewCreateZoneCommandHandler(uowFactory ZoneUoWFactory) CreateZoneCommandHandler {
	return CreateZoneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the zone creation command.
// Uses a transaction to ensure the zone is properly persisted or rolled back on error.
func (h CreateZoneCommandHandler) Handle(ctx context.Context, cmd CreateZoneCommand) error {
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

	newZone, err := zone.NewZone(cmd.ZoneID(), cmd.Name(), cmd.Center(), cmd.RadiusKm(), cmd.DeliveryCharge())
	if err != nil {
		return err
	}

	if err = uow.ZoneRepository().Add(ctx, newZone); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
