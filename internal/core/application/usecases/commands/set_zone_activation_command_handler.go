package commands

import (
	"context"
)

// SetZoneActivationCommandHandler handles zone activation and deactivation.
// The zone keeps its configuration either way and can be flipped back later.
type SetZoneActivationCommandHandler struct {
	uowFactory ZoneUoWFactory
}

// NewSetZoneActivationCommandHandler creates a handler for zone activation operations.
func NewSetZoneActivationCommandHandler(uowFactory ZoneUoWFactory) SetZoneActivationCommandHandler {
	return SetZoneActivationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the activation command.
// Loads the zone, flips its state and persists the change transactionally.
func (h SetZoneActivationCommandHandler) Handle(ctx context.Context, cmd SetZoneActivationCommand) error {
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

	zoneRepo := uow.ZoneRepository()
	existingZone, err := zoneRepo.Get(ctx, cmd.ZoneID())
	if err != nil {
		return err
	}

	if cmd.Active() {
		existingZone.Activate()
	} else {
		existingZone.Deactivate()
	}

	if err = zoneRepo.Update(ctx, existingZone); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
