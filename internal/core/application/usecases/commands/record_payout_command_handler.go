package commands

import (
	"context"

	"bistro/internal/core/domain/model/payout"
)

// RecordPayoutCommandHandler appends entries to the courier payout ledger.
// The ledger is append-only; the courier's due amount is always derived from
// settled commissions minus the sum of these entries.
type RecordPayoutCommandHandler struct {
	uowFactory PayoutUoWFactory
}

// NewRecordPayoutCommandHandler creates a handler for payout recording.
// Requires a PayoutUoWFactory so the courier lookup and the ledger append
// share one transaction.
func NewRecordPayoutCommandHandler(uowFactory PayoutUoWFactory) RecordPayoutCommandHandler {
	return RecordPayoutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payout command.
// Verifies the courier exists, then appends the ledger entry transactionally.
func (h RecordPayoutCommandHandler) Handle(ctx context.Context, cmd RecordPayoutCommand) error {
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

	if _, err := uow.CourierRepository().Get(ctx, cmd.CourierID()); err != nil {
		return err
	}

	newPayout, err := payout.NewPayout(cmd.PayoutID(), cmd.CourierID(), cmd.Amount(), cmd.Notes())
	if err != nil {
		return err
	}

	if err = uow.PayoutRepository().Add(ctx, newPayout); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
