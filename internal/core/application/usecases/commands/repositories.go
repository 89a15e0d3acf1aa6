// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"bistro/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ZoneRepoFactory provides access to zone repository within a transaction.
	ZoneRepoFactory interface {
		ZoneRepository() ports.ZoneRepository
	}

	// CourierRepoFactory provides access to courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PayoutRepoFactory provides access to payout repository within a transaction.
	PayoutRepoFactory interface {
		PayoutRepository() ports.PayoutRepository
	}

	// ZoneUoW manages transactions for zone-only operations.
	ZoneUoW interface {
		TxManager
		ZoneRepoFactory
	}

	// ZoneUoWFactory creates new zone unit of work instances.
	ZoneUoWFactory interface {
		Create() ZoneUoW
	}

	// CourierUoW manages transactions for courier-only operations.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	// CourierUoWFactory creates new courier unit of work instances.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderZoneUoW manages transactions that read zones while creating orders.
	// Used by order creation, which resolves the delivery zone and stamps the
	// resolved charge onto the new order atomically.
	OrderZoneUoW interface {
		TxManager
		OrderRepoFactory
		ZoneRepoFactory
	}

	// OrderZoneUoWFactory creates new order/zone unit of work instances.
	OrderZoneUoWFactory interface {
		Create() OrderZoneUoW
	}

	// PayoutUoW manages transactions that append ledger entries.
	// Includes the courier repository so handlers can verify the courier
	// exists before appending.
	PayoutUoW interface {
		TxManager
		PayoutRepoFactory
		CourierRepoFactory
	}

	// PayoutUoWFactory creates new payout unit of work instances.
	PayoutUoWFactory interface {
		Create() PayoutUoW
	}

	// UoW manages transactions across both order and courier aggregates.
	// Used for commands that coordinate changes between multiple aggregate types.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   courierRepo := uow.CourierRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		CourierRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
