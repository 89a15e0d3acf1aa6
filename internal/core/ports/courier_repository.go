// Package ports defines repository interfaces for the delivery back office domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"bistro/internal/core/domain/model/courier"
	"bistro/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
// Provides methods for storing, retrieving, and querying courier entities
// with their commission configuration and last known location.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	// The courier must be valid and not already exist in the repository.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	// The courier must exist in the repository and be valid.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAll retrieves every courier in the roster.
	GetAll(ctx context.Context) ([]*courier.Courier, error)

	// GetAllFree retrieves all couriers that are not currently working an order.
	// A courier is considered free if no order in Assigned status references them.
	//
	// Business Rules:
	//   - Couriers without any orders: Available
	//   - Couriers with Assigned orders: Unavailable (actively working)
	//   - Couriers with Delivered or Cancelled orders: Available (work finished)
	GetAllFree(ctx context.Context) ([]*courier.Courier, error)
}
