package ports

import (
	"context"

	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/core/domain/model/zone"
)

// ZoneRepository defines the persistence contract for zone aggregates.
type ZoneRepository interface {
	// Add persists a new zone aggregate to storage.
	// The zone must be valid and not already exist in the repository.
	Add(ctx context.Context, zone *zone.Zone) error

	// Update persists changes to an existing zone aggregate,
	// including activation state changes.
	Update(ctx context.Context, zone *zone.Zone) error

	// Get retrieves a zone aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error)

	// GetAll retrieves every configured zone, active or not.
	GetAll(ctx context.Context) ([]*zone.Zone, error)

	// GetAllActive retrieves the zones that participate in matching.
	GetAllActive(ctx context.Context) ([]*zone.Zone, error)
}
