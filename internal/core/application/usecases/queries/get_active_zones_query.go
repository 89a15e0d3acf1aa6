package queries

import (
	"errors"

	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/pkg/guard"
)

var ErrGetActiveZonesQueryIsNotConstructed = errors.New(
	"GetActiveZonesQuery must be created via NewGetActiveZonesQuery constructor",
)

// GetActiveZonesQuery retrieves the delivery zones currently open for orders.
// Storefronts use this to show the serviced areas and their charges.
type GetActiveZonesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveZonesQuery creates a query to retrieve active zones.
// This is a parameterless query.
func NewGetActiveZonesQuery() GetActiveZonesQuery {
	return GetActiveZonesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveZonesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveZonesQueryIsNotConstructed)
}

// GetActiveZonesQueryResponse represents one active delivery zone.
// Center is nil for flat-rate zones that have no geofence coordinate.
type GetActiveZonesQueryResponse struct {
	ID             kernel.UUID
	Name           string
	Center         *kernel.GeoPoint
	RadiusKm       float64
	DeliveryCharge float64
}
