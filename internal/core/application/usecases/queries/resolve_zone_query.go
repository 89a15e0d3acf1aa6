package queries

import (
	"errors"

	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/pkg/guard"
)

var ErrResolveZoneQueryIsNotConstructed = errors.New(
	"ResolveZoneQuery must be created via NewResolveZoneQuery constructor",
)

// ResolveZoneQuery checks which delivery zone covers a customer coordinate
// without creating an order. Storefronts call this before checkout to show
// the delivery charge, or to tell the customer they are outside the service
// area.
//
// Example:
//
//	query, err := NewResolveZoneQuery(28.6139, 77.2090)
//	if err != nil {
//	    return err
//	}
//
//	resolution, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to resolve zone: %w", err)
//	}
//
//	fmt.Printf("Outcome: %s\n", resolution.Outcome)
type ResolveZoneQuery struct { //nolint:recvcheck //using for validation
	point kernel.GeoPoint
	guard guard.ConstructorGuard
}

// NewResolveZoneQuery creates a query for the given customer coordinate.
// Returns an error when the coordinate is outside valid GPS ranges.
func NewResolveZoneQuery(latitude float64, longitude float64) (ResolveZoneQuery, error) {
	point, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return ResolveZoneQuery{}, err
	}

	return ResolveZoneQuery{
		point: point,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Point returns the coordinate to resolve.
func (q ResolveZoneQuery) Point() kernel.GeoPoint {
	return q.point
}

// Validate ensures the query was created through the constructor.
func (q ResolveZoneQuery) Validate() error {
	return q.guard.Validate(ErrResolveZoneQueryIsNotConstructed)
}

// ZoneCandidateResponse describes one zone considered during resolution.
// DistanceKm is rounded to two decimals for display.
type ZoneCandidateResponse struct {
	ID             kernel.UUID
	Name           string
	DistanceKm     float64
	DeliveryCharge float64
	WithinRadius   bool
}

// ResolveZoneQueryResponse is the read model returned to storefronts.
//
// Primary is set only when the outcome is "Matched". Nearest is set only when
// the outcome is "OutOfRange" and names the closest zone so the storefront can
// hint how far away coverage starts.
type ResolveZoneQueryResponse struct {
	Outcome      string
	Primary      *ZoneCandidateResponse
	Alternatives []ZoneCandidateResponse
	Nearest      *ZoneCandidateResponse
}
