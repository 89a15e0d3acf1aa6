package queries

import (
	"context"

	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/core/domain/model/zone"
	"bistro/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResolveZoneQueryHandler resolves a customer coordinate against the active
// delivery zones. Loads the zone read models with direct SQL and delegates
// the geofence matching to the ZoneResolver domain service.
type ResolveZoneQueryHandler struct {
	db       *gorm.DB
	resolver services.ZoneResolver
}

// NewResolveZoneQueryHandler creates a handler for zone resolution queries.
// Requires a GORM database connection for query execution.
func NewResolveZoneQueryHandler(db *gorm.DB) ResolveZoneQueryHandler {
	return ResolveZoneQueryHandler{
		db:       db,
		resolver: services.NewZoneResolver(),
	}
}

// Handle executes the query against the active zones that have a center.
// Zones without coordinates support flat-rate ordering only and never
// participate in matching.
func (h ResolveZoneQueryHandler) Handle(
	ctx context.Context,
	query ResolveZoneQuery,
) (ResolveZoneQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ResolveZoneQueryResponse{}, err
	}

	zones, err := h.loadActiveZones(ctx)
	if err != nil {
		return ResolveZoneQueryResponse{}, err
	}

	resolution, err := h.resolver.Resolve(query.Point(), zones)
	if err != nil {
		return ResolveZoneQueryResponse{}, err
	}

	response := ResolveZoneQueryResponse{
		Outcome:      resolution.Outcome.String(),
		Primary:      toCandidateResponse(resolution.Primary),
		Nearest:      toCandidateResponse(resolution.Nearest),
		Alternatives: make([]ZoneCandidateResponse, 0, len(resolution.Alternatives)),
	}
	for i := range resolution.Alternatives {
		response.Alternatives = append(response.Alternatives, *toCandidateResponse(&resolution.Alternatives[i]))
	}

	return response, nil
}

// loadActiveZones reads the matchable zones: active, with a configured center.
func (h ResolveZoneQueryHandler) loadActiveZones(ctx context.Context) ([]*zone.Zone, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			center_lat,
			center_lon,
			radius_km,
			delivery_charge
		FROM zones
		WHERE active = TRUE AND center_lat IS NOT NULL AND center_lon IS NOT NULL
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	zones := make([]*zone.Zone, 0)
	for rows.Next() {
		var id uuid.UUID
		var name string
		var centerLat, centerLon, radiusKm, deliveryCharge float64

		if err = rows.Scan(&id, &name, &centerLat, &centerLon, &radiusKm, &deliveryCharge); err != nil {
			return nil, err
		}

		zoneID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		center, centerErr := kernel.NewGeoPoint(centerLat, centerLon)
		if centerErr != nil {
			return nil, centerErr
		}

		z, zoneErr := zone.RestoreZone(zoneID, name, &center, radiusKm, deliveryCharge, true)
		if zoneErr != nil {
			return nil, zoneErr
		}
		zones = append(zones, z)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return zones, nil
}

func toCandidateResponse(match *services.ZoneMatch) *ZoneCandidateResponse {
	if match == nil {
		return nil
	}

	return &ZoneCandidateResponse{
		ID:             match.Zone.ID(),
		Name:           match.Zone.Name(),
		DistanceKm:     match.DistanceKm,
		DeliveryCharge: match.Zone.DeliveryCharge(),
		WithinRadius:   match.WithinRadius,
	}
}
