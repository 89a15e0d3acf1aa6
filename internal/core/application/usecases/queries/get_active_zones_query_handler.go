package queries

import (
	"context"

	"bistro/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveZonesQueryHandler retrieves active zone read models from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetActiveZonesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveZonesQueryHandler creates a handler for active zone queries.
// Requires a GORM database connection for query execution.
func NewGetActiveZonesQueryHandler(db *gorm.DB) GetActiveZonesQueryHandler {
	return GetActiveZonesQueryHandler{db: db}
}

// Handle executes the query to retrieve all active zones.
// Results are sorted by name for consistent output.
func (h GetActiveZonesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveZonesQuery,
) ([]GetActiveZonesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	zones := make([]GetActiveZonesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			center_lat,
			center_lon,
			radius_km,
			delivery_charge
		FROM zones
		WHERE active = TRUE
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var zoneResp GetActiveZonesQueryResponse
		var id uuid.UUID
		var centerLat, centerLon *float64

		err = rows.Scan(
			&id,
			&zoneResp.Name,
			&centerLat,
			&centerLon,
			&zoneResp.RadiusKm,
			&zoneResp.DeliveryCharge,
		)
		if err != nil {
			return nil, err
		}

		zoneID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		zoneResp.ID = zoneID

		if centerLat != nil && centerLon != nil {
			center, centerErr := kernel.NewGeoPoint(*centerLat, *centerLon)
			if centerErr != nil {
				return nil, centerErr
			}
			zoneResp.Center = &center
		}

		zones = append(zones, zoneResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return zones, nil
}
