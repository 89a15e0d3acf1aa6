package queries

import (
	"context"

	"bistro/internal/core/domain/model/courier"
	"bistro/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllCouriersQueryHandler retrieves all courier information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllCouriersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCouriersQueryHandler creates a handler for courier roster queries.
// Requires a GORM database connection for query execution.
func NewGetAllCouriersQueryHandler(db *gorm.DB) GetAllCouriersQueryHandler {
	return GetAllCouriersQueryHandler{db: db}
}

// Handle executes the query to retrieve all couriers.
// Returns a slice of courier read models sorted by name.
func (h GetAllCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCouriersQuery,
) ([]GetAllCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	couriers := make([]GetAllCouriersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone,
			commission_kind,
			commission_rate,
			location_lat,
			location_lon
		FROM couriers
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var courierResp GetAllCouriersQueryResponse
		var id uuid.UUID
		var commissionKind int
		var locationLat, locationLon *float64

		err = rows.Scan(
			&id,
			&courierResp.Name,
			&courierResp.Phone,
			&commissionKind,
			&courierResp.CommissionRate,
			&locationLat,
			&locationLon,
		)
		if err != nil {
			return nil, err
		}

		courierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		courierResp.ID = courierID
		courierResp.CommissionKind = courier.CommissionKind(commissionKind).String()

		if locationLat != nil && locationLon != nil {
			location, locErr := kernel.NewGeoPoint(*locationLat, *locationLon)
			if locErr != nil {
				return nil, locErr
			}
			courierResp.Location = &location
		}

		couriers = append(couriers, courierResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}
