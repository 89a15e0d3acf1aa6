// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
// This package implements the repository pattern for the courier domain aggregate, handling
// the conversion between domain entities and database representations.
package courierrepo

import (
	"bistro/internal/core/domain/model/courier"
	"bistro/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier aggregates.
// The last known location is split into nullable columns because a courier that
// has never reported a position has no coordinate to store.
type CourierDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Phone          string    `gorm:"type:varchar(32)"`
	CommissionKind int       `gorm:"type:smallint;not null"`
	CommissionRate float64   `gorm:"type:double precision;not null"`
	LocationLat    *float64  `gorm:"type:double precision"`
	LocationLon    *float64  `gorm:"type:double precision"`
}

// TableName specifies the database table name for courier entities.
// Overrides GORM's default naming convention to use "couriers" instead of "courier_dtos".
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(courier *courier.Courier) CourierDTO {
	var locationLat, locationLon *float64
	if location := courier.LastKnownLocation(); location != nil {
		lat, lon := location.Latitude(), location.Longitude()
		locationLat, locationLon = &lat, &lon
	}

	return CourierDTO{
		ID:             courier.ID().Bytes(),
		Name:           courier.Name(),
		Phone:          courier.Phone(),
		CommissionKind: int(courier.CommissionConfig().Kind()),
		CommissionRate: courier.CommissionConfig().Rate(),
		LocationLat:    locationLat,
		LocationLon:    locationLon,
	}
}

// toDomain converts a database DTO to a courier domain aggregate using RestoreCourier.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	commission, err := courier.NewCommissionConfig(courier.CommissionKind(dto.CommissionKind), dto.CommissionRate)
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.LocationLat != nil && dto.LocationLon != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.LocationLat, *dto.LocationLon)
		if pointErr != nil {
			return nil, pointErr
		}
		location = &point
	}

	return courier.RestoreCourier(id, dto.Name, dto.Phone, commission, location)
}
