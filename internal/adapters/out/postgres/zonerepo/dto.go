// Package zonerepo provides data transfer objects and mapping functions for zone persistence.
// This package implements the repository pattern for the zone aggregate, handling
// the conversion between domain entities and database representations.
package zonerepo

import (
	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/core/domain/model/zone"

	"github.com/google/uuid"
)

// ZoneDTO represents the database structure for persisting zone aggregates.
// The center coordinate is split into nullable columns so flat-rate zones
// without a geofence can be stored.
type ZoneDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(255);not null"`
	CenterLat      *float64  `gorm:"type:double precision"`
	CenterLon      *float64  `gorm:"type:double precision"`
	RadiusKm       float64   `gorm:"type:double precision;not null"`
	DeliveryCharge float64   `gorm:"type:double precision;not null"`
	Active         bool      `gorm:"type:boolean;not null;index"`
}

// TableName specifies the database table name for zone entities.
// Overrides GORM's default naming convention to use "zones" instead of "zone_dtos".
func (ZoneDTO) TableName() string {
	return "zones"
}

// fromDomain converts a zone domain aggregate to its database representation.
func fromDomain(zone *zone.Zone) ZoneDTO {
	var centerLat, centerLon *float64
	if center := zone.Center(); center != nil {
		lat, lon := center.Latitude(), center.Longitude()
		centerLat, centerLon = &lat, &lon
	}

	return ZoneDTO{
		ID:             zone.ID().Bytes(),
		Name:           zone.Name(),
		CenterLat:      centerLat,
		CenterLon:      centerLon,
		RadiusKm:       zone.RadiusKm(),
		DeliveryCharge: zone.DeliveryCharge(),
		Active:         zone.IsActive(),
	}
}

// toDomain converts a database DTO to a zone domain aggregate using RestoreZone.
func toDomain(dto ZoneDTO) (*zone.Zone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var center *kernel.GeoPoint
	if dto.CenterLat != nil && dto.CenterLon != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.CenterLat, *dto.CenterLon)
		if pointErr != nil {
			return nil, pointErr
		}
		center = &point
	}

	return zone.RestoreZone(id, dto.Name, center, dto.RadiusKm, dto.DeliveryCharge, dto.Active)
}
