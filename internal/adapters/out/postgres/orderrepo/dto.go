// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Zone, courier and the settled commission are nullable: an order may be
// accepted without zone coverage, starts unassigned, and carries a commission
// only after the delivered transition froze one.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerName     string     `gorm:"type:varchar(255);not null"`
	DeliveryLat      float64    `gorm:"type:double precision;not null"`
	DeliveryLon      float64    `gorm:"type:double precision;not null"`
	ZoneID           *uuid.UUID `gorm:"type:uuid;index"`
	Total            float64    `gorm:"type:double precision;not null"`
	DeliveryCharge   float64    `gorm:"type:double precision;not null"`
	CourierID        *uuid.UUID `gorm:"type:uuid;index"`
	DriverCommission *float64   `gorm:"type:double precision"`
	Status           int        `gorm:"type:smallint;not null;index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders" instead of "order_dtos".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var zoneID, courierID *uuid.UUID
	if aggregate.Zone() != nil {
		raw := aggregate.Zone().Bytes()
		zoneID = &raw
	}
	if aggregate.Courier() != nil {
		raw := aggregate.Courier().Bytes()
		courierID = &raw
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		CustomerName:     aggregate.CustomerName(),
		DeliveryLat:      aggregate.DeliveryPoint().Latitude(),
		DeliveryLon:      aggregate.DeliveryPoint().Longitude(),
		ZoneID:           zoneID,
		Total:            aggregate.Total(),
		DeliveryCharge:   aggregate.DeliveryCharge(),
		CourierID:        courierID,
		DriverCommission: aggregate.DriverCommission(),
		Status:           int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	deliveryPoint, err := kernel.NewGeoPoint(dto.DeliveryLat, dto.DeliveryLon)
	if err != nil {
		return nil, err
	}

	var zoneID *kernel.UUID
	if dto.ZoneID != nil {
		zID, zoneErr := kernel.UUIDFromBytes((*dto.ZoneID)[:])
		if zoneErr != nil {
			return nil, zoneErr
		}
		zoneID = &zID
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	return order.RestoreOrder(
		id,
		dto.CustomerName,
		deliveryPoint,
		dto.Total,
		zoneID,
		dto.DeliveryCharge,
		order.Status(dto.Status),
		courierID,
		dto.DriverCommission,
	)
}
