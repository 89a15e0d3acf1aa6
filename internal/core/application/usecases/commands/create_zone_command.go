package commands

import (
	"errors"
	"fmt"

	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/pkg/guard"
)

var (
	ErrCreateZoneCommandIsNotConstructed = errors.New(
		"CreateZoneCommand must be created via NewCreateZoneCommand constructor",
	)
	ErrZoneNameIsRequired = errors.New("name is required")
	ErrRadiusIsInvalid    = errors.New("radiusKm must be greater than 0")
	ErrChargeIsInvalid    = errors.New("deliveryCharge must not be negative")
)

// CreateZoneCommand represents a request to configure a new delivery zone.
// The center is optional: a zone without one supports flat-rate ordering but
// never participates in geolocation matching.
type CreateZoneCommand struct { //nolint:recvcheck //using for validation
	zoneID         kernel.UUID
	name           string
	center         *kernel.GeoPoint
	radiusKm       float64
	deliveryCharge float64

	guard guard.ConstructorGuard
}

// NewCreateZoneCommand creates a command to configure a new delivery zone.
// Validates that the zone ID is valid, the name is not empty, the radius is
// positive and the delivery charge is not negative.
func NewCreateZoneCommand(
	zoneID kernel.UUID,
	name string,
	center *kernel.GeoPoint,
	radiusKm float64,
	deliveryCharge float64,
) (CreateZoneCommand, error) {
	zoneCommand := CreateZoneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		zoneCommand.setZoneID(zoneID),
		zoneCommand.setName(name),
		zoneCommand.setCenter(center),
		zoneCommand.setRadiusKm(radiusKm),
		zoneCommand.setDeliveryCharge(deliveryCharge),
	); err != nil {
		return CreateZoneCommand{}, err
	}

	return zoneCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateZoneCommand) Validate() error {
	return c.guard.Validate(ErrCreateZoneCommandIsNotConstructed)
}

// ZoneID returns the unique identifier for the zone.
func (c CreateZoneCommand) ZoneID() kernel.UUID {
	return c.zoneID
}

// Name returns the zone's display label.
func (c CreateZoneCommand) Name() string {
	return c.name
}

// Center returns the geofence center, or nil for flat-rate zones.
func (c CreateZoneCommand) Center() *kernel.GeoPoint {
	return c.center
}

// RadiusKm returns the service boundary radius in kilometers.
func (c CreateZoneCommand) RadiusKm() float64 {
	return c.radiusKm
}

// DeliveryCharge returns the delivery charge for the zone.
func (c CreateZoneCommand) DeliveryCharge() float64 {
	return c.deliveryCharge
}

func (c *CreateZoneCommand) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}

	c.zoneID = zoneID
	return nil
}

func (c *CreateZoneCommand) setName(name string) error {
	if name == "" {
		return ErrZoneNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateZoneCommand) setCenter(center *kernel.GeoPoint) error {
	if center == nil {
		return nil
	}
	if err := center.Validate(); err != nil {
		return err
	}

	c.center = center
	return nil
}

func (c *CreateZoneCommand) setRadiusKm(radiusKm float64) error {
	if radiusKm <= 0 {
		return fmt.Errorf("%w: got %g", ErrRadiusIsInvalid, radiusKm)
	}

	c.radiusKm = radiusKm
	return nil
}

func (c *CreateZoneCommand) setDeliveryCharge(deliveryCharge float64) error {
	if deliveryCharge < 0 {
		return fmt.Errorf("%w: got %g", ErrChargeIsInvalid, deliveryCharge)
	}

	c.deliveryCharge = deliveryCharge
	return nil
}
