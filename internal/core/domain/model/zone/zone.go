package zone

import (
	"errors"
	"fmt"

	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/pkg/errs"
	"bistro/internal/pkg/guard"
)

// Domain errors for zone operations.
var (
	// ErrNameIsRequired is returned when attempting to create a zone without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrZoneIsNotConstructed is returned when using an improperly initialized Zone.
	ErrZoneIsNotConstructed = errors.New("Zone must be created via NewZone constructor")
)

// Zone represents a circular delivery service area.
// It is an aggregate root managed by the admin back office: created, edited and
// deactivated there, and read-only to zone resolution.
//
// A zone may exist without a center coordinate. Such zones support flat-rate
// ordering but never participate in geolocation matching, whatever their
// active flag says.
//
// Business rules:
//   - Zone must have a valid UUID and a non-empty name
//   - Radius must be positive
//   - Delivery charge must be non-negative
//   - New zones start active; inactive zones are excluded from matching
type Zone struct {
	// id uniquely identifies the zone
	id kernel.UUID
	// name is the display label shown to customers and admins
	name string
	// center is the geofence center; nil for flat-rate zones without coordinates
	center *kernel.GeoPoint
	// radiusKm is the service boundary radius in kilometers
	radiusKm float64
	// deliveryCharge is the currency amount charged for deliveries into this zone
	deliveryCharge float64
	// active marks whether the zone participates in matching
	active bool
	// guard ensures the zone was properly constructed
	guard guard.ConstructorGuard
}

// NewZone creates a new active Zone with the specified parameters.
// The center may be nil for zones that only support flat-rate ordering.
//
// Parameters:
//   - id: Unique identifier (must be valid UUID)
//   - name: Display label (must be non-empty)
//   - center: Geofence center coordinate, or nil
//   - radiusKm: Service boundary radius in kilometers (must be positive)
//   - deliveryCharge: Currency amount (must be non-negative)
//
// Returns the created zone or an aggregated validation error.
func NewZone(
	id kernel.UUID,
	name string,
	center *kernel.GeoPoint,
	radiusKm float64,
	deliveryCharge float64,
) (*Zone, error) {
	zone := &Zone{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		zone.setID(id),
		zone.setName(name),
		zone.setCenter(center),
		zone.setRadiusKm(radiusKm),
		zone.setDeliveryCharge(deliveryCharge),
	); err != nil {
		return nil, err
	}

	return zone, nil
}

// RestoreZone reconstructs a Zone aggregate from persistent storage,
// including its activation state. The restored zone behaves identically to
// one created through normal domain operations.
func RestoreZone(
	id kernel.UUID,
	name string,
	center *kernel.GeoPoint,
	radiusKm float64,
	deliveryCharge float64,
	active bool,
) (*Zone, error) {
	zone, err := NewZone(id, name, center, radiusKm, deliveryCharge)
	if err != nil {
		return nil, err
	}

	zone.active = active
	return zone, nil
}

// Validate checks if the Zone was properly constructed via NewZone.
func (z *Zone) Validate() error {
	if z == nil {
		return ErrZoneIsNotConstructed
	}
	return z.guard.Validate(ErrZoneIsNotConstructed)
}

// IsEqual compares two zones by their unique identifiers.
func (z *Zone) IsEqual(other *Zone) bool {
	return other != nil && z.id.IsEqual(other.id)
}

// ID returns the zone's unique identifier.
func (z *Zone) ID() kernel.UUID {
	return z.id
}

// Name returns the zone's display label.
func (z *Zone) Name() string {
	return z.name
}

// Center returns the geofence center, or nil for flat-rate zones.
func (z *Zone) Center() *kernel.GeoPoint {
	return z.center
}

// HasCenter reports whether the zone has a geofence center and can therefore
// participate in geolocation matching.
func (z *Zone) HasCenter() bool {
	return z.center != nil
}

// RadiusKm returns the service boundary radius in kilometers.
func (z *Zone) RadiusKm() float64 {
	return z.radiusKm
}

// DeliveryCharge returns the delivery charge for this zone.
func (z *Zone) DeliveryCharge() float64 {
	return z.deliveryCharge
}

// IsActive reports whether the zone participates in matching.
func (z *Zone) IsActive() bool {
	return z.active
}

// Activate marks the zone as active.
func (z *Zone) Activate() {
	z.active = true
}

// Deactivate excludes the zone from matching without deleting it.
// Deactivated zones keep their configuration and can be reactivated later.
func (z *Zone) Deactivate() {
	z.active = false
}

// setID validates and sets the zone's unique identifier.
func (z *Zone) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	z.id = id
	return nil
}

// setName validates and sets the zone's display label.
func (z *Zone) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	z.name = name
	return nil
}

// setCenter validates and sets the optional geofence center.
func (z *Zone) setCenter(center *kernel.GeoPoint) error {
	if center == nil {
		return nil
	}
	if err := center.Validate(); err != nil {
		return err
	}
	z.center = center
	return nil
}

// setRadiusKm validates and sets the radius. Radius must be positive.
func (z *Zone) setRadiusKm(radiusKm float64) error {
	if radiusKm <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("radiusKm",
			fmt.Errorf("%g is not greater than 0", radiusKm))
	}
	z.radiusKm = radiusKm
	return nil
}

// setDeliveryCharge validates and sets the delivery charge. Charge must be non-negative.
func (z *Zone) setDeliveryCharge(deliveryCharge float64) error {
	if deliveryCharge < 0 {
		return errs.NewValueIsInvalidErrorWithCause("deliveryCharge",
			fmt.Errorf("%g is negative", deliveryCharge))
	}
	z.deliveryCharge = deliveryCharge
	return nil
}
