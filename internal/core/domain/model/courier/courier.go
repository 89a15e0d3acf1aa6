package courier

import (
	"errors"

	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/pkg/errs"
	"bistro/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a delivery agent in the system.
// It is an aggregate root that manages courier identity, the commission
// configuration used to settle completed deliveries, and the last known GPS
// position reported by the courier app.
//
// Key responsibilities:
//   - Managing courier identity (ID, name, phone)
//   - Holding the commission configuration read at delivery completion
//   - Tracking the last reported location for dispatching
//
// Business rules:
//   - Courier must have a valid UUID and a non-empty name
//   - The commission config is mutable by admin; changing it never affects
//     commissions already frozen onto delivered orders
//   - The last known location is optional; a courier that has never reported
//     a position can still take orders but ranks last during dispatch
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the human-readable name of the courier
	name string
	// phone is the contact number; optional
	phone string
	// commission describes how the courier is paid per delivery
	commission CommissionConfig
	// location is the last GPS position reported by the courier app; nil until first ping
	location *kernel.GeoPoint
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a new Courier with the specified parameters.
// This is the only way to create a valid Courier instance.
//
// Parameters:
//   - id: Unique identifier (must be valid UUID)
//   - name: Human-readable name (must be non-empty)
//   - phone: Contact number (may be empty)
//   - commission: Commission configuration (must be properly constructed)
//
// Returns the created courier or an aggregated validation error.
//
// Example:
//
//	cfg, _ := courier.NewCommissionConfig(courier.CommissionPercent, 10)
//	c, err := courier.NewCourier(kernel.NewUUID(), "Ravi Kumar", "+91-9800000000", cfg)
//	if err != nil {
//	    log.Fatal("Failed to create courier:", err)
//	}
func NewCourier(id kernel.UUID, name string, phone string, commission CommissionConfig) (*Courier, error) {
	courier := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setCommission(commission),
	); err != nil {
		return nil, err
	}

	courier.phone = phone
	return courier, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage,
// including the optional last known location. The restored courier behaves
// identically to one created through normal domain operations.
func RestoreCourier(
	id kernel.UUID,
	name string,
	phone string,
	commission CommissionConfig,
	location *kernel.GeoPoint,
) (*Courier, error) {
	courier, err := NewCourier(id, name, phone, commission)
	if err != nil {
		return nil, err
	}

	if location != nil {
		if locErr := location.Validate(); locErr != nil {
			return nil, locErr
		}
		courier.location = location
	}

	return courier, nil
}

// Validate checks if the Courier was properly constructed via NewCourier.
// The zero value of Courier is invalid and will fail this validation.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers for equality based on their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// ID returns the unique identifier of the courier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the human-readable name of the courier.
func (c *Courier) Name() string {
	return c.name
}

// Phone returns the courier's contact number. May be empty.
func (c *Courier) Phone() string {
	return c.phone
}

// CommissionConfig returns the courier's current commission configuration.
// Callers computing a settlement must snapshot the result at the moment of
// the delivered transition; the config may be edited by admin afterwards.
func (c *Courier) CommissionConfig() CommissionConfig {
	return c.commission
}

// LastKnownLocation returns the last GPS position reported by the courier,
// or nil if the courier has never reported one.
func (c *Courier) LastKnownLocation() *kernel.GeoPoint {
	return c.location
}

// SetCommissionConfig replaces the courier's commission configuration.
// The new config applies only to deliveries completed after this call;
// commissions already frozen onto orders are never recomputed.
func (c *Courier) SetCommissionConfig(commission CommissionConfig) error {
	return c.setCommission(commission)
}

// UpdateLocation records a GPS ping from the courier app.
func (c *Courier) UpdateLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = &location
	return nil
}

// setID validates and sets the courier's unique identifier.
func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

// setName validates and sets the courier's name.
func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

// setCommission validates and sets the commission configuration.
func (c *Courier) setCommission(commission CommissionConfig) error {
	if err := commission.Validate(); err != nil {
		return err
	}
	c.commission = commission
	return nil
}
