package order

import (
	"errors"
	"fmt"

	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/pkg/errs"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrCustomerNameIsRequired is returned when attempting to create an order
	// without a customer name.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customerName")
	// ErrCommissionAlreadySettled is returned when attempting to overwrite an
	// already frozen driver commission snapshot.
	ErrCommissionAlreadySettled = errors.New("driver commission is already settled for this order")
)

// Order represents a customer delivery order. It is the aggregate root that
// manages the order lifecycle from creation through courier assignment to
// delivery, and carries the frozen driver commission snapshot.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty customer name
//   - Must have a valid delivery point
//   - Total and delivery charge must be non-negative
//   - Status transitions follow the Status state machine
//   - The driver commission is written exactly once, at the transition into
//     Delivered, and is immutable thereafter
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerName is the name the order was placed under
	customerName string

	// deliveryPoint is the customer's GPS coordinate
	deliveryPoint kernel.GeoPoint

	// zoneID references the delivery zone resolved at creation; nil when the
	// order was accepted without geofence coverage
	zoneID *kernel.UUID

	// total is the order total in currency units
	total float64

	// deliveryCharge is the charge stamped from the resolved zone
	deliveryCharge float64

	// courierID is the assigned courier's ID (nil if unassigned)
	courierID *kernel.UUID

	// driverCommission is the commission frozen at the delivered transition;
	// nil until delivery, and nil forever when no courier was assigned then
	driverCommission *float64

	// status represents the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a valid Order, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Unique identifier (must be valid UUID)
//   - customerName: Name the order is placed under (must be non-empty)
//   - deliveryPoint: Customer GPS coordinate (must be properly constructed)
//   - total: Order total (must be non-negative)
//   - zoneID: Resolved delivery zone, or nil
//   - deliveryCharge: Zone delivery charge (must be non-negative)
//
// The constructor validates all inputs and creates the order in Created
// status with no courier assigned and no commission settled.
func NewOrder(
	id kernel.UUID,
	customerName string,
	deliveryPoint kernel.GeoPoint,
	total float64,
	zoneID *kernel.UUID,
	deliveryCharge float64,
) (*Order, error) {
	order := &Order{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerName(customerName),
		order.setDeliveryPoint(deliveryPoint),
		order.setTotal(total),
		order.setZoneID(zoneID),
		order.setDeliveryCharge(deliveryCharge),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// including status, courier assignment and the settled commission snapshot.
// Status/courier consistency is revalidated so corrupt rows cannot become
// live aggregates.
func RestoreOrder(
	id kernel.UUID,
	customerName string,
	deliveryPoint kernel.GeoPoint,
	total float64,
	zoneID *kernel.UUID,
	deliveryCharge float64,
	status Status,
	courierID *kernel.UUID,
	driverCommission *float64,
) (*Order, error) {
	order, err := NewOrder(id, customerName, deliveryPoint, total, zoneID, deliveryCharge)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if err = status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return nil, err
	}

	if courierID != nil {
		if idErr := courierID.Validate(); idErr != nil {
			return nil, idErr
		}
	}

	if driverCommission != nil && status != Delivered {
		return nil, errs.NewValueIsInvalidErrorWithCause("driverCommission",
			fmt.Errorf("commission cannot be settled in %s status", status))
	}

	order.status = status
	order.courierID = courierID
	order.driverCommission = driverCommission
	return order, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerName returns the name the order was placed under.
func (o *Order) CustomerName() string {
	return o.customerName
}

// DeliveryPoint returns the customer's GPS coordinate.
func (o *Order) DeliveryPoint() kernel.GeoPoint {
	return o.deliveryPoint
}

// Zone returns the resolved delivery zone ID, or nil.
func (o *Order) Zone() *kernel.UUID {
	return o.zoneID
}

// Total returns the order total.
func (o *Order) Total() float64 {
	return o.total
}

// DeliveryCharge returns the delivery charge stamped from the resolved zone.
func (o *Order) DeliveryCharge() float64 {
	return o.deliveryCharge
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Courier returns the assigned courier's ID.
// Returns nil if no courier is assigned.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// DriverCommission returns the commission frozen at the delivered transition,
// or nil if the order has not been delivered or had no courier at that instant.
func (o *Order) DriverCommission() *float64 {
	return o.driverCommission
}

// ValidateAssign checks whether the order can currently be assigned.
func (o *Order) ValidateAssign() error {
	return o.status.ValidateAssign()
}

// Assign assigns the order to a courier and updates the status to Assigned.
//
// Business rules:
//   - The courier ID must be valid
//   - The order must be in Created or Assigned status
//   - Reassignment is allowed (from Assigned to Assigned)
func (o *Order) Assign(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	return nil
}

// Deliver marks the order as delivered and freezes the driver commission
// snapshot. The commission is computed by the caller (the settlement
// calculator) from the courier's commission config as it stands at this
// instant; passing nil records that no commission applies.
//
// Business rules:
//   - The order must be in Assigned status; Delivered is final, so the
//     transition - and with it the snapshot write - fires at most once
//   - A snapshot that is somehow already present is never overwritten
//
// After successful delivery, later changes to the courier's commission
// config have no effect on this order.
func (o *Order) Deliver(driverCommission *float64) error {
	if o.driverCommission != nil {
		return ErrCommissionAlreadySettled
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverCommission = driverCommission
	return nil
}

// Cancel marks the order as cancelled.
//
// Business rules:
//   - The order must be in Created or Assigned status
//   - Cancelled is a final state with no further transitions
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerName validates and sets the customer name.
func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}
	o.customerName = customerName
	return nil
}

// setDeliveryPoint validates and sets the delivery coordinate.
func (o *Order) setDeliveryPoint(deliveryPoint kernel.GeoPoint) error {
	if err := deliveryPoint.Validate(); err != nil {
		return err
	}
	o.deliveryPoint = deliveryPoint
	return nil
}

// setTotal validates and sets the order total. Total must be non-negative.
func (o *Order) setTotal(total float64) error {
	if total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("%g is negative", total))
	}
	o.total = total
	return nil
}

// setZoneID validates and sets the optional resolved zone reference.
func (o *Order) setZoneID(zoneID *kernel.UUID) error {
	if zoneID == nil {
		return nil
	}
	if err := zoneID.Validate(); err != nil {
		return err
	}
	o.zoneID = zoneID
	return nil
}

// setDeliveryCharge validates and sets the delivery charge. Charge must be non-negative.
func (o *Order) setDeliveryCharge(deliveryCharge float64) error {
	if deliveryCharge < 0 {
		return errs.NewValueIsInvalidErrorWithCause("deliveryCharge",
			fmt.Errorf("%g is negative", deliveryCharge))
	}
	o.deliveryCharge = deliveryCharge
	return nil
}
