package order

import (
	"fmt"

	"bistro/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Created ──┬──> Assigned ──> Delivered
//	          │        │
//	          │        ├────┐
//	          └────────┼──> Cancelled
//	                   │
//	          (reassignment allowed while Assigned)
//
// Delivered and Cancelled are terminal states with no further transitions.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first placed.
	// Orders in this status are waiting to be assigned to a courier.
	Created

	// Assigned indicates the order has been assigned to a courier.
	// Orders can be reassigned while in this status.
	Assigned

	// Delivered indicates the order has been handed over to the customer.
	// The driver commission snapshot is frozen at this transition.
	// This is a final state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was abandoned before delivery.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Assigned:  "Assigned",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "Created",
		Assigned:  "Assigned",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Created, Assigned, Delivered, Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status allows no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateAssign checks if the status allows assignment without performing the transition.
//
// Valid statuses for assignment:
//   - Created (initial assignment)
//   - Assigned (reassignment)
func (s Status) ValidateAssign() error {
	if s != Created && s != Assigned {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveCourier validates the consistency between order status and courier assignment.
//
// Business Rules:
//   - Created orders must not have a courier assigned
//   - Assigned and Delivered orders must have a courier assigned
//   - Cancelled orders may or may not have one, depending on when cancellation happened
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s != Assigned && s != Delivered && s != Cancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()),
		)
	}

	if !courier && (s == Assigned || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}

	return nil
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Created -> Assigned (initial assignment)
//   - Assigned -> Assigned (reassignment to a different courier)
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}

	return Assigned, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Assigned -> Delivered
//
// The delivered transition fires at most once per order; Delivered is final,
// so a second Deliver on the same order fails here. Returns (0, error) if the
// transition is not allowed from the current status.
func (s Status) Deliver() (Status, error) {
	if s != Assigned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Created -> Cancelled
//   - Assigned -> Cancelled
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Cancel() (Status, error) {
	if s != Created && s != Assigned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}
