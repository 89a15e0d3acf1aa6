package services

import (
	"errors"
	"math"

	"bistro/internal/core/domain/model/courier"
	"bistro/internal/core/domain/model/order"
)

// ErrCourierNotFound is returned when no courier is available for order dispatch.
var ErrCourierNotFound = errors.New("courier not found")

// OrderDispatcher is a domain service responsible for finding and assigning
// the best courier for a delivery order based on proximity.
//
// Key responsibilities:
//   - Validating orders before dispatch
//   - Ranking couriers by distance from their last known location to the
//     order's delivery point
//   - Executing the assignment on the order aggregate
//
// Business rules:
//   - Orders must be valid and assignable before dispatch
//   - Couriers that have never reported a location stay eligible but rank
//     behind every courier with a known position
//   - Ties are broken by courier ID string ascending so dispatch is
//     deterministic
type OrderDispatcher struct{}

// NewOrderDispatcher creates a new OrderDispatcher instance.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Dispatch finds the nearest courier for a given order and assigns it.
//
// Parameters:
//   - order: The order to be dispatched (must be valid and assignable)
//   - couriers: Slice of available couriers to consider
//
// Returns:
//   - *courier.Courier: The courier assigned to the order
//   - error: ErrCourierNotFound if no courier exists, or validation/assignment errors
func (d OrderDispatcher) Dispatch(order *order.Order, couriers []*courier.Courier) (*courier.Courier, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}

	if err := order.ValidateAssign(); err != nil {
		return nil, err
	}

	bestCourier, err := d.findNearestCourier(order, couriers)
	if err != nil {
		return nil, err
	}

	if err = order.Assign(bestCourier.ID()); err != nil {
		return nil, err
	}

	return bestCourier, nil
}

// findNearestCourier ranks the provided couriers by distance to the order's
// delivery point and returns the closest one. Couriers without a last known
// location are ranked behind all located couriers.
func (d OrderDispatcher) findNearestCourier(order *order.Order, couriers []*courier.Courier) (*courier.Courier, error) {
	var (
		bestCourier    *courier.Courier
		bestDistanceKm = math.MaxFloat64
	)

	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}

		distanceKm := math.MaxFloat64
		if location := c.LastKnownLocation(); location != nil {
			km, err := location.DistanceKm(order.DeliveryPoint())
			if err != nil {
				return nil, err
			}
			distanceKm = km
		}

		switch {
		case bestCourier == nil:
			bestCourier, bestDistanceKm = c, distanceKm
		case distanceKm < bestDistanceKm:
			bestCourier, bestDistanceKm = c, distanceKm
		case distanceKm == bestDistanceKm && c.ID().String() < bestCourier.ID().String():
			bestCourier = c
		}
	}

	if bestCourier == nil {
		return nil, ErrCourierNotFound
	}

	return bestCourier, nil
}
