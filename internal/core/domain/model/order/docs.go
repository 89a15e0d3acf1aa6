// Package order implements the order aggregate and its lifecycle state machine.
//
// An order moves from Created through Assigned to Delivered (or Cancelled).
// The transition into Delivered is the settlement point: the courier's
// commission is computed once, from the commission config attached to the
// courier at that instant, and frozen onto the order. Later edits to the
// courier's config never change settled orders.
package order
