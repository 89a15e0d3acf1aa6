// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the delivery back office. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - ZoneResolver: Matches customer coordinates against configured delivery zones
//   - SettlementCalculator: Computes driver commissions and amounts due
//   - OrderDispatcher: Finds and assigns the nearest courier to an order
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
