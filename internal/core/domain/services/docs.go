// Package services provides domain services that work across aggregates of
// the ordering workflow.
//
// The package includes:
//   - OrderPricer: resolves requested line items against the catalog and
//     snapshots each item's current price into the order lines
package services
