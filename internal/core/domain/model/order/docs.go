// Package order provides the Order aggregate, its line items and the status
// state machine.
//
// Key business rules:
//   - An order has at least one line item and every quantity is at least 1
//   - totalPrice is the sum of unit price times quantity, computed once at creation
//   - Line items and totalPrice never change after creation
//   - Order identifiers start at FirstID and grow by one
//   - Status moves forward Pending -> In Progress -> Out for Delivery -> Completed,
//     or to Canceled from any non-terminal status
//   - Completed and Canceled are terminal
package order
