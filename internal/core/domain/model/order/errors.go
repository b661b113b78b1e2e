package order

import "errors"

var (
	ErrEmptyOrder             = errors.New("order must contain at least one line item")
	ErrInvalidQuantity        = errors.New("quantity must be a positive integer")
	ErrOrderNotFound          = errors.New("order not found")
	ErrInvalidStatus          = errors.New("status must be one of Pending, In Progress, Out for Delivery, Completed, Canceled")
	ErrTransitionIsNotAllowed = errors.New("status transition is not allowed")
	ErrOrderIDConflict        = errors.New("order id was taken by a concurrent placement")
)
