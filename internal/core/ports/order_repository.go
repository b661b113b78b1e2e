package ports

import (
	"context"

	"pizzastore/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are written once by Add; afterwards only their status moves, through
// UpdateStatus, with every move recorded by AddStatusChange.
type OrderRepository interface {
	// NextID returns the largest stored order id plus one, or order.FirstID
	// when no orders exist. Only meaningful inside the transaction that then
	// calls Add with the returned id.
	NextID(ctx context.Context) (int64, error)

	// Add persists the order header and all of its line items. An id already
	// taken by a concurrent placement yields an error wrapping
	// order.ErrOrderIDConflict.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get returns the order with its line items or an error wrapping
	// order.ErrOrderNotFound.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// UpdateStatus stores the order's current status only if the stored status
	// still equals expected. A lost race yields an errs.ConflictError.
	UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// AddStatusChange appends a history record.
	AddStatusChange(ctx context.Context, change order.StatusChange) error
}
