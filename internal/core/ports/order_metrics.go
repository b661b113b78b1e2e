package ports

import "pizzastore/internal/core/domain/model/order"

// OrderMetrics receives workflow measurements. Implementations must be safe
// for concurrent use and must not block.
type OrderMetrics interface {
	// OrderPlaced counts a committed placement.
	OrderPlaced(storeID int64)

	// OrderIDConflict counts an id allocation lost to a concurrent placement.
	OrderIDConflict()

	// StatusTransitioned counts a committed status change.
	StatusTransitioned(from, to order.Status)

	// SetOrdersByStatus replaces the current per-status snapshot. Statuses
	// missing from counts are reported as zero.
	SetOrdersByStatus(counts map[order.Status]int64)
}
