package queries

import (
	"errors"

	"pizzastore/internal/core/domain/model/identity"
	"pizzastore/internal/pkg/guard"
)

// DefaultRecentOrders is the page size used when none is given.
const DefaultRecentOrders = 5

var ErrRecentOrdersQueryIsNotConstructed = errors.New(
	"RecentOrdersQuery must be created via NewRecentOrdersQuery constructor",
)

// RecentOrdersQuery returns the caller's own n most recent orders, for every
// role. Staff who want everyone's orders use ListOrdersQuery.
type RecentOrdersQuery struct {
	caller identity.Identity
	limit  int

	guard guard.ConstructorGuard
}

// NewRecentOrdersQuery uses DefaultRecentOrders for a non-positive n.
func NewRecentOrdersQuery(caller identity.Identity, n int) (RecentOrdersQuery, error) {
	if err := caller.Validate(); err != nil {
		return RecentOrdersQuery{}, err
	}
	if n <= 0 {
		n = DefaultRecentOrders
	}
	return RecentOrdersQuery{caller: caller, limit: n, guard: guard.NewConstructorGuard()}, nil
}

func (q RecentOrdersQuery) Validate() error {
	return q.guard.Validate(ErrRecentOrdersQueryIsNotConstructed)
}

func (q RecentOrdersQuery) Limit() int {
	return q.limit
}
