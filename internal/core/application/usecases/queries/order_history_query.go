package queries

import (
	"errors"

	"pizzastore/internal/core/domain/model/identity"
	"pizzastore/internal/core/domain/model/order"
	"pizzastore/internal/pkg/errs"
	"pizzastore/internal/pkg/guard"
)

var ErrOrderHistoryQueryIsNotConstructed = errors.New(
	"OrderHistoryQuery must be created via NewOrderHistoryQuery constructor",
)

// OrderHistoryQuery lists the status changes of one order, oldest first.
// Read access is the same as for GetOrderQuery.
type OrderHistoryQuery struct {
	caller  identity.Identity
	orderID int64

	guard guard.ConstructorGuard
}

func NewOrderHistoryQuery(caller identity.Identity, orderID int64) (OrderHistoryQuery, error) {
	if err := caller.Validate(); err != nil {
		return OrderHistoryQuery{}, err
	}
	if orderID < order.FirstID {
		return OrderHistoryQuery{}, errs.NewObjectNotFoundErrorWithCause("orderID", orderID, order.ErrOrderNotFound)
	}
	return OrderHistoryQuery{caller: caller, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q OrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrOrderHistoryQueryIsNotConstructed)
}
