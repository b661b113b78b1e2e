package queries

import (
	"errors"

	"pizzastore/internal/core/domain/model/identity"
	"pizzastore/internal/core/domain/model/order"
	"pizzastore/internal/pkg/errs"
	"pizzastore/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

type GetOrderQuery struct {
	caller  identity.Identity
	orderID int64

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(caller identity.Identity, orderID int64) (GetOrderQuery, error) {
	if err := caller.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	if orderID < order.FirstID {
		return GetOrderQuery{}, errs.NewObjectNotFoundErrorWithCause("orderID", orderID, order.ErrOrderNotFound)
	}
	return GetOrderQuery{caller: caller, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}
