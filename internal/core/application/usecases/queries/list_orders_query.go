package queries

import (
	"errors"

	"pizzastore/internal/core/domain/model/identity"
	"pizzastore/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists orders visible to the caller: every order for staff,
// their own for customers. Newest first in both cases.
type ListOrdersQuery struct {
	caller identity.Identity

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(caller identity.Identity) (ListOrdersQuery, error) {
	if err := caller.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{caller: caller, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}
