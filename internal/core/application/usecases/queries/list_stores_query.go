package queries

import (
	"context"
	"errors"

	"pizzastore/internal/core/domain/model/identity"
	"pizzastore/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListStoresQueryIsNotConstructed = errors.New(
	"ListStoresQuery must be created via NewListStoresQuery constructor",
)

type ListStoresQuery struct {
	caller identity.Identity

	guard guard.ConstructorGuard
}

func NewListStoresQuery(caller identity.Identity) (ListStoresQuery, error) {
	if err := caller.Validate(); err != nil {
		return ListStoresQuery{}, err
	}
	return ListStoresQuery{caller: caller, guard: guard.NewConstructorGuard()}, nil
}

func (q ListStoresQuery) Validate() error {
	return q.guard.Validate(ErrListStoresQueryIsNotConstructed)
}

type StoreSummary struct {
	StoreID     int64
	Address     string
	City        string
	State       string
	IsOpen      bool
	ReviewScore float64
}

type ListStoresQueryHandler struct {
	db     *gorm.DB
	policy identity.Policy
}

func NewListStoresQueryHandler(db *gorm.DB, policy identity.Policy) ListStoresQueryHandler {
	return ListStoresQueryHandler{db: db, policy: policy}
}

func (h ListStoresQueryHandler) Handle(ctx context.Context, query ListStoresQuery) ([]StoreSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Authorize(query.caller, identity.ActionBrowseCatalog); err != nil {
		return nil, err
	}

	stores := make([]StoreSummary, 0)
	err := h.db.WithContext(ctx).
		Raw(`SELECT store_id, address, city, state, is_open, review_score
			FROM stores
			ORDER BY store_id`).
		Scan(&stores).Error
	if err != nil {
		return nil, err
	}

	return stores, nil
}
