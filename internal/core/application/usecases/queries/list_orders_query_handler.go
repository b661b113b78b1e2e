package queries

import (
	"context"

	"pizzastore/internal/core/domain/model/identity"

	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db     *gorm.DB
	policy identity.Policy
}

func NewListOrdersQueryHandler(db *gorm.DB, policy identity.Policy) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db, policy: policy}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if h.policy.Allows(query.caller.Role(), identity.ActionViewAllOrders) {
		return queryOrderSummaries(ctx, h.db, orderSummaryColumns+orderRecency)
	}

	if err := h.policy.Authorize(query.caller, identity.ActionViewOwnOrders); err != nil {
		return nil, err
	}

	return queryOrderSummaries(ctx, h.db,
		orderSummaryColumns+` WHERE login = ?`+orderRecency,
		query.caller.Login().String(),
	)
}
