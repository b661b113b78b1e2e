package queries

import (
	"context"

	"pizzastore/internal/core/domain/model/identity"

	"gorm.io/gorm"
)

type RecentOrdersQueryHandler struct {
	db     *gorm.DB
	policy identity.Policy
}

func NewRecentOrdersQueryHandler(db *gorm.DB, policy identity.Policy) RecentOrdersQueryHandler {
	return RecentOrdersQueryHandler{db: db, policy: policy}
}

func (h RecentOrdersQueryHandler) Handle(ctx context.Context, query RecentOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Authorize(query.caller, identity.ActionViewOwnOrders); err != nil {
		return nil, err
	}

	return queryOrderSummaries(ctx, h.db,
		orderSummaryColumns+` WHERE login = ?`+orderRecency+` LIMIT ?`,
		query.caller.Login().String(), query.limit,
	)
}
