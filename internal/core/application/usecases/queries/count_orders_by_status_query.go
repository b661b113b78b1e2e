package queries

import (
	"context"
	"errors"

	"pizzastore/internal/core/domain/model/identity"
	"pizzastore/internal/core/domain/model/order"
	"pizzastore/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrCountOrdersByStatusQueryIsNotConstructed = errors.New(
	"CountOrdersByStatusQuery must be created via a NewCountOrdersByStatusQuery constructor",
)

// CountOrdersByStatusQuery counts all orders per status. A caller-scoped
// query requires ActionViewAllOrders; the unscoped form is for internal jobs.
type CountOrdersByStatusQuery struct {
	caller   identity.Identity
	unscoped bool

	guard guard.ConstructorGuard
}

func NewCountOrdersByStatusQuery(caller identity.Identity) (CountOrdersByStatusQuery, error) {
	if err := caller.Validate(); err != nil {
		return CountOrdersByStatusQuery{}, err
	}
	return CountOrdersByStatusQuery{caller: caller, guard: guard.NewConstructorGuard()}, nil
}

// NewUnscopedCountOrdersByStatusQuery skips authorization.
func NewUnscopedCountOrdersByStatusQuery() CountOrdersByStatusQuery {
	return CountOrdersByStatusQuery{unscoped: true, guard: guard.NewConstructorGuard()}
}

func (q CountOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrCountOrdersByStatusQueryIsNotConstructed)
}

type CountOrdersByStatusQueryHandler struct {
	db     *gorm.DB
	policy identity.Policy
}

func NewCountOrdersByStatusQueryHandler(db *gorm.DB, policy identity.Policy) CountOrdersByStatusQueryHandler {
	return CountOrdersByStatusQueryHandler{db: db, policy: policy}
}

// Handle returns an entry for every status, zero when no order has it.
func (h CountOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query CountOrdersByStatusQuery,
) (map[order.Status]int64, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.unscoped {
		if err := h.policy.Authorize(query.caller, identity.ActionViewAllOrders); err != nil {
			return nil, err
		}
	}

	var rows []struct {
		OrderStatus string
		Total       int64
	}
	err := h.db.WithContext(ctx).
		Raw("SELECT order_status, COUNT(*) AS total FROM orders GROUP BY order_status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[order.Status]int64, len(order.Statuses()))
	for _, status := range order.Statuses() {
		counts[status] = 0
	}
	for _, row := range rows {
		status, parseErr := order.ParseStatus(row.OrderStatus)
		if parseErr != nil {
			return nil, parseErr
		}
		counts[status] = row.Total
	}

	return counts, nil
}
