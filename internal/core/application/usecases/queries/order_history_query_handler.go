package queries

import (
	"context"
	"time"

	"pizzastore/internal/core/domain/model/identity"
	"pizzastore/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type StatusChangeEntry struct {
	From      order.Status
	To        order.Status
	ChangedBy string
	ChangedAt time.Time
}

type OrderHistoryQueryHandler struct {
	db     *gorm.DB
	policy identity.Policy
}

func NewOrderHistoryQueryHandler(db *gorm.DB, policy identity.Policy) OrderHistoryQueryHandler {
	return OrderHistoryQueryHandler{db: db, policy: policy}
}

func (h OrderHistoryQueryHandler) Handle(ctx context.Context, query OrderHistoryQuery) ([]StatusChangeEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if _, err := readableOrder(ctx, h.db, h.policy, query.caller, query.orderID); err != nil {
		return nil, err
	}

	var rows []struct {
		FromStatus string
		ToStatus   string
		ChangedBy  string
		ChangedAt  time.Time
	}
	err := h.db.WithContext(ctx).
		Raw(`SELECT from_status, to_status, changed_by, changed_at
			FROM order_status_history
			WHERE order_id = ?
			ORDER BY changed_at, id`, query.orderID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	history := make([]StatusChangeEntry, 0, len(rows))
	for _, row := range rows {
		from, parseErr := order.ParseStatus(row.FromStatus)
		if parseErr != nil {
			return nil, parseErr
		}
		to, parseErr := order.ParseStatus(row.ToStatus)
		if parseErr != nil {
			return nil, parseErr
		}
		history = append(history, StatusChangeEntry{
			From:      from,
			To:        to,
			ChangedBy: row.ChangedBy,
			ChangedAt: row.ChangedAt,
		})
	}

	return history, nil
}
