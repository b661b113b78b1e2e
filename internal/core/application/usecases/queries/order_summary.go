package queries

import (
	"context"
	"database/sql"
	"time"

	"pizzastore/internal/core/domain/model/kernel"
	"pizzastore/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderSummary is an order header as listed to callers.
type OrderSummary struct {
	OrderID    int64
	Login      string
	StoreID    int64
	TotalPrice kernel.Money
	Status     order.Status
	CreatedAt  time.Time
}

const orderSummaryColumns = `
	SELECT
		order_id,
		login,
		store_id,
		total_price,
		order_status,
		order_timestamp
	FROM orders`

// orderRecency is newest first; the id breaks ties between equal timestamps.
const orderRecency = ` ORDER BY order_timestamp DESC, order_id DESC`

func queryOrderSummaries(ctx context.Context, db *gorm.DB, sqlText string, args ...any) ([]OrderSummary, error) {
	rows, err := db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]OrderSummary, 0)
	for rows.Next() {
		summary, scanErr := scanOrderSummary(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		summaries = append(summaries, summary)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

func scanOrderSummary(rows *sql.Rows) (OrderSummary, error) {
	var (
		summary OrderSummary
		total   decimal.Decimal
		status  string
	)
	if err := rows.Scan(
		&summary.OrderID,
		&summary.Login,
		&summary.StoreID,
		&total,
		&status,
		&summary.CreatedAt,
	); err != nil {
		return OrderSummary{}, err
	}

	money, err := kernel.NewMoney(total)
	if err != nil {
		return OrderSummary{}, err
	}
	summary.TotalPrice = money

	if summary.Status, err = order.ParseStatus(status); err != nil {
		return OrderSummary{}, err
	}

	return summary, nil
}
