package queries

import (
	"context"

	"pizzastore/internal/core/domain/model/identity"
	"pizzastore/internal/core/domain/model/kernel"
	"pizzastore/internal/core/domain/model/order"
	"pizzastore/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderDetails is an order header together with its line items in the
// order they were placed.
type OrderDetails struct {
	OrderSummary
	LineItems []OrderLine
}

type OrderLine struct {
	ItemName  string
	Quantity  int
	UnitPrice kernel.Money
	Total     kernel.Money
}

type GetOrderQueryHandler struct {
	db     *gorm.DB
	policy identity.Policy
}

func NewGetOrderQueryHandler(db *gorm.DB, policy identity.Policy) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, policy: policy}
}

// Handle reports a missing order as NotFound before ownership is checked.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return OrderDetails{}, err
	}

	summary, err := readableOrder(ctx, h.db, h.policy, query.caller, query.orderID)
	if err != nil {
		return OrderDetails{}, err
	}

	var rows []struct {
		ItemName  string
		Quantity  int
		UnitPrice decimal.Decimal
	}
	err = h.db.WithContext(ctx).
		Raw(`SELECT item_name, quantity, unit_price
			FROM order_line_items
			WHERE order_id = ?
			ORDER BY line_no`, query.orderID).
		Scan(&rows).Error
	if err != nil {
		return OrderDetails{}, err
	}

	details := OrderDetails{OrderSummary: summary, LineItems: make([]OrderLine, 0, len(rows))}
	for _, row := range rows {
		unitPrice, priceErr := kernel.NewMoney(row.UnitPrice)
		if priceErr != nil {
			return OrderDetails{}, priceErr
		}
		details.LineItems = append(details.LineItems, OrderLine{
			ItemName:  row.ItemName,
			Quantity:  row.Quantity,
			UnitPrice: unitPrice,
			Total:     unitPrice.Times(row.Quantity),
		})
	}

	return details, nil
}

// readableOrder loads the order header and applies the order-read rule.
func readableOrder(
	ctx context.Context,
	db *gorm.DB,
	policy identity.Policy,
	caller identity.Identity,
	orderID int64,
) (OrderSummary, error) {
	summaries, err := queryOrderSummaries(ctx, db, orderSummaryColumns+` WHERE order_id = ?`, orderID)
	if err != nil {
		return OrderSummary{}, err
	}
	if len(summaries) == 0 {
		return OrderSummary{}, errs.NewObjectNotFoundErrorWithCause("orderID", orderID, order.ErrOrderNotFound)
	}
	summary := summaries[0]

	owner, err := kernel.NewLogin(summary.Login)
	if err != nil {
		return OrderSummary{}, err
	}
	if err = policy.AuthorizeOrderRead(caller, owner); err != nil {
		return OrderSummary{}, err
	}

	return summary, nil
}
