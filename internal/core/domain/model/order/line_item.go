package order

import (
	"fmt"
	"strings"

	"pizzastore/internal/core/domain/model/kernel"
	"pizzastore/internal/pkg/errs"
)

// LineItem is one (item, quantity) pairing of an order, with the unit price
// the catalog had when the order was placed.
type LineItem struct {
	itemName  string
	quantity  int
	unitPrice kernel.Money
}

func NewLineItem(itemName string, quantity int, unitPrice kernel.Money) (LineItem, error) {
	itemName = strings.TrimSpace(itemName)
	if itemName == "" {
		return LineItem{}, errs.NewValueIsRequiredError("itemName")
	}
	if err := ValidateQuantity(quantity); err != nil {
		return LineItem{}, err
	}
	return LineItem{itemName: itemName, quantity: quantity, unitPrice: unitPrice}, nil
}

// ValidateQuantity rejects quantities below 1.
func ValidateQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%w: %d is less than 1", ErrInvalidQuantity, quantity),
		)
	}
	return nil
}

func (l LineItem) ItemName() string {
	return l.itemName
}

func (l LineItem) Quantity() int {
	return l.quantity
}

func (l LineItem) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Total is unit price times quantity.
func (l LineItem) Total() kernel.Money {
	return l.unitPrice.Times(l.quantity)
}
