package services

import (
	"errors"
	"strings"

	"pizzastore/internal/core/domain/model/catalog"
	"pizzastore/internal/core/domain/model/order"
	"pizzastore/internal/pkg/errs"
)

// LineRequest is one requested (item, quantity) pair before pricing.
type LineRequest struct {
	ItemName string
	Quantity int
}

// OrderPricer turns line requests into priced order lines.
//
// Business rules:
//   - At least one line is requested
//   - Every item name resolves to a catalog item, matched exactly after trimming
//   - Every quantity is at least 1
//   - The unit price is the catalog price at the moment of pricing
//
// Example usage:
//
//	pricer := services.NewOrderPricer()
//	lines, err := pricer.Price(requests, itemsByName)
//	if errors.Is(err, catalog.ErrItemNotFound) {
//	    // one of the requested items does not exist
//	}
type OrderPricer struct{}

func NewOrderPricer() OrderPricer {
	return OrderPricer{}
}

// Price returns lines in request order. The first unknown item is reported by name.
func (OrderPricer) Price(requests []LineRequest, items map[string]*catalog.Item) ([]order.LineItem, error) {
	if len(requests) == 0 {
		return nil, errs.NewValueIsRequiredErrorWithCause("lineItems", order.ErrEmptyOrder)
	}

	lines := make([]order.LineItem, 0, len(requests))
	for _, req := range requests {
		name := strings.TrimSpace(req.ItemName)
		item, ok := items[name]
		if !ok || item == nil {
			return nil, errs.NewObjectNotFoundErrorWithCause("itemName", name, catalog.ErrItemNotFound)
		}
		if err := item.Validate(); err != nil {
			return nil, err
		}

		line, err := order.NewLineItem(item.Name(), req.Quantity, item.Price())
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// ItemNames returns the distinct trimmed item names of requests, in first-seen order.
func ItemNames(requests []LineRequest) []string {
	seen := make(map[string]struct{}, len(requests))
	names := make([]string, 0, len(requests))
	for _, req := range requests {
		name := strings.TrimSpace(req.ItemName)
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// ValidateRequests checks shape only: non-empty, named items, positive quantities.
// Catalog resolution happens in Price.
func ValidateRequests(requests []LineRequest) error {
	if len(requests) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("lineItems", order.ErrEmptyOrder)
	}
	var all []error
	for _, req := range requests {
		if strings.TrimSpace(req.ItemName) == "" {
			all = append(all, errs.NewValueIsRequiredError("itemName"))
		}
		all = append(all, order.ValidateQuantity(req.Quantity))
	}
	return errors.Join(all...)
}
