package catalog

import (
	"errors"
	"fmt"
	"strings"

	"pizzastore/internal/core/domain/model/kernel"
	"pizzastore/internal/pkg/errs"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem")

// Item is a menu entry keyed by its name.
//
// The name never changes after creation. Price changes affect orders placed
// afterwards only, since every order line keeps its own unit price.
type Item struct {
	name          string
	itemType      ItemType
	price         kernel.Money
	description   string
	ingredients   string
	isConstructed bool
}

// NewItem creates a menu item.
//
// Parameters:
//   - name: unique, non-blank after trimming
//   - itemType: one of the ItemType values
//   - price: an already validated amount
//   - description, ingredients: free text, may be empty
//
// Example:
//
//	pepperoni, err := catalog.NewItem("Pepperoni", catalog.Entree,
//	    kernel.MustParseMoney("8.00"), "Classic pie", "cheese, pepperoni")
func NewItem(name string, itemType ItemType, price kernel.Money, description, ingredients string) (*Item, error) {
	item := &Item{
		description:   description,
		ingredients:   ingredients,
		price:         price,
		isConstructed: true,
	}
	if err := errors.Join(
		item.setName(name),
		item.setType(itemType),
	); err != nil {
		return nil, err
	}
	return item, nil
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) Type() ItemType {
	return i.itemType
}

func (i *Item) Price() kernel.Money {
	return i.price
}

func (i *Item) Description() string {
	return i.description
}

func (i *Item) Ingredients() string {
	return i.ingredients
}

// Update sets one field from its raw text value. Type and price are parsed
// and validated; the item is left unchanged on error.
func (i *Item) Update(field ItemField, value string) error {
	switch field {
	case IngredientsField:
		i.ingredients = value
	case DescriptionField:
		i.description = value
	case TypeField:
		itemType, err := ParseItemType(value)
		if err != nil {
			return err
		}
		i.itemType = itemType
	case PriceField:
		price, err := kernel.ParseMoney(value)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%w: %w", ErrInvalidPrice, err))
		}
		i.price = price
	default:
		return errs.NewValueIsInvalidErrorWithCause("field", fmt.Errorf("%w: %d", ErrInvalidField, field))
	}
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("itemName")
	}
	i.name = name
	return nil
}

func (i *Item) setType(itemType ItemType) error {
	if err := itemType.Validate(); err != nil {
		return err
	}
	i.itemType = itemType
	return nil
}

// ItemField names a manager-editable item attribute.
type ItemField int

const (
	UnknownItemField ItemField = iota
	IngredientsField
	TypeField
	PriceField
	DescriptionField
)

func getItemFieldStrings() map[ItemField]string {
	return map[ItemField]string{
		IngredientsField: "ingredients",
		TypeField:        "type",
		PriceField:       "price",
		DescriptionField: "description",
	}
}

func ParseItemField(raw string) (ItemField, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	for f, name := range getItemFieldStrings() {
		if name == normalized {
			return f, nil
		}
	}
	return UnknownItemField, errs.NewValueIsInvalidErrorWithCause("field", fmt.Errorf("%w: %q", ErrInvalidField, raw))
}

func (f ItemField) String() string {
	if s, ok := getItemFieldStrings()[f]; ok {
		return s
	}
	return "unknown"
}
