package queries

import (
	"errors"
	"fmt"
	"strings"

	"pizzastore/internal/core/domain/model/catalog"
	"pizzastore/internal/core/domain/model/identity"
	"pizzastore/internal/core/domain/model/kernel"
	"pizzastore/internal/pkg/errs"
	"pizzastore/internal/pkg/guard"
)

var (
	ErrBrowseMenuQueryIsNotConstructed = errors.New(
		"BrowseMenuQuery must be created via NewBrowseMenuQuery constructor",
	)
	ErrInvalidMenuSort = errors.New("sort must be one of name, price_asc, price_desc")
)

// MenuSort orders a menu page.
type MenuSort int

const (
	SortByName MenuSort = iota
	SortByPriceAsc
	SortByPriceDesc
)

func (s MenuSort) String() string {
	switch s {
	case SortByPriceAsc:
		return "price_asc"
	case SortByPriceDesc:
		return "price_desc"
	default:
		return "name"
	}
}

// ParseMenuSort accepts "", "name", "price_asc"/"asc" and "price_desc"/"desc".
func ParseMenuSort(raw string) (MenuSort, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "name":
		return SortByName, nil
	case "price_asc", "asc":
		return SortByPriceAsc, nil
	case "price_desc", "desc":
		return SortByPriceDesc, nil
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("sort", ErrInvalidMenuSort)
}

// MenuFilter narrows a menu page. Zero fields do not filter.
type MenuFilter struct {
	Type     *catalog.ItemType
	MaxPrice *kernel.Money
	Sort     MenuSort
}

// CacheKey identifies the page selected by the filter.
func (f MenuFilter) CacheKey() string {
	itemType, maxPrice := "any", "any"
	if f.Type != nil {
		itemType = f.Type.String()
	}
	if f.MaxPrice != nil {
		maxPrice = f.MaxPrice.String()
	}
	return fmt.Sprintf("type=%s:max=%s:sort=%s", itemType, maxPrice, f.Sort)
}

// BrowseMenuQuery lists catalog items.
//
// Example:
//
//	q, err := NewBrowseMenuQuery(caller, "entree", "10.00", "price_desc")
type BrowseMenuQuery struct {
	caller identity.Identity
	filter MenuFilter

	guard guard.ConstructorGuard
}

// NewBrowseMenuQuery parses each filter field; empty strings leave it unset.
func NewBrowseMenuQuery(caller identity.Identity, itemType, maxPrice, sort string) (BrowseMenuQuery, error) {
	q := BrowseMenuQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		q.setCaller(caller),
		q.setType(itemType),
		q.setMaxPrice(maxPrice),
		q.setSort(sort),
	); err != nil {
		return BrowseMenuQuery{}, err
	}

	return q, nil
}

func (q BrowseMenuQuery) Validate() error {
	return q.guard.Validate(ErrBrowseMenuQueryIsNotConstructed)
}

func (q BrowseMenuQuery) Filter() MenuFilter {
	return q.filter
}

func (q *BrowseMenuQuery) setCaller(caller identity.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	q.caller = caller
	return nil
}

func (q *BrowseMenuQuery) setType(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	itemType, err := catalog.ParseItemType(raw)
	if err != nil {
		return err
	}
	q.filter.Type = &itemType
	return nil
}

func (q *BrowseMenuQuery) setMaxPrice(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	price, err := kernel.ParseMoney(raw)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("maxPrice", err)
	}
	q.filter.MaxPrice = &price
	return nil
}

func (q *BrowseMenuQuery) setSort(raw string) error {
	sort, err := ParseMenuSort(raw)
	if err != nil {
		return err
	}
	q.filter.Sort = sort
	return nil
}
