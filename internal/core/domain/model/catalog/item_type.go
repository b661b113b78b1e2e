package catalog

import (
	"fmt"
	"strings"

	"pizzastore/internal/pkg/errs"
)

// ItemType is the menu section an item belongs to.
type ItemType int

const (
	UnknownItemType ItemType = iota
	Entree
	Sides
	Drinks
)

func getItemTypeStrings() map[ItemType]string {
	return map[ItemType]string{
		Entree: "entree",
		Sides:  "sides",
		Drinks: "drinks",
	}
}

// ParseItemType matches the type name case-insensitively.
func ParseItemType(raw string) (ItemType, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	for t, name := range getItemTypeStrings() {
		if name == normalized {
			return t, nil
		}
	}
	return UnknownItemType, errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%w: %q", ErrInvalidType, raw))
}

func (t ItemType) Validate() error {
	if _, ok := getItemTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%w: %d", ErrInvalidType, t))
	}
	return nil
}

func (t ItemType) String() string {
	if s, ok := getItemTypeStrings()[t]; ok {
		return s
	}
	return "unknown"
}
