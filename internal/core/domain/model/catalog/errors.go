package catalog

import "errors"

var (
	ErrItemNotFound  = errors.New("item not found")
	ErrStoreNotFound = errors.New("store not found")
	ErrInvalidType   = errors.New("item type must be one of entree, sides, drinks")
	ErrInvalidPrice  = errors.New("price must be a non-negative decimal with at most two fractional digits")
	ErrInvalidField  = errors.New("item field must be one of ingredients, type, price, description")
)
