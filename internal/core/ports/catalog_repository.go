package ports

import (
	"context"

	"pizzastore/internal/core/domain/model/catalog"
)

// ItemRepository defines the persistence contract for menu items.
type ItemRepository interface {
	Add(ctx context.Context, item *catalog.Item) error

	// Update persists every mutable field of an existing item.
	Update(ctx context.Context, item *catalog.Item) error

	// Get returns the item or an error wrapping catalog.ErrItemNotFound.
	Get(ctx context.Context, name string) (*catalog.Item, error)

	// GetMany returns the stored items among names, keyed by name.
	// Missing names are simply absent from the result.
	GetMany(ctx context.Context, names []string) (map[string]*catalog.Item, error)
}

// StoreRepository defines the persistence contract for stores.
type StoreRepository interface {
	Add(ctx context.Context, store *catalog.Store) error

	// Get returns the store or an error wrapping catalog.ErrStoreNotFound.
	Get(ctx context.Context, id int64) (*catalog.Store, error)
}
