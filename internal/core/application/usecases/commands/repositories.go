// Package commands contains business operations that modify system state.
// Every command follows the same pattern: a constructor that validates raw
// input, an authorization check against the role policy, and a handler that
// runs the change inside one unit of work.
package commands

import (
	"context"

	"pizzastore/internal/core/domain/model/order"
	"pizzastore/internal/core/ports"
)

// Unit of Work interfaces narrow ports.UnitOfWork to the repositories each
// handler needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	ItemRepoFactory interface {
		ItemRepository() ports.ItemRepository
	}

	StoreRepoFactory interface {
		StoreRepository() ports.StoreRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// UserUoW covers account-only changes: registration, login and role updates.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}

	// ProfileUoW covers self-service profile changes, which resolve the
	// favorite item against the catalog.
	ProfileUoW interface {
		TxManager
		UserRepoFactory
		ItemRepoFactory
	}

	ProfileUoWFactory interface {
		Create() ProfileUoW
	}

	// CatalogUoW covers menu item changes.
	CatalogUoW interface {
		TxManager
		ItemRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// OrderUoW covers changes to existing orders.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PlacementUoW spans everything placing an order touches: the store and
	// item lookups, id allocation and the header plus line-item inserts.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   store, err := uow.StoreRepository().Get(ctx, storeID)
	//   items, err := uow.ItemRepository().GetMany(ctx, names)
	//   id, err := uow.OrderRepository().NextID(ctx)
	//   err = uow.OrderRepository().Add(ctx, placed)
	//
	//   err = uow.Commit(ctx)
	PlacementUoW interface {
		TxManager
		StoreRepoFactory
		ItemRepoFactory
		OrderRepoFactory
	}

	PlacementUoWFactory interface {
		Create() PlacementUoW
	}
)

// MenuCacheInvalidator drops cached menu pages after a catalog change.
type MenuCacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

type nopOrderMetrics struct{}

func (nopOrderMetrics) OrderPlaced(int64)                             {}
func (nopOrderMetrics) OrderIDConflict()                              {}
func (nopOrderMetrics) StatusTransitioned(order.Status, order.Status) {}
func (nopOrderMetrics) SetOrdersByStatus(map[order.Status]int64)      {}

func metricsOrNop(m ports.OrderMetrics) ports.OrderMetrics {
	if m == nil {
		return nopOrderMetrics{}
	}
	return m
}
