package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command so concurrent
// commands never share a transaction.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained after
// Begin run inside the transaction. Client code owns the lifecycle.
//
// Example:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	id, err := uow.OrderRepository().NextID(ctx)
//	// build the order, then
//	if err = uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit is harmless, so the deferred call can
// stay unconditional.
type UnitOfWork interface {
	// Begin starts a transaction. A second call while one is open is a no-op.
	Begin(ctx context.Context) error

	// Commit commits the open transaction.
	Commit(ctx context.Context) error

	// Rollback discards the open transaction. Without one it returns
	// gorm.ErrInvalidTransaction, which deferred callers ignore.
	Rollback(ctx context.Context) error

	// UserRepository returns a UserRepository bound to the open transaction,
	// or to the plain connection before Begin.
	UserRepository() UserRepository

	// ItemRepository returns an ItemRepository bound like UserRepository.
	ItemRepository() ItemRepository

	// StoreRepository returns a StoreRepository bound like UserRepository.
	StoreRepository() StoreRepository

	// OrderRepository returns an OrderRepository bound like UserRepository.
	// NextID and the Add that uses its result must run in one transaction.
	OrderRepository() OrderRepository
}
