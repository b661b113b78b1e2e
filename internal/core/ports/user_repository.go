// Package ports defines the contracts between the ordering core and its
// infrastructure: repositories, the unit of work, password hashing and metrics.
package ports

import (
	"context"

	"pizzastore/internal/core/domain/model/identity"
	"pizzastore/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new account. A taken login yields an error wrapping
	// identity.ErrDuplicateLogin.
	Add(ctx context.Context, user *identity.User) error

	// Update persists role, password and profile fields of an existing account
	// keyed by its current login.
	Update(ctx context.Context, user *identity.User) error

	// Get returns the account for login or an error wrapping identity.ErrUserNotFound.
	Get(ctx context.Context, login kernel.Login) (*identity.User, error)

	// Exists reports whether an account with login is stored.
	Exists(ctx context.Context, login kernel.Login) (bool, error)

	// ChangeLogin re-keys the account from one login to another, carrying its
	// orders and status history along so ownership survives the rename.
	ChangeLogin(ctx context.Context, from, to kernel.Login) error
}
