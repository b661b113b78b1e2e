package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pizzastore/internal/adapters/out/postgres/itemrepo"
	"pizzastore/internal/adapters/out/postgres/orderrepo"
	"pizzastore/internal/adapters/out/postgres/storerepo"
	"pizzastore/internal/adapters/out/postgres/testdb"
	"pizzastore/internal/adapters/out/postgres/userrepo"
	"pizzastore/internal/core/domain/model/catalog"
	"pizzastore/internal/core/domain/model/identity"
	"pizzastore/internal/core/domain/model/kernel"
	"pizzastore/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var baseTime = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func mustIdentity(t *testing.T, login string, role identity.Role) identity.Identity {
	t.Helper()
	id, err := identity.NewIdentity(kernel.MustNewLogin(login), role)
	require.NoError(t, err)
	return id
}

// seededDB returns a database with four users, one store, four items and
// three orders:
//
//	10000  alice  Pepperoni x2, Soda x1   19.00
//	10001  bob    Wings x1                 6.50
//	10002  alice  Soda x3                  9.00
func seededDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := t.Context()
	db := testdb.NewSQLite(t)

	users := userrepo.NewGormUserRepository(db)
	phone, err := identity.NewPhoneNumber("5551234567")
	require.NoError(t, err)
	for login, role := range map[string]identity.Role{
		"alice": identity.Customer,
		"bob":   identity.Customer,
		"dave":  identity.Driver,
		"mia":   identity.Manager,
	} {
		u, restoreErr := identity.RestoreUser(kernel.MustNewLogin(login), "hashed:pw-"+login, role, "", phone)
		require.NoError(t, restoreErr)
		require.NoError(t, users.Add(ctx, u))
	}

	store, err := catalog.NewStore(1, "1 Main St", "Springfield", "IL", true, 4.5)
	require.NoError(t, err)
	require.NoError(t, storerepo.NewGormStoreRepository(db).Add(ctx, store))

	items := itemrepo.NewGormItemRepository(db)
	for _, seed := range []struct {
		name, price string
		itemType    catalog.ItemType
	}{
		{"Pepperoni", "8.00", catalog.Entree},
		{"Soda", "3.00", catalog.Drinks},
		{"Wings", "6.50", catalog.Sides},
		{"Garlic Bread", "4.00", catalog.Sides},
	} {
		item, itemErr := catalog.NewItem(seed.name, seed.itemType, kernel.MustParseMoney(seed.price), seed.name+" description", "")
		require.NoError(t, itemErr)
		require.NoError(t, items.Add(ctx, item))
	}

	orders := orderrepo.NewGormOrderRepository(db)
	addOrder(ctx, t, orders, 10000, "alice", baseTime,
		line(t, "Pepperoni", 2, "8.00"), line(t, "Soda", 1, "3.00"))
	addOrder(ctx, t, orders, 10001, "bob", baseTime.Add(time.Minute),
		line(t, "Wings", 1, "6.50"))
	addOrder(ctx, t, orders, 10002, "alice", baseTime.Add(2*time.Minute),
		line(t, "Soda", 3, "3.00"))

	return db
}

func line(t *testing.T, name string, quantity int, price string) order.LineItem {
	t.Helper()
	l, err := order.NewLineItem(name, quantity, kernel.MustParseMoney(price))
	require.NoError(t, err)
	return l
}

func addOrder(
	ctx context.Context,
	t *testing.T,
	repo *orderrepo.GormOrderRepository,
	id int64,
	owner string,
	at time.Time,
	lines ...order.LineItem,
) {
	t.Helper()
	o, err := order.NewOrder(id, kernel.MustNewLogin(owner), 1, lines, at)
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, o))
}

// transition moves an order through the repository the way the transition
// handler does, so the status history gets a record.
func transition(t *testing.T, db *gorm.DB, id int64, to order.Status, by string, at time.Time) {
	t.Helper()
	ctx := t.Context()
	repo := orderrepo.NewGormOrderRepository(db)

	o, err := repo.Get(ctx, id)
	require.NoError(t, err)
	previous, err := o.TransitionTo(to)
	require.NoError(t, err)
	require.NoError(t, repo.UpdateStatus(ctx, o, previous))

	change, err := order.NewStatusChange(id, previous, to, kernel.MustNewLogin(by), at)
	require.NoError(t, err)
	require.NoError(t, repo.AddStatusChange(ctx, change))
}
