package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"pizzastore/internal/core/application/usecases/commands"
	"pizzastore/internal/core/domain/model/catalog"
	"pizzastore/internal/core/domain/model/identity"
	"pizzastore/internal/core/domain/model/kernel"
	"pizzastore/internal/core/domain/model/order"
	"pizzastore/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *identity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *identity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, login kernel.Login) (*identity.User, error) {
	args := m.Called(ctx, login)
	u, _ := args.Get(0).(*identity.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, login kernel.Login) (bool, error) {
	args := m.Called(ctx, login)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ChangeLogin(ctx context.Context, from, to kernel.Login) error {
	return m.Called(ctx, from, to).Error(0)
}

type MockItemRepository struct{ mock.Mock }

func (m *MockItemRepository) Add(ctx context.Context, item *catalog.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockItemRepository) Update(ctx context.Context, item *catalog.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockItemRepository) Get(ctx context.Context, name string) (*catalog.Item, error) {
	args := m.Called(ctx, name)
	item, _ := args.Get(0).(*catalog.Item)
	return item, args.Error(1)
}

func (m *MockItemRepository) GetMany(ctx context.Context, names []string) (map[string]*catalog.Item, error) {
	args := m.Called(ctx, names)
	items, _ := args.Get(0).(map[string]*catalog.Item)
	return items, args.Error(1)
}

type MockStoreRepository struct{ mock.Mock }

func (m *MockStoreRepository) Add(ctx context.Context, store *catalog.Store) error {
	return m.Called(ctx, store).Error(0)
}

func (m *MockStoreRepository) Get(ctx context.Context, id int64) (*catalog.Store, error) {
	args := m.Called(ctx, id)
	store, _ := args.Get(0).(*catalog.Store)
	return store, args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) NextID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order, expected order.Status) error {
	return m.Called(ctx, o, expected).Error(0)
}

func (m *MockOrderRepository) AddStatusChange(ctx context.Context, change order.StatusChange) error {
	return m.Called(ctx, change).Error(0)
}

// MockUoW satisfies every composite unit of work used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

func (m *MockUoW) ItemRepository() ports.ItemRepository {
	return m.Called().Get(0).(ports.ItemRepository)
}

func (m *MockUoW) StoreRepository() ports.StoreRepository {
	return m.Called().Get(0).(ports.StoreRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	return m.Called().Get(0).(commands.UserUoW)
}

type MockProfileUoWFactory struct{ mock.Mock }

func (m *MockProfileUoWFactory) Create() commands.ProfileUoW {
	return m.Called().Get(0).(commands.ProfileUoW)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	return m.Called().Get(0).(commands.CatalogUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockPlacementUoWFactory struct{ mock.Mock }

func (m *MockPlacementUoWFactory) Create() commands.PlacementUoW {
	return m.Called().Get(0).(commands.PlacementUoW)
}

type MockMenuCache struct{ mock.Mock }

func (m *MockMenuCache) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockOrderMetrics struct{ mock.Mock }

func (m *MockOrderMetrics) OrderPlaced(storeID int64) { m.Called(storeID) }
func (m *MockOrderMetrics) OrderIDConflict()          { m.Called() }
func (m *MockOrderMetrics) StatusTransitioned(from, to order.Status) {
	m.Called(from, to)
}
func (m *MockOrderMetrics) SetOrdersByStatus(counts map[order.Status]int64) { m.Called(counts) }

// fakeHasher prefixes instead of hashing.
type fakeHasher struct{ err error }

func (h fakeHasher) Hash(password string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + password, nil
}

func (h fakeHasher) Compare(hash, password string) error {
	if strings.TrimPrefix(hash, "hashed:") != password {
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

func mustUser(t *testing.T, login string, role identity.Role) *identity.User {
	t.Helper()
	phone, err := identity.NewPhoneNumber("1234567890")
	require.NoError(t, err)
	u, err := identity.RestoreUser(kernel.MustNewLogin(login), "hashed:pw", role, "", phone)
	require.NoError(t, err)
	return u
}

func mustItem(t *testing.T, name string, itemType catalog.ItemType, price string) *catalog.Item {
	t.Helper()
	item, err := catalog.NewItem(name, itemType, kernel.MustParseMoney(price), "", "")
	require.NoError(t, err)
	return item
}

func mustStore(t *testing.T, id int64) *catalog.Store {
	t.Helper()
	store, err := catalog.NewStore(id, "1 Main St", "Springfield", "IL", true, 4.5)
	require.NoError(t, err)
	return store
}

func mustPendingOrder(t *testing.T, id int64, owner string) *order.Order {
	t.Helper()
	line, err := order.NewLineItem("Pepperoni", 1, kernel.MustParseMoney("8.00"))
	require.NoError(t, err)
	o, err := order.NewOrder(id, kernel.MustNewLogin(owner), 1, []order.LineItem{line}, time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC))
	require.NoError(t, err)
	return o
}
