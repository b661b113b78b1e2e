package queries_test

import (
	"context"
	"errors"
	"testing"

	"pizzastore/internal/adapters/out/postgres/itemrepo"
	"pizzastore/internal/adapters/out/postgres/userrepo"
	"pizzastore/internal/core/application/usecases/queries"
	"pizzastore/internal/core/domain/model/catalog"
	"pizzastore/internal/core/domain/model/identity"
	"pizzastore/internal/core/domain/model/kernel"
	"pizzastore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMenuCache struct {
	mock.Mock
}

func (m *MockMenuCache) Get(ctx context.Context, key string) ([]queries.MenuItem, bool, error) {
	args := m.Called(ctx, key)
	items, _ := args.Get(0).([]queries.MenuItem)
	return items, args.Bool(1), args.Error(2)
}

func (m *MockMenuCache) Set(ctx context.Context, key string, items []queries.MenuItem) error {
	args := m.Called(ctx, key, items)
	return args.Error(0)
}

func menuNames(items []queries.MenuItem) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names
}

func TestParseMenuSort(t *testing.T) {
	testCases := []struct {
		raw      string
		expected queries.MenuSort
	}{
		{"", queries.SortByName},
		{"name", queries.SortByName},
		{"asc", queries.SortByPriceAsc},
		{"PRICE_ASC", queries.SortByPriceAsc},
		{" desc ", queries.SortByPriceDesc},
		{"price_desc", queries.SortByPriceDesc},
	}
	for _, tc := range testCases {
		got, err := queries.ParseMenuSort(tc.raw)
		require.NoError(t, err, tc.raw)
		assert.Equal(t, tc.expected, got, tc.raw)
	}

	_, err := queries.ParseMenuSort("popularity")
	require.ErrorIs(t, err, queries.ErrInvalidMenuSort)
}

func TestNewBrowseMenuQuery(t *testing.T) {
	caller := mustIdentity(t, "alice", identity.Customer)

	t.Run("empty filter", func(t *testing.T) {
		q, err := queries.NewBrowseMenuQuery(caller, "", "", "")
		require.NoError(t, err)

		f := q.Filter()
		assert.Nil(t, f.Type)
		assert.Nil(t, f.MaxPrice)
		assert.Equal(t, "type=any:max=any:sort=name", f.CacheKey())
	})

	t.Run("full filter", func(t *testing.T) {
		q, err := queries.NewBrowseMenuQuery(caller, "Sides", "5", "desc")
		require.NoError(t, err)
		assert.Equal(t, "type=sides:max=5.00:sort=price_desc", q.Filter().CacheKey())
	})

	t.Run("every bad field is reported", func(t *testing.T) {
		_, err := queries.NewBrowseMenuQuery(caller, "dessert", "-1", "random")

		require.ErrorIs(t, err, catalog.ErrInvalidType)
		require.ErrorIs(t, err, kernel.ErrMoneyIsNegative)
		require.ErrorIs(t, err, queries.ErrInvalidMenuSort)
		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	})
}

func TestBrowseMenuQueryHandler_Handle(t *testing.T) {
	db := seededDB(t)
	caller := mustIdentity(t, "alice", identity.Customer)

	testCases := []struct {
		name                  string
		itemType, max, sortBy string
		expected              []string
	}{
		{"default by name", "", "", "", []string{"Garlic Bread", "Pepperoni", "Soda", "Wings"}},
		{"by type", "sides", "", "", []string{"Garlic Bread", "Wings"}},
		{"by max price inclusive", "", "6.50", "", []string{"Garlic Bread", "Soda", "Wings"}},
		{"price ascending", "", "", "asc", []string{"Soda", "Garlic Bread", "Wings", "Pepperoni"}},
		{"price descending", "", "", "desc", []string{"Pepperoni", "Wings", "Garlic Bread", "Soda"}},
		{"combined", "sides", "5.00", "desc", []string{"Garlic Bread"}},
		{"nothing matches", "entree", "1.00", "", []string{}},
	}

	handler := queries.NewBrowseMenuQueryHandler(db, identity.DefaultPolicy(), nil, nil)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := queries.NewBrowseMenuQuery(caller, tc.itemType, tc.max, tc.sortBy)
			require.NoError(t, err)

			got, err := handler.Handle(t.Context(), q)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, menuNames(got))
		})
	}

	t.Run("item fields", func(t *testing.T) {
		q, err := queries.NewBrowseMenuQuery(caller, "entree", "", "")
		require.NoError(t, err)

		got, err := handler.Handle(t.Context(), q)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "entree", got[0].Type)
		assert.Equal(t, "8.00", got[0].Price.String())
		assert.Equal(t, "Pepperoni description", got[0].Description)
	})
}

func TestBrowseMenuQueryHandler_Cache(t *testing.T) {
	db := seededDB(t)
	caller := mustIdentity(t, "alice", identity.Customer)
	q, err := queries.NewBrowseMenuQuery(caller, "drinks", "", "")
	require.NoError(t, err)
	key := q.Filter().CacheKey()

	t.Run("hit skips the database", func(t *testing.T) {
		cached := []queries.MenuItem{{Name: "Cached Soda", Type: "drinks", Price: kernel.MustParseMoney("1.00")}}
		cache := &MockMenuCache{}
		cache.On("Get", mock.Anything, key).Return(cached, true, nil).Once()

		got, err := queries.NewBrowseMenuQueryHandler(db, identity.DefaultPolicy(), cache, nil).Handle(t.Context(), q)

		require.NoError(t, err)
		assert.Equal(t, cached, got)
		cache.AssertExpectations(t)
	})

	t.Run("miss fills the cache", func(t *testing.T) {
		cache := &MockMenuCache{}
		mock.InOrder(
			cache.On("Get", mock.Anything, key).Return(nil, false, nil).Once(),
			cache.On("Set", mock.Anything, key, mock.MatchedBy(func(items []queries.MenuItem) bool {
				return len(items) == 1 && items[0].Name == "Soda"
			})).Return(nil).Once(),
		)

		got, err := queries.NewBrowseMenuQueryHandler(db, identity.DefaultPolicy(), cache, nil).Handle(t.Context(), q)

		require.NoError(t, err)
		assert.Equal(t, []string{"Soda"}, menuNames(got))
		cache.AssertExpectations(t)
	})

	t.Run("cache failures fall back to the database", func(t *testing.T) {
		cache := &MockMenuCache{}
		cache.On("Get", mock.Anything, key).Return(nil, false, errors.New("redis down")).Once()
		cache.On("Set", mock.Anything, key, mock.Anything).Return(errors.New("redis down")).Once()

		got, err := queries.NewBrowseMenuQueryHandler(db, identity.DefaultPolicy(), cache, nil).Handle(t.Context(), q)

		require.NoError(t, err)
		assert.Equal(t, []string{"Soda"}, menuNames(got))
		cache.AssertExpectations(t)
	})

	t.Run("policy is checked before the cache", func(t *testing.T) {
		cache := &MockMenuCache{}
		policy, err := identity.NewPolicy(map[identity.Role][]identity.Action{})
		require.NoError(t, err)

		_, err = queries.NewBrowseMenuQueryHandler(db, policy, cache, nil).Handle(t.Context(), q)

		require.ErrorIs(t, err, identity.ErrForbidden)
		cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})
}

func TestItemPriceChange_LeavesPlacedOrdersUnchanged(t *testing.T) {
	db := seededDB(t)
	ctx := t.Context()
	items := itemrepo.NewGormItemRepository(db)

	pepperoni, err := items.Get(ctx, "Pepperoni")
	require.NoError(t, err)
	require.NoError(t, pepperoni.Update(catalog.PriceField, "9.99"))
	require.NoError(t, items.Update(ctx, pepperoni))

	q, err := queries.NewGetOrderQuery(mustIdentity(t, "alice", identity.Customer), 10000)
	require.NoError(t, err)
	got, err := queries.NewGetOrderQueryHandler(db, identity.DefaultPolicy()).Handle(ctx, q)

	require.NoError(t, err)
	assert.Equal(t, "19.00", got.TotalPrice.String())
	assert.Equal(t, "8.00", got.LineItems[0].UnitPrice.String())

	menu, err := queries.NewBrowseMenuQuery(mustIdentity(t, "alice", identity.Customer), "entree", "", "")
	require.NoError(t, err)
	page, err := queries.NewBrowseMenuQueryHandler(db, identity.DefaultPolicy(), nil, nil).Handle(ctx, menu)
	require.NoError(t, err)
	assert.Equal(t, "9.99", page[0].Price.String())
}

func TestListStoresQueryHandler_Handle(t *testing.T) {
	handler := queries.NewListStoresQueryHandler(seededDB(t), identity.DefaultPolicy())
	q, err := queries.NewListStoresQuery(mustIdentity(t, "bob", identity.Customer))
	require.NoError(t, err)

	got, err := handler.Handle(t.Context(), q)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, queries.StoreSummary{
		StoreID:     1,
		Address:     "1 Main St",
		City:        "Springfield",
		State:       "IL",
		IsOpen:      true,
		ReviewScore: 4.5,
	}, got[0])
}

func TestViewProfileQueryHandler_Handle(t *testing.T) {
	db := seededDB(t)
	handler := queries.NewViewProfileQueryHandler(db, identity.DefaultPolicy())

	t.Run("favorite unset", func(t *testing.T) {
		q, err := queries.NewViewProfileQuery(mustIdentity(t, "alice", identity.Customer))
		require.NoError(t, err)

		got, err := handler.Handle(t.Context(), q)

		require.NoError(t, err)
		assert.Equal(t, "alice", got.Login)
		assert.Equal(t, "customer", got.Role)
		assert.Equal(t, "5551234567", got.PhoneNumber)
		assert.Nil(t, got.FavoriteItem)
	})

	t.Run("favorite set", func(t *testing.T) {
		users := userrepo.NewGormUserRepository(db)
		u, err := users.Get(t.Context(), kernel.MustNewLogin("bob"))
		require.NoError(t, err)
		require.NoError(t, u.SetFavoriteItem("Wings"))
		require.NoError(t, users.Update(t.Context(), u))

		q, err := queries.NewViewProfileQuery(mustIdentity(t, "bob", identity.Customer))
		require.NoError(t, err)
		got, err := handler.Handle(t.Context(), q)

		require.NoError(t, err)
		require.NotNil(t, got.FavoriteItem)
		assert.Equal(t, "Wings", *got.FavoriteItem)
	})

	t.Run("identity without account", func(t *testing.T) {
		q, err := queries.NewViewProfileQuery(mustIdentity(t, "ghost", identity.Customer))
		require.NoError(t, err)

		_, err = handler.Handle(t.Context(), q)

		require.ErrorIs(t, err, identity.ErrUserNotFound)
	})
}
