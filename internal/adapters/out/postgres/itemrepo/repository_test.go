package itemrepo_test

import (
	"testing"

	"pizzastore/internal/adapters/out/postgres/itemrepo"
	"pizzastore/internal/adapters/out/postgres/testdb"
	"pizzastore/internal/core/domain/model/catalog"
	"pizzastore/internal/core/domain/model/kernel"
	"pizzastore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(t *testing.T, name string, itemType catalog.ItemType, price string) *catalog.Item {
	t.Helper()
	item, err := catalog.NewItem(name, itemType, kernel.MustParseMoney(price), name+" description", "flour, water")
	require.NoError(t, err)
	return item
}

func TestGormItemRepository_AddGetUpdate(t *testing.T) {
	ctx := t.Context()
	repo := itemrepo.NewGormItemRepository(testdb.NewSQLite(t))
	pepperoni := newItem(t, "Pepperoni", catalog.Entree, "8.00")
	require.NoError(t, repo.Add(ctx, pepperoni))

	got, err := repo.Get(ctx, "Pepperoni")
	require.NoError(t, err)
	assert.Equal(t, catalog.Entree, got.Type())
	assert.Equal(t, "8.00", got.Price().String())
	assert.Equal(t, "flour, water", got.Ingredients())

	require.NoError(t, got.Update(catalog.PriceField, "9.99"))
	require.NoError(t, got.Update(catalog.TypeField, "sides"))
	require.NoError(t, repo.Update(ctx, got))

	again, err := repo.Get(ctx, "Pepperoni")
	require.NoError(t, err)
	assert.Equal(t, "9.99", again.Price().String())
	assert.Equal(t, catalog.Sides, again.Type())
}

func TestGormItemRepository_Errors(t *testing.T) {
	ctx := t.Context()
	repo := itemrepo.NewGormItemRepository(testdb.NewSQLite(t))
	require.NoError(t, repo.Add(ctx, newItem(t, "Soda", catalog.Drinks, "3.00")))

	err := repo.Add(ctx, newItem(t, "Soda", catalog.Drinks, "2.00"))
	assert.Equal(t, errs.KindConflict, errs.KindOf(err))

	_, err = repo.Get(ctx, "Calzone")
	require.ErrorIs(t, err, catalog.ErrItemNotFound)

	err = repo.Update(ctx, newItem(t, "Calzone", catalog.Entree, "1.00"))
	require.ErrorIs(t, err, catalog.ErrItemNotFound)
}

func TestGormItemRepository_GetMany(t *testing.T) {
	ctx := t.Context()
	repo := itemrepo.NewGormItemRepository(testdb.NewSQLite(t))
	require.NoError(t, repo.Add(ctx, newItem(t, "Soda", catalog.Drinks, "3.00")))
	require.NoError(t, repo.Add(ctx, newItem(t, "Fries", catalog.Sides, "2.50")))

	items, err := repo.GetMany(ctx, []string{"Soda", "Calzone"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "3.00", items["Soda"].Price().String())

	empty, err := repo.GetMany(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
