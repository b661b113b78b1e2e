package postgres_test

import (
	"testing"

	"pizzastore/internal/adapters/out/postgres"
	"pizzastore/internal/adapters/out/postgres/testdb"
	"pizzastore/internal/core/domain/model/catalog"
	"pizzastore/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGormUnitOfWork_Lifecycle(t *testing.T) {
	ctx := t.Context()
	factory := postgres.NewGormUnitOfWorkFactory(testdb.NewSQLite(t))

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Begin(ctx), "second Begin is a no-op")
	require.NoError(t, uow.Commit(ctx))

	assert.ErrorIs(t, uow.Commit(ctx), gorm.ErrInvalidTransaction)
	assert.ErrorIs(t, uow.Rollback(ctx), gorm.ErrInvalidTransaction)

	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Rollback(ctx))

	assert.NotSame(t, factory.Create(), factory.Create())
}

func TestGormUnitOfWork_RollbackDiscardsWrites(t *testing.T) {
	ctx := t.Context()
	factory := postgres.NewGormUnitOfWorkFactory(testdb.NewSQLite(t))
	item, err := catalog.NewItem("Garlic Knots", catalog.Sides, kernel.MustParseMoney("4.50"), "", "")
	require.NoError(t, err)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.ItemRepository().Add(ctx, item))
	require.NoError(t, uow.Rollback(ctx))

	_, err = factory.Create().ItemRepository().Get(ctx, "Garlic Knots")
	require.ErrorIs(t, err, catalog.ErrItemNotFound)
}

func TestGormUnitOfWork_CommitPersistsAcrossRepositories(t *testing.T) {
	ctx := t.Context()
	factory := postgres.NewGormUnitOfWorkFactory(testdb.NewSQLite(t))
	item, _ := catalog.NewItem("Soda", catalog.Drinks, kernel.MustParseMoney("3.00"), "", "")
	store, _ := catalog.NewStore(1, "1 Main St", "Springfield", "IL", true, 4.5)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	defer func() {
		_ = uow.Rollback(ctx)
	}()
	require.NoError(t, uow.ItemRepository().Add(ctx, item))
	require.NoError(t, uow.StoreRepository().Add(ctx, store))
	require.NoError(t, uow.Commit(ctx))

	reader := factory.Create()
	_, err := reader.ItemRepository().Get(ctx, "Soda")
	require.NoError(t, err)
	_, err = reader.StoreRepository().Get(ctx, 1)
	require.NoError(t, err)
}

func TestMigrate_IsIdempotent(t *testing.T) {
	db := testdb.NewSQLite(t)

	require.NoError(t, postgres.Migrate(db))
	for _, model := range postgres.Models() {
		assert.True(t, db.Migrator().HasTable(model), "%T", model)
	}
}
