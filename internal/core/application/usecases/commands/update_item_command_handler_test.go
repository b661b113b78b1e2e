package commands_test

import (
	"errors"
	"testing"

	"pizzastore/internal/core/application/usecases/commands"
	"pizzastore/internal/core/domain/model/catalog"
	"pizzastore/internal/core/domain/model/identity"
	"pizzastore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateItemCommand(t *testing.T) {
	manager := mustIdentity(t, "maria", identity.Manager)

	cmd, err := commands.NewUpdateItemCommand(manager, " Pepperoni ", "PRICE", "9.99")
	require.NoError(t, err)
	assert.Equal(t, "Pepperoni", cmd.ItemName())
	assert.Equal(t, catalog.PriceField, cmd.Field())
	assert.Equal(t, "9.99", cmd.Value())

	_, err = commands.NewUpdateItemCommand(manager, "Pepperoni", "calories", "300")
	require.ErrorIs(t, err, catalog.ErrInvalidField)
}

func TestUpdateItemCommandHandler_Handle_Price(t *testing.T) {
	ctx := t.Context()
	manager := mustIdentity(t, "maria", identity.Manager)
	pepperoni := mustItem(t, "Pepperoni", catalog.Entree, "8.00")

	repo := new(MockItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(repo).Once(),
		repo.On("Get", ctx, "Pepperoni").Return(pepperoni, nil).Once(),
		repo.On("Update", ctx, pepperoni).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	cache := new(MockMenuCache)
	cache.On("Invalidate", ctx).Return(nil).Once()

	cmd, err := commands.NewUpdateItemCommand(manager, "Pepperoni", "price", "9.99")
	require.NoError(t, err)

	h := commands.NewUpdateItemCommandHandler(factory, identity.DefaultPolicy(), cache, nil)
	item, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "9.99", item.Price().String())
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestUpdateItemCommandHandler_Handle_NegativePrice(t *testing.T) {
	ctx := t.Context()
	manager := mustIdentity(t, "maria", identity.Manager)
	pepperoni := mustItem(t, "Pepperoni", catalog.Entree, "8.00")

	repo := new(MockItemRepository)
	repo.On("Get", ctx, "Pepperoni").Return(pepperoni, nil).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ItemRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()
	cache := new(MockMenuCache)

	cmd, err := commands.NewUpdateItemCommand(manager, "Pepperoni", "price", "-5")
	require.NoError(t, err)

	h := commands.NewUpdateItemCommandHandler(factory, identity.DefaultPolicy(), cache, nil)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, catalog.ErrInvalidPrice)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	assert.Equal(t, "8.00", pepperoni.Price().String())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	cache.AssertNotCalled(t, "Invalidate", mock.Anything)
}

func TestUpdateItemCommandHandler_Handle_CacheFailureIsNotFatal(t *testing.T) {
	ctx := t.Context()
	manager := mustIdentity(t, "maria", identity.Manager)
	soda := mustItem(t, "Soda", catalog.Drinks, "3.00")

	repo := new(MockItemRepository)
	repo.On("Get", ctx, "Soda").Return(soda, nil).Once()
	repo.On("Update", ctx, soda).Return(nil).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ItemRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()
	cache := new(MockMenuCache)
	cache.On("Invalidate", ctx).Return(errors.New("redis: connection refused")).Once()

	cmd, _ := commands.NewUpdateItemCommand(manager, "Soda", "description", "Ice cold")

	h := commands.NewUpdateItemCommandHandler(factory, identity.DefaultPolicy(), cache, nil)
	item, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Ice cold", item.Description())
}

func TestUpdateItemCommandHandler_Handle_DriverForbidden(t *testing.T) {
	driver := mustIdentity(t, "dave", identity.Driver)
	factory := new(MockCatalogUoWFactory)

	cmd, _ := commands.NewUpdateItemCommand(driver, "Soda", "price", "1.00")

	h := commands.NewUpdateItemCommandHandler(factory, identity.DefaultPolicy(), nil, nil)
	_, err := h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, identity.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}
