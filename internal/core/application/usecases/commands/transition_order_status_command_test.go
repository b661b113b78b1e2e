package commands_test

import (
	"testing"

	"pizzastore/internal/core/application/usecases/commands"
	"pizzastore/internal/core/domain/model/identity"
	"pizzastore/internal/core/domain/model/order"
	"pizzastore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransitionOrderStatusCommand(t *testing.T) {
	driver := mustIdentity(t, "dave", identity.Driver)

	cmd, err := commands.NewTransitionOrderStatusCommand(driver, 10000, "out_for_delivery")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, order.OutForDelivery, cmd.NewStatus())
	assert.Equal(t, int64(10000), cmd.OrderID())
}

func TestNewTransitionOrderStatusCommand_Invalid(t *testing.T) {
	driver := mustIdentity(t, "dave", identity.Driver)

	_, err := commands.NewTransitionOrderStatusCommand(driver, 10000, "Shipped")
	require.ErrorIs(t, err, order.ErrInvalidStatus)

	_, err = commands.NewTransitionOrderStatusCommand(driver, 42, "Completed")
	require.ErrorIs(t, err, order.ErrOrderNotFound)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}
