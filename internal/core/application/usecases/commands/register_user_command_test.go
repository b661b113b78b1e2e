package commands_test

import (
	"testing"

	"pizzastore/internal/core/application/usecases/commands"
	"pizzastore/internal/core/domain/model/identity"
	"pizzastore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterUserCommand(t *testing.T) {
	cmd, err := commands.NewRegisterUserCommand("  Alice ", "s3cret", "1234567890")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "alice", cmd.Login().String())
	assert.Equal(t, "s3cret", cmd.Password())
	assert.Equal(t, "1234567890", cmd.PhoneNumber().String())
}

func TestNewRegisterUserCommand_InvalidPhone(t *testing.T) {
	_, err := commands.NewRegisterUserCommand("alice", "s3cret", "12345")

	require.ErrorIs(t, err, identity.ErrInvalidPhoneNumber)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
}

func TestNewRegisterUserCommand_ReportsAllProblems(t *testing.T) {
	_, err := commands.NewRegisterUserCommand("", "", "abc")

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, identity.ErrInvalidPassword)
	require.ErrorIs(t, err, identity.ErrInvalidPhoneNumber)
}

func TestRegisterUserCommand_ZeroValue(t *testing.T) {
	var cmd commands.RegisterUserCommand
	assert.Equal(t, commands.ErrRegisterUserCommandIsNotConstructed, cmd.Validate())
}
