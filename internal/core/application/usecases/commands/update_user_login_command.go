package commands

import (
	"errors"

	"pizzastore/internal/core/domain/model/identity"
	"pizzastore/internal/core/domain/model/kernel"
	"pizzastore/internal/pkg/guard"
)

var ErrUpdateUserLoginCommandIsNotConstructed = errors.New(
	"UpdateUserLoginCommand must be created via NewUpdateUserLoginCommand constructor",
)

// UpdateUserLoginCommand represents a manager renaming another account.
type UpdateUserLoginCommand struct { //nolint:recvcheck //using for validation
	caller   identity.Identity
	target   kernel.Login
	newLogin kernel.Login

	guard guard.ConstructorGuard
}

func NewUpdateUserLoginCommand(caller identity.Identity, target, newLogin string) (UpdateUserLoginCommand, error) {
	cmd := UpdateUserLoginCommand{
		guard: guard.NewConstructorGuard(),
	}

	var targetErr, newLoginErr error
	cmd.target, targetErr = kernel.NewLogin(target)
	cmd.newLogin, newLoginErr = kernel.NewLogin(newLogin)

	if err := errors.Join(caller.Validate(), targetErr, newLoginErr); err != nil {
		return UpdateUserLoginCommand{}, err
	}
	cmd.caller = caller

	return cmd, nil
}

func (c UpdateUserLoginCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserLoginCommandIsNotConstructed)
}

func (c UpdateUserLoginCommand) Caller() identity.Identity {
	return c.caller
}

func (c UpdateUserLoginCommand) Target() kernel.Login {
	return c.target
}

func (c UpdateUserLoginCommand) NewLogin() kernel.Login {
	return c.newLogin
}
