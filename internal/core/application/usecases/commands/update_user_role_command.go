package commands

import (
	"errors"

	"pizzastore/internal/core/domain/model/identity"
	"pizzastore/internal/core/domain/model/kernel"
	"pizzastore/internal/pkg/guard"
)

var ErrUpdateUserRoleCommandIsNotConstructed = errors.New(
	"UpdateUserRoleCommand must be created via NewUpdateUserRoleCommand constructor",
)

// UpdateUserRoleCommand represents a manager granting a role to an account.
type UpdateUserRoleCommand struct { //nolint:recvcheck //using for validation
	caller identity.Identity
	target kernel.Login
	role   identity.Role

	guard guard.ConstructorGuard
}

func NewUpdateUserRoleCommand(caller identity.Identity, target, role string) (UpdateUserRoleCommand, error) {
	cmd := UpdateUserRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	var targetErr, roleErr error
	cmd.target, targetErr = kernel.NewLogin(target)
	cmd.role, roleErr = identity.ParseRole(role)

	if err := errors.Join(caller.Validate(), targetErr, roleErr); err != nil {
		return UpdateUserRoleCommand{}, err
	}
	cmd.caller = caller

	return cmd, nil
}

func (c UpdateUserRoleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserRoleCommandIsNotConstructed)
}

func (c UpdateUserRoleCommand) Caller() identity.Identity {
	return c.caller
}

func (c UpdateUserRoleCommand) Target() kernel.Login {
	return c.target
}

func (c UpdateUserRoleCommand) Role() identity.Role {
	return c.role
}
