package identity

import (
	"errors"
	"fmt"

	"pizzastore/internal/core/domain/model/kernel"
	"pizzastore/internal/pkg/errs"
	"pizzastore/internal/pkg/guard"
)

var ErrIdentityIsNotConstructed = errors.New("Identity must be created via NewIdentity or a successful authentication")

// Identity is the authenticated caller. It is held by the caller between
// operations and carries no server-side session state.
type Identity struct {
	login kernel.Login
	role  Role
	guard guard.ConstructorGuard
}

func NewIdentity(login kernel.Login, role Role) (Identity, error) {
	if err := errors.Join(login.Validate(), role.Validate()); err != nil {
		return Identity{}, err
	}
	return Identity{login: login, role: role, guard: guard.NewConstructorGuard()}, nil
}

// Validate reports a zero Identity as an authentication failure, so an
// operation invoked without logging in is rejected before any role check.
func (i Identity) Validate() error {
	if err := i.guard.Validate(ErrIdentityIsNotConstructed); err != nil {
		return errs.NewAuthenticationFailedErrorWithCause(err)
	}
	return nil
}

func (i Identity) Login() kernel.Login {
	return i.login
}

func (i Identity) Role() Role {
	return i.role
}

// IsOwner reports whether the caller is the account identified by login.
func (i Identity) IsOwner(login kernel.Login) bool {
	return i.login.IsEqual(login)
}

// String renders "role:login" for logs and error messages.
func (i Identity) String() string {
	return fmt.Sprintf("%s:%s", i.role, i.login)
}
