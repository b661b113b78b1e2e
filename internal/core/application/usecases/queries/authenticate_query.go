package queries

import (
	"errors"

	"pizzastore/internal/pkg/guard"
)

var ErrAuthenticateQueryIsNotConstructed = errors.New(
	"AuthenticateQuery must be created via NewAuthenticateQuery constructor",
)

// AuthenticateQuery checks a login and password pair. The login is kept raw;
// a login that cannot be normalized simply fails to authenticate.
type AuthenticateQuery struct {
	login    string
	password string

	guard guard.ConstructorGuard
}

func NewAuthenticateQuery(login, password string) AuthenticateQuery {
	return AuthenticateQuery{
		login:    login,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}
}

func (q AuthenticateQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateQueryIsNotConstructed)
}
