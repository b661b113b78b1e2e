package queries

import (
	"context"

	"pizzastore/internal/core/domain/model/identity"
	"pizzastore/internal/core/domain/model/kernel"
	"pizzastore/internal/core/ports"
	"pizzastore/internal/pkg/errs"

	"gorm.io/gorm"
)

// AuthenticateQueryHandler turns credentials into a caller Identity.
//
// Example:
//
//	caller, err := handler.Handle(ctx, NewAuthenticateQuery("Alice", "s3cret"))
//	if errors.Is(err, identity.ErrInvalidCredentials) {
//	    // unknown login or wrong password, indistinguishable on purpose
//	}
type AuthenticateQueryHandler struct {
	db     *gorm.DB
	hasher ports.PasswordHasher
}

func NewAuthenticateQueryHandler(db *gorm.DB, hasher ports.PasswordHasher) AuthenticateQueryHandler {
	return AuthenticateQueryHandler{db: db, hasher: hasher}
}

func (h AuthenticateQueryHandler) Handle(ctx context.Context, query AuthenticateQuery) (identity.Identity, error) {
	if err := query.Validate(); err != nil {
		return identity.Identity{}, err
	}

	invalid := errs.NewAuthenticationFailedErrorWithCause(identity.ErrInvalidCredentials)

	login, err := kernel.NewLogin(query.login)
	if err != nil || query.password == "" {
		return identity.Identity{}, invalid
	}

	var row struct {
		Password string
		Role     string
	}
	result := h.db.WithContext(ctx).
		Raw("SELECT password, role FROM users WHERE login = ?", login.String()).
		Scan(&row)
	if result.Error != nil {
		return identity.Identity{}, result.Error
	}
	if result.RowsAffected == 0 {
		return identity.Identity{}, invalid
	}

	if err = h.hasher.Compare(row.Password, query.password); err != nil {
		return identity.Identity{}, invalid
	}

	role, err := identity.ParseRole(row.Role)
	if err != nil {
		return identity.Identity{}, err
	}

	return identity.NewIdentity(login, role)
}
