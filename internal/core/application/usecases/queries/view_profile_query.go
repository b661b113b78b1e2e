package queries

import (
	"context"
	"errors"

	"pizzastore/internal/core/domain/model/identity"
	"pizzastore/internal/pkg/errs"
	"pizzastore/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrViewProfileQueryIsNotConstructed = errors.New(
	"ViewProfileQuery must be created via NewViewProfileQuery constructor",
)

// ViewProfileQuery reads the caller's own profile.
type ViewProfileQuery struct {
	caller identity.Identity

	guard guard.ConstructorGuard
}

func NewViewProfileQuery(caller identity.Identity) (ViewProfileQuery, error) {
	if err := caller.Validate(); err != nil {
		return ViewProfileQuery{}, err
	}
	return ViewProfileQuery{caller: caller, guard: guard.NewConstructorGuard()}, nil
}

func (q ViewProfileQuery) Validate() error {
	return q.guard.Validate(ErrViewProfileQueryIsNotConstructed)
}

// Profile never carries the password hash. FavoriteItem is nil until set.
type Profile struct {
	Login        string
	Role         string
	FavoriteItem *string
	PhoneNumber  string
}

type ViewProfileQueryHandler struct {
	db     *gorm.DB
	policy identity.Policy
}

func NewViewProfileQueryHandler(db *gorm.DB, policy identity.Policy) ViewProfileQueryHandler {
	return ViewProfileQueryHandler{db: db, policy: policy}
}

func (h ViewProfileQueryHandler) Handle(ctx context.Context, query ViewProfileQuery) (Profile, error) {
	if err := query.Validate(); err != nil {
		return Profile{}, err
	}

	if err := h.policy.Authorize(query.caller, identity.ActionManageOwnProfile); err != nil {
		return Profile{}, err
	}

	var row struct {
		Login    string
		Role     string
		FavItem  *string
		PhoneNum string
	}
	login := query.caller.Login().String()
	result := h.db.WithContext(ctx).
		Raw("SELECT login, role, fav_item, phone_num FROM users WHERE login = ?", login).
		Scan(&row)
	if result.Error != nil {
		return Profile{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Profile{}, errs.NewObjectNotFoundErrorWithCause("login", login, identity.ErrUserNotFound)
	}

	return Profile{
		Login:        row.Login,
		Role:         row.Role,
		FavoriteItem: row.FavItem,
		PhoneNumber:  row.PhoneNum,
	}, nil
}
