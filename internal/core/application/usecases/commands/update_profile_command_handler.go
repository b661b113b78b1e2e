package commands

import (
	"context"

	"pizzastore/internal/core/domain/model/identity"
	"pizzastore/internal/core/ports"
	"pizzastore/internal/pkg/errs"
)

// UpdateProfileCommandHandler applies self-service profile changes.
// The favorite item must name an existing catalog item and is stored with
// the catalog's spelling.
type UpdateProfileCommandHandler struct {
	uowFactory ProfileUoWFactory
	policy     identity.Policy
	hasher     ports.PasswordHasher
}

func NewUpdateProfileCommandHandler(
	uowFactory ProfileUoWFactory,
	policy identity.Policy,
	hasher ports.PasswordHasher,
) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		hasher:     hasher,
	}
}

func (h UpdateProfileCommandHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) (*identity.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Authorize(cmd.Caller(), identity.ActionManageOwnProfile); err != nil {
		return nil, err
	}

	var hash string
	if cmd.Field() == identity.PasswordField {
		var err error
		if hash, err = h.hasher.Hash(cmd.Value()); err != nil {
			return nil, err
		}
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	user, err := userRepo.Get(ctx, cmd.Caller().Login())
	if err != nil {
		return nil, err
	}

	switch cmd.Field() {
	case identity.FavoriteItemField:
		item, getErr := uow.ItemRepository().Get(ctx, cmd.Value())
		if getErr != nil {
			return nil, getErr
		}
		err = user.SetFavoriteItem(item.Name())
	case identity.PhoneNumberField:
		err = user.ChangePhoneNumber(cmd.PhoneNumber())
	case identity.PasswordField:
		err = user.ChangePasswordHash(hash)
	default:
		err = errs.NewValueIsInvalidErrorWithCause("field", identity.ErrInvalidProfileField)
	}
	if err != nil {
		return nil, err
	}

	if err = userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return user, nil
}
