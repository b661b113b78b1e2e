package commands

import (
	"context"

	"pizzastore/internal/core/domain/model/identity"
	"pizzastore/internal/pkg/errs"
)

// UpdateUserLoginCommandHandler re-keys an account. The account's orders and
// status history move with it. Renaming to the current login is a no-op.
type UpdateUserLoginCommandHandler struct {
	uowFactory UserUoWFactory
	policy     identity.Policy
}

func NewUpdateUserLoginCommandHandler(uowFactory UserUoWFactory, policy identity.Policy) UpdateUserLoginCommandHandler {
	return UpdateUserLoginCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

func (h UpdateUserLoginCommandHandler) Handle(ctx context.Context, cmd UpdateUserLoginCommand) (*identity.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Authorize(cmd.Caller(), identity.ActionManageUsers); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	user, err := userRepo.Get(ctx, cmd.Target())
	if err != nil {
		return nil, err
	}

	if cmd.Target().IsEqual(cmd.NewLogin()) {
		return user, nil
	}

	taken, err := userRepo.Exists(ctx, cmd.NewLogin())
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewObjectAlreadyExistsErrorWithCause(
			"login", cmd.NewLogin().String(), identity.ErrDuplicateLogin,
		)
	}

	if err = userRepo.ChangeLogin(ctx, cmd.Target(), cmd.NewLogin()); err != nil {
		return nil, err
	}

	if err = user.Rename(cmd.NewLogin()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return user, nil
}
