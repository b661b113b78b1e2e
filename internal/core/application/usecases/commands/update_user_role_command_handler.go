package commands

import (
	"context"

	"pizzastore/internal/core/domain/model/identity"
)

// UpdateUserRoleCommandHandler changes an account's role. Sessions already
// issued keep the old role until they expire.
type UpdateUserRoleCommandHandler struct {
	uowFactory UserUoWFactory
	policy     identity.Policy
}

func NewUpdateUserRoleCommandHandler(uowFactory UserUoWFactory, policy identity.Policy) UpdateUserRoleCommandHandler {
	return UpdateUserRoleCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

func (h UpdateUserRoleCommandHandler) Handle(ctx context.Context, cmd UpdateUserRoleCommand) (*identity.User, error) {
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

	if err = user.ChangeRole(cmd.Role()); err != nil {
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
