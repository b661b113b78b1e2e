package commands

import (
	"context"

	"pizzastore/internal/core/domain/model/identity"
	"pizzastore/internal/core/ports"
	"pizzastore/internal/pkg/errs"
)

// RegisterUserCommandHandler creates customer accounts.
//
// Example:
//
//	handler := NewRegisterUserCommandHandler(uowFactory, hasher)
//	user, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, identity.ErrDuplicateLogin) {
//	    // ask for another login
//	}
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

func NewRegisterUserCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle hashes the password outside the transaction, then checks the login
// is free and inserts the account. A concurrent registration of the same
// login is caught by the storage unique key and reported the same way.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*identity.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	taken, err := userRepo.Exists(ctx, cmd.Login())
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewObjectAlreadyExistsErrorWithCause("login", cmd.Login().String(), identity.ErrDuplicateLogin)
	}

	user, err := identity.NewCustomer(cmd.Login(), hash, cmd.PhoneNumber())
	if err != nil {
		return nil, err
	}

	if err = userRepo.Add(ctx, user); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return user, nil
}
