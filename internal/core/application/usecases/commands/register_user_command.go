package commands

import (
	"errors"

	"pizzastore/internal/core/domain/model/identity"
	"pizzastore/internal/core/domain/model/kernel"
	"pizzastore/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents a self-registration request.
// The new account always gets the customer role.
//
// Example:
//
//	cmd, err := NewRegisterUserCommand("Alice", "s3cret", "1234567890")
//	if err != nil {
//	    return fmt.Errorf("invalid registration: %w", err)
//	}
//	user, err := handler.Handle(ctx, cmd)
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	login       kernel.Login
	password    string
	phoneNumber identity.PhoneNumber

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand normalizes the login and validates password length
// and phone number shape. All input problems are reported together.
func NewRegisterUserCommand(login, password, phoneNumber string) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLogin(login),
		cmd.setPassword(password),
		cmd.setPhoneNumber(phoneNumber),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Login() kernel.Login {
	return c.login
}

func (c RegisterUserCommand) Password() string {
	return c.password
}

func (c RegisterUserCommand) PhoneNumber() identity.PhoneNumber {
	return c.phoneNumber
}

func (c *RegisterUserCommand) setLogin(raw string) error {
	login, err := kernel.NewLogin(raw)
	if err != nil {
		return err
	}
	c.login = login
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if err := identity.ValidatePassword(password); err != nil {
		return err
	}
	c.password = password
	return nil
}

func (c *RegisterUserCommand) setPhoneNumber(raw string) error {
	phoneNumber, err := identity.NewPhoneNumber(raw)
	if err != nil {
		return err
	}
	c.phoneNumber = phoneNumber
	return nil
}
