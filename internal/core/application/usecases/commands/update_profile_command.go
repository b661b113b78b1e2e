package commands

import (
	"errors"
	"strings"

	"pizzastore/internal/core/domain/model/identity"
	"pizzastore/internal/pkg/errs"
	"pizzastore/internal/pkg/guard"
)

var ErrUpdateProfileCommandIsNotConstructed = errors.New(
	"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
)

// UpdateProfileCommand represents a user changing one field of their own
// profile: favorite item, phone number or password.
//
// Example:
//
//	cmd, err := NewUpdateProfileCommand(caller, "phoneNumber", "5550001111")
//	user, err := handler.Handle(ctx, cmd)
type UpdateProfileCommand struct { //nolint:recvcheck //using for validation
	caller identity.Identity
	field  identity.ProfileField
	value  string

	phoneNumber identity.PhoneNumber

	guard guard.ConstructorGuard
}

// NewUpdateProfileCommand checks the value against the field's shape rules.
// Whether a favorite item exists in the catalog is checked by the handler.
func NewUpdateProfileCommand(caller identity.Identity, field, value string) (UpdateProfileCommand, error) {
	cmd := UpdateProfileCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := caller.Validate(); err != nil {
		return UpdateProfileCommand{}, err
	}
	cmd.caller = caller

	profileField, err := identity.ParseProfileField(field)
	if err != nil {
		return UpdateProfileCommand{}, err
	}
	cmd.field = profileField

	if err = cmd.setValue(value); err != nil {
		return UpdateProfileCommand{}, err
	}

	return cmd, nil
}

func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

func (c UpdateProfileCommand) Caller() identity.Identity {
	return c.caller
}

func (c UpdateProfileCommand) Field() identity.ProfileField {
	return c.field
}

// Value is the raw value. For the favorite item it is trimmed.
func (c UpdateProfileCommand) Value() string {
	return c.value
}

// PhoneNumber is set only when Field is PhoneNumberField.
func (c UpdateProfileCommand) PhoneNumber() identity.PhoneNumber {
	return c.phoneNumber
}

func (c *UpdateProfileCommand) setValue(value string) error {
	switch c.field {
	case identity.FavoriteItemField:
		value = strings.TrimSpace(value)
		if value == "" {
			return errs.NewValueIsRequiredError("favoriteItem")
		}
	case identity.PhoneNumberField:
		phoneNumber, err := identity.NewPhoneNumber(value)
		if err != nil {
			return err
		}
		c.phoneNumber = phoneNumber
	case identity.PasswordField:
		if err := identity.ValidatePassword(value); err != nil {
			return err
		}
	default:
		return errs.NewValueIsInvalidErrorWithCause("field", identity.ErrInvalidProfileField)
	}
	c.value = value
	return nil
}
