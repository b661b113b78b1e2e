package commands

import (
	"errors"
	"strings"

	"pizzastore/internal/core/domain/model/catalog"
	"pizzastore/internal/core/domain/model/identity"
	"pizzastore/internal/pkg/errs"
	"pizzastore/internal/pkg/guard"
)

var ErrUpdateItemCommandIsNotConstructed = errors.New(
	"UpdateItemCommand must be created via NewUpdateItemCommand constructor",
)

// UpdateItemCommand represents a manager changing one field of a menu item.
// The value is kept raw; the item parses it for the type and price fields.
type UpdateItemCommand struct { //nolint:recvcheck //using for validation
	caller   identity.Identity
	itemName string
	field    catalog.ItemField
	value    string

	guard guard.ConstructorGuard
}

func NewUpdateItemCommand(caller identity.Identity, itemName, field, value string) (UpdateItemCommand, error) {
	cmd := UpdateItemCommand{
		value: value,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setItemName(itemName),
		cmd.setField(field),
	); err != nil {
		return UpdateItemCommand{}, err
	}

	return cmd, nil
}

func (c UpdateItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemCommandIsNotConstructed)
}

func (c UpdateItemCommand) Caller() identity.Identity {
	return c.caller
}

func (c UpdateItemCommand) ItemName() string {
	return c.itemName
}

func (c UpdateItemCommand) Field() catalog.ItemField {
	return c.field
}

func (c UpdateItemCommand) Value() string {
	return c.value
}

func (c *UpdateItemCommand) setCaller(caller identity.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *UpdateItemCommand) setItemName(itemName string) error {
	itemName = strings.TrimSpace(itemName)
	if itemName == "" {
		return errs.NewValueIsRequiredError("itemName")
	}
	c.itemName = itemName
	return nil
}

func (c *UpdateItemCommand) setField(raw string) error {
	field, err := catalog.ParseItemField(raw)
	if err != nil {
		return err
	}
	c.field = field
	return nil
}
