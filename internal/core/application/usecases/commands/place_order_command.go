package commands

import (
	"errors"

	"pizzastore/internal/core/domain/model/identity"
	"pizzastore/internal/core/domain/services"
	"pizzastore/internal/pkg/errs"
	"pizzastore/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a request to order items from one store.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(caller, 1, []services.LineRequest{
//	    {ItemName: "Pepperoni", Quantity: 2},
//	    {ItemName: "Soda", Quantity: 1},
//	})
//	placed, err := handler.Handle(ctx, cmd)
//	fmt.Println(placed.ID(), placed.TotalPrice()) // 10000 19.00
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	caller  identity.Identity
	storeID int64
	lines   []services.LineRequest

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand checks request shape only. Item and store existence
// are resolved by the handler inside the transaction.
func NewPlaceOrderCommand(
	caller identity.Identity,
	storeID int64,
	lines []services.LineRequest,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setStoreID(storeID),
		cmd.setLines(lines),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) Caller() identity.Identity {
	return c.caller
}

func (c PlaceOrderCommand) StoreID() int64 {
	return c.storeID
}

func (c PlaceOrderCommand) Lines() []services.LineRequest {
	return append([]services.LineRequest(nil), c.lines...)
}

func (c *PlaceOrderCommand) setCaller(caller identity.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *PlaceOrderCommand) setStoreID(storeID int64) error {
	if storeID <= 0 {
		return errs.NewValueIsInvalidError("storeID")
	}
	c.storeID = storeID
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []services.LineRequest) error {
	if err := services.ValidateRequests(lines); err != nil {
		return err
	}
	c.lines = append([]services.LineRequest(nil), lines...)
	return nil
}
