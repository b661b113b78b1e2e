package commands

import (
	"errors"

	"pizzastore/internal/core/domain/model/identity"
	"pizzastore/internal/core/domain/model/order"
	"pizzastore/internal/pkg/errs"
	"pizzastore/internal/pkg/guard"
)

var ErrTransitionOrderStatusCommandIsNotConstructed = errors.New(
	"TransitionOrderStatusCommand must be created via NewTransitionOrderStatusCommand constructor",
)

// TransitionOrderStatusCommand represents a request by staff to move an
// order to another lifecycle status.
//
// Example:
//
//	cmd, err := NewTransitionOrderStatusCommand(driver, 10000, "In Progress")
//	updated, err := handler.Handle(ctx, cmd)
type TransitionOrderStatusCommand struct { //nolint:recvcheck //using for validation
	caller    identity.Identity
	orderID   int64
	newStatus order.Status

	guard guard.ConstructorGuard
}

// NewTransitionOrderStatusCommand parses the status name. Case, spaces,
// dashes and underscores are ignored, so "out_for_delivery" is accepted.
func NewTransitionOrderStatusCommand(
	caller identity.Identity,
	orderID int64,
	newStatus string,
) (TransitionOrderStatusCommand, error) {
	cmd := TransitionOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setOrderID(orderID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return TransitionOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c TransitionOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderStatusCommandIsNotConstructed)
}

func (c TransitionOrderStatusCommand) Caller() identity.Identity {
	return c.caller
}

func (c TransitionOrderStatusCommand) OrderID() int64 {
	return c.orderID
}

func (c TransitionOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

func (c *TransitionOrderStatusCommand) setCaller(caller identity.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *TransitionOrderStatusCommand) setOrderID(orderID int64) error {
	if orderID < order.FirstID {
		return errs.NewObjectNotFoundErrorWithCause("orderID", orderID, order.ErrOrderNotFound)
	}
	c.orderID = orderID
	return nil
}

func (c *TransitionOrderStatusCommand) setNewStatus(raw string) error {
	status, err := order.ParseStatus(raw)
	if err != nil {
		return err
	}
	c.newStatus = status
	return nil
}
