package order

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"pizzastore/internal/core/domain/model/kernel"
	"pizzastore/internal/pkg/errs"
)

// FirstID is the identifier of the first order ever placed.
const FirstID int64 = 10000

// ErrOrderIsNotConstructed is returned by Validate for an Order that did not
// come from NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// NextID returns the identifier following currentMax, where currentMax is
// the largest existing identifier or 0 when there are no orders.
func NextID(currentMax int64) int64 {
	return max(currentMax+1, FirstID)
}

// Order is the aggregate root for a placed order.
//
// Invariants:
//   - id >= FirstID
//   - owner and storeID reference an existing user and store, checked by the caller
//   - lineItems is non-empty and immutable
//   - totalPrice equals the sum of line totals and is immutable
//   - status is always one of the five valid values
type Order struct {
	// id is allocated by the placement transaction, see NextID
	id int64

	// owner is the login of the customer who placed the order
	owner kernel.Login

	storeID int64

	// lineItems carry the unit price captured at placement
	lineItems []LineItem

	totalPrice kernel.Money
	status     Status
	createdAt  time.Time

	isConstructed bool
}

// NewOrder creates an order in Pending status and computes its total price
// from the line items.
//
// Parameters:
//   - id: identifier from NextID, at least FirstID
//   - owner: login of the placing customer
//   - storeID: positive store identifier
//   - lineItems: at least one line, each already priced
//   - createdAt: placement time
//
// Returns:
//   - *Order: the Pending order
//   - error: every invalid argument, joined
//
// Example:
//
//	pizza, _ := order.NewLineItem("Pepperoni", 2, kernel.MustParseMoney("8.00"))
//	soda, _ := order.NewLineItem("Soda", 1, kernel.MustParseMoney("3.00"))
//	o, err := order.NewOrder(order.FirstID, kernel.MustNewLogin("alice"), 1,
//	    []order.LineItem{pizza, soda}, time.Now())
//	// o.TotalPrice().String() == "19.00"
func NewOrder(id int64, owner kernel.Login, storeID int64, lineItems []LineItem, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwner(owner),
		o.setStoreID(storeID),
		o.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	total := kernel.ZeroMoney
	for _, li := range o.lineItems {
		total = total.Add(li.Total())
	}
	o.totalPrice = total

	return o, nil
}

// RestoreOrder rebuilds a persisted order. The stored total is kept as is,
// even if prices or rounding rules would produce a different figure today.
func RestoreOrder(
	id int64,
	owner kernel.Login,
	storeID int64,
	lineItems []LineItem,
	totalPrice kernel.Money,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		totalPrice:    totalPrice,
		createdAt:     createdAt,
		isConstructed: true,
	}
	if err := errors.Join(
		o.setID(id),
		o.setOwner(owner),
		o.setStoreID(storeID),
		o.setLineItems(lineItems),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = status
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() int64 {
	return o.id
}

func (o *Order) Owner() kernel.Login {
	return o.owner
}

func (o *Order) StoreID() int64 {
	return o.storeID
}

// LineItems returns a copy of the line items in submission order.
func (o *Order) LineItems() []LineItem {
	return slices.Clone(o.lineItems)
}

func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// TransitionTo moves the order to next and returns the status it left.
//
// Only the forward moves of the lifecycle and cancellation of an unfinished
// order are accepted. Completed and Canceled orders reject every transition,
// and so does a move to the current status. On error the order is unchanged
// and the returned status equals the current one.
func (o *Order) TransitionTo(next Status) (Status, error) {
	previous := o.status
	if err := previous.ValidateTransition(next); err != nil {
		return previous, err
	}
	o.status = next
	return previous, nil
}

func (o *Order) setID(id int64) error {
	if id < FirstID {
		return errs.NewValueIsOutOfRangeError("orderID", id, FirstID, int64(math.MaxInt64))
	}
	o.id = id
	return nil
}

func (o *Order) setOwner(owner kernel.Login) error {
	if err := owner.Validate(); err != nil {
		return err
	}
	o.owner = owner
	return nil
}

func (o *Order) setStoreID(storeID int64) error {
	if storeID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("storeID", fmt.Errorf("%d is not greater than 0", storeID))
	}
	o.storeID = storeID
	return nil
}

func (o *Order) setLineItems(lineItems []LineItem) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("lineItems", ErrEmptyOrder)
	}
	for _, li := range lineItems {
		if err := ValidateQuantity(li.Quantity()); err != nil {
			return err
		}
	}
	o.lineItems = slices.Clone(lineItems)
	return nil
}
