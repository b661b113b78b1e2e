package identity

import (
	"fmt"

	"pizzastore/internal/core/domain/model/kernel"
	"pizzastore/internal/pkg/errs"
)

// Action names an operation gated by the Policy.
type Action string

const (
	ActionManageOwnProfile      Action = "manage_own_profile"
	ActionBrowseCatalog         Action = "browse_catalog"
	ActionPlaceOrder            Action = "place_order"
	ActionViewOwnOrders         Action = "view_own_orders"
	ActionViewAllOrders         Action = "view_all_orders"
	ActionTransitionOrderStatus Action = "transition_order_status"
	ActionMutateCatalog         Action = "mutate_catalog"
	ActionManageUsers           Action = "manage_users"
)

// Actions lists every action known to the policy.
func Actions() []Action {
	return []Action{
		ActionManageOwnProfile,
		ActionBrowseCatalog,
		ActionPlaceOrder,
		ActionViewOwnOrders,
		ActionViewAllOrders,
		ActionTransitionOrderStatus,
		ActionMutateCatalog,
		ActionManageUsers,
	}
}

func (a Action) Validate() error {
	for _, known := range Actions() {
		if a == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("unknown action %q", string(a)))
}

// Policy maps each role to the set of actions it may perform.
// The zero value permits nothing.
type Policy struct {
	permitted map[Role]map[Action]struct{}
}

// DefaultPolicy is the built-in role table:
//
//	customer  own profile, browse catalog and stores, place orders, own orders
//	driver    customer actions, all orders, transition order status
//	manager   driver actions, mutate catalog, manage user login and role
func DefaultPolicy() Policy {
	customer := []Action{ActionManageOwnProfile, ActionBrowseCatalog, ActionPlaceOrder, ActionViewOwnOrders}
	driver := append(append([]Action{}, customer...), ActionViewAllOrders, ActionTransitionOrderStatus)
	manager := append(append([]Action{}, driver...), ActionMutateCatalog, ActionManageUsers)

	p, err := NewPolicy(map[Role][]Action{
		Customer: customer,
		Driver:   driver,
		Manager:  manager,
	})
	if err != nil {
		panic(err)
	}
	return p
}

// NewPolicy builds a policy from an explicit grant table. Unknown roles or
// actions are rejected. Roles missing from grants are permitted nothing.
func NewPolicy(grants map[Role][]Action) (Policy, error) {
	permitted := make(map[Role]map[Action]struct{}, len(grants))
	for role, actions := range grants {
		if err := role.Validate(); err != nil {
			return Policy{}, err
		}
		set := make(map[Action]struct{}, len(actions))
		for _, action := range actions {
			if err := action.Validate(); err != nil {
				return Policy{}, err
			}
			set[action] = struct{}{}
		}
		permitted[role] = set
	}
	return Policy{permitted: permitted}, nil
}

// Allows reports whether role may perform action.
func (p Policy) Allows(role Role, action Action) bool {
	_, ok := p.permitted[role][action]
	return ok
}

// Authorize returns nil when the caller's role permits action. An
// unauthenticated caller yields an authentication error, any other refusal
// an access-denied error wrapping ErrForbidden.
func (p Policy) Authorize(caller Identity, action Action) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	if !p.Allows(caller.Role(), action) {
		return errs.NewAccessDeniedErrorWithCause(caller.String(), string(action), ErrForbidden)
	}
	return nil
}

// AuthorizeOrderRead decides whether caller may read an order owned by owner:
// any order with ActionViewAllOrders, only their own with ActionViewOwnOrders.
func (p Policy) AuthorizeOrderRead(caller Identity, owner kernel.Login) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	if p.Allows(caller.Role(), ActionViewAllOrders) {
		return nil
	}
	if p.Allows(caller.Role(), ActionViewOwnOrders) && caller.IsOwner(owner) {
		return nil
	}
	return errs.NewAccessDeniedErrorWithCause(caller.String(), "read order of "+owner.String(), ErrForbidden)
}

// Grants returns a copy of the table, with actions in declaration order.
func (p Policy) Grants() map[Role][]Action {
	out := make(map[Role][]Action, len(p.permitted))
	for role := range p.permitted {
		for _, action := range Actions() {
			if p.Allows(role, action) {
				out[role] = append(out[role], action)
			}
		}
	}
	return out
}
