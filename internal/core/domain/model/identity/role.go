package identity

import (
	"fmt"
	"strings"

	"pizzastore/internal/pkg/errs"
)

// Role determines which actions a caller may perform.
type Role int

const (
	// UnknownRole is the zero value and is never persisted.
	UnknownRole Role = iota
	Customer
	Driver
	Manager
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		Customer: "customer",
		Driver:   "driver",
		Manager:  "manager",
	}
}

// ParseRole accepts the role name in any case, surrounded by any space.
func ParseRole(raw string) (Role, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	for role, name := range getRoleStrings() {
		if name == normalized {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%w: %q", ErrInvalidRole, raw))
}

// Roles lists every valid role in ascending privilege.
func Roles() []Role {
	return []Role{Customer, Driver, Manager}
}

func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%w: %d", ErrInvalidRole, r))
	}
	return nil
}

func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}
