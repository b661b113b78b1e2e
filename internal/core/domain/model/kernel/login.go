package kernel

import (
	"errors"
	"fmt"
	"strings"

	"pizzastore/internal/pkg/errs"
)

// MaxLoginLength bounds the stored key.
const MaxLoginLength = 50

var (
	ErrInvalidLogin          = errors.New("login must be 1 to 50 printable characters without spaces")
	ErrLoginIsNotConstructed = errors.New("Login must be created via NewLogin")
)

// Login is the unique account key. Comparison is case-insensitive, which is
// realized by normalizing to trimmed lower case on construction.
type Login struct {
	value string
}

// NewLogin normalizes raw and checks it against the login rule.
func NewLogin(raw string) (Login, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	err := validate.Var(normalized, fmt.Sprintf("required,max=%d,printascii", MaxLoginLength))
	if err != nil || strings.ContainsRune(normalized, ' ') {
		return Login{}, errs.NewValueIsInvalidErrorWithCause("login", fmt.Errorf("%w: %q", ErrInvalidLogin, raw))
	}
	return Login{value: normalized}, nil
}

// MustNewLogin is NewLogin for literals known to be valid. It panics otherwise.
func MustNewLogin(raw string) Login {
	l, err := NewLogin(raw)
	if err != nil {
		panic(err)
	}
	return l
}

func (l Login) String() string {
	return l.value
}

func (l Login) IsEqual(other Login) bool {
	return l.value == other.value
}

func (l Login) Validate() error {
	if l.value == "" {
		return errs.NewValueIsRequiredErrorWithCause("login", ErrLoginIsNotConstructed)
	}
	return nil
}
