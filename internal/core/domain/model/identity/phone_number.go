package identity

import (
	"fmt"
	"strings"

	"pizzastore/internal/core/domain/model/kernel"
	"pizzastore/internal/pkg/errs"
)

const phoneNumberRule = "len=10,number"

// PhoneNumber is exactly ten ASCII digits.
type PhoneNumber struct {
	value string
}

func NewPhoneNumber(raw string) (PhoneNumber, error) {
	trimmed := strings.TrimSpace(raw)
	if err := kernel.Validator().Var(trimmed, phoneNumberRule); err != nil {
		return PhoneNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"phoneNumber",
			fmt.Errorf("%w: %q", ErrInvalidPhoneNumber, raw),
		)
	}
	return PhoneNumber{value: trimmed}, nil
}

func (p PhoneNumber) String() string {
	return p.value
}

func (p PhoneNumber) Validate() error {
	if p.value == "" {
		return errs.NewValueIsRequiredErrorWithCause("phoneNumber", ErrInvalidPhoneNumber)
	}
	return nil
}
