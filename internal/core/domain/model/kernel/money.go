package kernel

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of fractional digits a Money value may carry.
const moneyScale = 2

var (
	ErrMoneyIsNegative      = errors.New("amount must not be negative")
	ErrMoneyIsNotANumber    = errors.New("amount must be a decimal number")
	ErrMoneyTooManyDecimals = errors.New("amount must not have more than two fractional digits")
)

// Money is a non-negative amount with at most cent precision.
//
// Unlike the other kernel values the zero value is valid and means 0.00,
// so a freshly declared total can be accumulated with Add.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney is 0.00.
var ZeroMoney = Money{amount: decimal.Zero}

// NewMoney validates an amount.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s", ErrMoneyIsNegative, amount.String())
	}
	if amount.Exponent() < -moneyScale && !amount.Equal(amount.Round(moneyScale)) {
		return Money{}, fmt.Errorf("%w: %s", ErrMoneyTooManyDecimals, amount.String())
	}
	return Money{amount: amount.Round(moneyScale)}, nil
}

// ParseMoney reads a decimal string such as "9.99".
func ParseMoney(raw string) (Money, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrMoneyIsNotANumber, raw)
	}
	return NewMoney(amount)
}

// MustParseMoney is ParseMoney for literals known to be valid. It panics otherwise.
func MustParseMoney(raw string) Money {
	m, err := ParseMoney(raw)
	if err != nil {
		panic(err)
	}
	return m
}

// Decimal exposes the amount for persistence and arithmetic outside the domain.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Times returns m multiplied by quantity. Callers guarantee quantity >= 0.
func (m Money) Times(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with exactly two fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}

// MarshalJSON encodes the amount as a fixed two-digit string.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseMoney(raw)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
