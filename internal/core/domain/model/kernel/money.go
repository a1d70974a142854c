package kernel

import (
	"fmt"

	"kebabhouse/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object representing a non-negative monetary amount.
// It wraps github.com/shopspring/decimal so that composition arithmetic is
// exact; prices never go through floating point.
//
// Money is immutable: arithmetic methods return new values. The zero value is
// a valid zero amount, which keeps folds over item sequences simple.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns a Money of amount zero.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney creates a Money from a decimal amount.
// Negative amounts are invalid: nothing in the menu or an order total can owe
// the customer money.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount}, nil
}

// MoneyFromFloat creates a Money from a float64 such as a catalog price.
func MoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// MoneyFromString parses a Money from its decimal string representation.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// MustMoneyFromString is like MoneyFromString but panics on a malformed or
// negative amount. Reserved for fixed in-code catalogs where the literals are
// known good.
func MustMoneyFromString(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// IsEqual reports whether two amounts are numerically equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the amount formatted with two decimal places, e.g. "8.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
