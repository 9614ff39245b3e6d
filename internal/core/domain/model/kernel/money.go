package kernel

import (
	"fmt"
	"math"

	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a non-negative decimal amount. Prices, payments and order totals are Money
// so that sums such as 5.99 + 2.49 stay exact.
//
// The zero value is a valid amount of zero.
//
// Example:
//
//	price, err := kernel.NewMoney(decimal.RequireFromString("5.99"))
//	total := kernel.ZeroMoney().Add(price)
type Money struct {
	amount decimal.Decimal
}

// NewMoney validates that amount is not negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount}, nil
}

// MoneyFromFloat converts a JSON number into Money, keeping its shortest decimal form.
// A negative amount is reported under field, for example "price".
func MoneyFromFloat(field string, amount float64) (Money, error) {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			field,
			fmt.Errorf("%v is not a non-negative amount", amount),
		)
	}
	return NewMoney(decimal.NewFromFloat(amount))
}

// MustMoney is NewMoney for literals known to be valid, such as seed data and tests.
func MustMoney(amount string) Money {
	m, err := NewMoney(decimal.RequireFromString(amount))
	if err != nil {
		panic(err)
	}
	return m
}

// ZeroMoney returns an amount of zero.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Add returns the sum of both amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsEqual compares amounts numerically, so 2.5 equals 2.50.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal exposes the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount for JSON views.
func (m Money) Float64() float64 {
	return m.amount.InexactFloat64()
}

// String formats the amount with two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
