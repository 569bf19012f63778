package kernel

import (
	"github.com/shopspring/decimal"
)

// Money is a value object for monetary amounts. It wraps a decimal so that
// pricing arithmetic never touches binary floating point; a one-cent
// difference must compare exactly.
//
// The zero value is a valid zero amount. Negative amounts are representable
// because modifier price deltas may subtract from the base price.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns the zero amount.
func ZeroMoney() Money {
	return Money{}
}

// NewMoneyFromDecimal wraps an existing decimal amount.
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{amount: d}
}

// NewMoneyFromFloat converts a float amount, e.g. one parsed from an API payload.
func NewMoneyFromFloat(f float64) Money {
	return Money{amount: decimal.NewFromFloat(f)}
}

// MoneyFromString parses a decimal string such as "149.90".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{amount: d}, nil
}

// MustMoneyFromString parses a decimal string and panics on failure.
// Intended for constants and test fixtures only.
func MustMoneyFromString(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Add returns the sum of both amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference m - other.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// MulInt returns the amount multiplied by an integer factor, e.g. a quantity.
func (m Money) MulInt(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n)))}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// LessThan reports whether m is strictly below other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// IsEqual reports whether both amounts are numerically equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal exposes the underlying decimal for persistence and serialization.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the nearest float representation for presentation payloads.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String renders the amount with a fixed two-digit fraction.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
