package kernel

import (
	"fmt"
	"math"
)

// Money represents a euro amount in minor units (cents) to keep discount and
// total arithmetic exact. Database adapters convert to/from NUMERIC(8,2);
// only the pricing rules touch floating point, and only through
// MoneyFromFloat which rounds to the nearest cent.
//
// The zero value is a valid €0.00 amount.
type Money int64

// MoneyFromFloat creates Money from a euro amount, rounding to the nearest cent.
func MoneyFromFloat(f float64) Money {
	return Money(math.Round(f * 100.0))
}

// MoneyFromCents creates Money from an amount already expressed in cents.
func MoneyFromCents(cents int64) Money {
	return Money(cents)
}

// Float returns the amount in euros.
func (m Money) Float() float64 {
	return float64(m) / 100.0
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return int64(m)
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return m + other
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return m - other
}

// MulInt returns the amount multiplied by a quantity.
func (m Money) MulInt(n int) Money {
	return m * Money(n)
}

// Percent returns the given percentage of the amount, rounded to the nearest cent.
func (m Money) Percent(p int) Money {
	return Money(math.Round(float64(m) * float64(p) / 100.0))
}

// Min returns the smaller of the two amounts.
func (m Money) Min(other Money) Money {
	if other < m {
		return other
	}
	return m
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m < 0
}

// IsPositive reports whether the amount is above zero.
func (m Money) IsPositive() bool {
	return m > 0
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m == 0
}

// String formats the amount as it appears in customer-facing messages, e.g. "€8.50".
func (m Money) String() string {
	return fmt.Sprintf("€%.2f", m.Float())
}
