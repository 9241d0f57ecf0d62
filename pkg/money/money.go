package money

import (
	"github.com/shopspring/decimal"
)

// DisplayPrecision is a number of digits after the decimal point used for display.
const DisplayPrecision = 3

// Money represents custom type for processing money.
type Money struct {
	decimal decimal.Decimal
}

// Zero represents zero (0) amount.
// Zero always equals to 0 and to 0.0...N.
var Zero = NewFromInt(0)

// NewFromString parses string and returns decimal amount.
// If s is empty, will be returned Zero decimal without throwing an error.
func NewFromString(s string) (Money, error) {
	if len(s) == 0 {
		return Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, err
	}
	return Money{d}, nil
}

// NewFromInt returns decimal from integer number.
func NewFromInt(i int64) Money {
	d := decimal.NewFromInt(i)
	return Money{d}
}

// NewFromFloat returns decimal from float number.
func NewFromFloat(f float64) Money {
	d := decimal.NewFromFloat(f)
	return Money{d}
}

// Float64 returns the nearest float64 value of the amount.
func (m Money) Float64() float64 {
	f, _ := m.decimal.Float64()
	return f
}

// Equal checks if left amount is equal to right.
func (m Money) Equal(right Money) bool {
	return m.decimal.Equal(right.decimal)
}

// GreaterThan checks if left amount is greater than right.
func (m Money) GreaterThan(right Money) bool {
	return m.decimal.GreaterThan(right.decimal)
}

// StringFixed returns string representation of the amount with DisplayPrecision places after digit.
// Resulting string will be rounded to nearest.
func (m Money) StringFixed() string {
	return m.decimal.StringFixed(DisplayPrecision)
}

// String returns string representation of the amount without any limitation.
func (m Money) String() string {
	return m.decimal.String()
}

// Format returns float as a string with DisplayPrecision places after digit.
func Format(f float64) string {
	return NewFromFloat(f).StringFixed()
}
