package kernel

import (
	"fmt"

	"carrybee/internal/pkg/errs"
)

// Money is an amount in minor currency units (paise). All monetary
// arithmetic in the domain is integer arithmetic on this type; amounts are
// never stored or computed as floating point.
type Money int64

// NewMoney creates a non-negative amount in minor units.
func NewMoney(minorUnits int64) (Money, error) {
	if minorUnits < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d is negative", minorUnits))
	}
	return Money(minorUnits), nil
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return m + other
}

// MulQuantity returns the amount multiplied by an item quantity.
func (m Money) MulQuantity(quantity int) Money {
	return m * Money(quantity)
}

// MinorUnits returns the raw amount in minor units.
func (m Money) MinorUnits() int64 {
	return int64(m)
}

// String formats the amount in major units with two decimals, e.g. "240.00".
// This is the representation external payment links expect.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m/100, m%100)
}
