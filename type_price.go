package inventory

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Price is the unit price of an item. It carries no currency: the inventory
// file stores plain numbers, the currency is a display concern.
type Price struct {
	value decimal.Decimal
}

func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Price {
	return Price{value: newDecimal(value)}
}

// ParsePrice parses a decimal string like "1500" or "2.99".
func ParsePrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, err
	}
	if err := checkDigits(d); err != nil {
		return Price{}, err
	}
	return Price{value: d}, nil
}

func (p Price) Add(x Price) Price  { return Price{value: p.value.Add(x.value)} }
func (p Price) Equal(x Price) bool { return p.value.Equal(x.value) }
func (p Price) IsNegative() bool   { return p.value.IsNegative() }
func (p Price) String() string     { return p.value.String() }

var (
	minMinorUnits = decimal.NewFromInt(math.MinInt64)
	maxMinorUnits = decimal.NewFromInt(math.MaxInt64)
)

// Money formats the price in the given currency (e.g. "€1,500.00"), rounded
// to the currency fraction. An unknown currency, or an amount that does not
// fit in int64 minor units, falls back to String.
func (p Price) Money(currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return p.String()
	}
	minor := p.value.Shift(int32(cur.Fraction)).Round(0)
	if minor.LessThan(minMinorUnits) || minor.GreaterThan(maxMinorUnits) {
		return p.String()
	}
	return cur.Formatter().Format(minor.IntPart())
}

// Total returns the value of q units at price p.
func (p Price) Total(q Quantity) Price { return Price{value: p.value.Mul(q.value)} }

func (p Price) MarshalJSON() ([]byte, error) {
	return p.value.MarshalJSON()
}
func (p *Price) UnmarshalJSON(decimalBytes []byte) error {
	if err := p.value.UnmarshalJSON(decimalBytes); err != nil {
		return err
	}
	return checkDigits(p.value)
}

// ValidateCurrency checks that code is a known ISO 4217 currency code.
func ValidateCurrency(code string) error {
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("invalid currency %q: not an ISO 4217 code", code)
	}
	return nil
}
