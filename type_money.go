package bankbook

import (
	"encoding/json"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ledgerCurrency is the ISO code every amount in a bankbook is denominated in.
const ledgerCurrency = money.USD

// Money represents an exact monetary value.
//
// It is backed by a decimal so that sums and interest computations never
// accumulate binary floating-point drift. Construct it from a string or a
// decimal, never from a float.
type Money struct {
	value decimal.Decimal
}

// M wraps a decimal value into Money.
func M(value decimal.Decimal) Money { return Money{value: value} }

// ParseMoney parses a decimal string such as "100.00" or "-5.75" into Money.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, err
	}
	return Money{value: d}, nil
}

// MustParseMoney is like ParseMoney but panics on error.
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err.Error())
	}
	return m
}

// currency returns the ledger currency metadata (symbol, grouping, fraction).
func (m Money) currency() *money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return money.New(0, ledgerCurrency).Currency()
}

// Decimal returns the underlying exact decimal value.
func (m Money) Decimal() decimal.Decimal { return m.value }

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) LessThanOrEqual(n Money) bool    { return m.value.LessThanOrEqual(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }

// MulRate applies a rate to the amount, e.g. for interest computation.
func (m Money) MulRate(r Rate) Money { return Money{value: m.value.Mul(r.value)} }

// Round quantizes the amount to the currency's minor unit, rounding
// halves away from zero (half-up for positive amounts).
func (m Money) Round() Money {
	return Money{value: m.value.Round(int32(m.currency().Fraction))}
}

// String renders the amount as "$#,##0.00", with the sign between the
// currency symbol and the digits: "$-5.75", "$1,234.50".
func (m Money) String() string {
	cur := m.currency()

	rounded := m.Round().value
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	fixed := rounded.Abs().StringFixed(int32(cur.Fraction))

	units, cents, _ := strings.Cut(fixed, ".")
	var b strings.Builder
	b.WriteString(cur.Grapheme)
	b.WriteString(sign)
	for i, r := range units {
		if i > 0 && (len(units)-i)%3 == 0 {
			b.WriteString(cur.Thousand)
		}
		b.WriteRune(r)
	}
	if cur.Fraction > 0 {
		b.WriteString(cur.Decimal)
		b.WriteString(cents)
	}
	return b.String()
}

// MarshalJSON persists the exact decimal value as a bare JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.String()), nil
}

// UnmarshalJSON reads the exact decimal value from a JSON number or string.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	m.value = d
	return nil
}
