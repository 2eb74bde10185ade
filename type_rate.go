package bankbook

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Rate is an exact decimal rate, held as a fraction (0.33% is 0.0033).
// Like Money it is never constructed from a binary float.
type Rate struct {
	value decimal.Decimal
}

// ParseRate parses a rate from a string. Both the percent form "0.33%" and
// the fractional form "0.0033" are accepted.
func ParseRate(s string) (Rate, error) {
	s = strings.TrimSpace(s)
	percent := strings.HasSuffix(s, "%")
	d, err := decimal.NewFromString(strings.TrimSuffix(s, "%"))
	if err != nil {
		return Rate{}, err
	}
	if percent {
		d = d.Div(hundred)
	}
	return Rate{value: d}, nil
}

// MustParseRate is like ParseRate but panics on error.
func MustParseRate(s string) Rate {
	r, err := ParseRate(s)
	if err != nil {
		panic(err.Error())
	}
	return r
}

func (r Rate) Equal(q Rate) bool { return r.value.Equal(q.value) }
func (r Rate) IsZero() bool      { return r.value.IsZero() }

// Decimal returns the underlying fractional value.
func (r Rate) Decimal() decimal.Decimal { return r.value }

// String renders the rate in percent form, e.g. "0.33%".
func (r Rate) String() string {
	return r.value.Mul(hundred).String() + "%"
}

// MarshalJSON persists the rate in its percent form.
func (r Rate) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON reads a rate from its percent or fractional string form.
func (r *Rate) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseRate(str)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
