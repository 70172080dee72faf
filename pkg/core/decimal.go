package core

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Decimal is an arbitrary-precision decimal that encodes to its exact textual form.
// It decodes from both JSON strings ("0.0010") and JSON numbers.
type Decimal struct {
	apd.Decimal
}

// NewDecimal parses s into a Decimal.
func NewDecimal(s string) (Decimal, error) {
	var d Decimal
	if _, _, err := d.Decimal.SetString(s); err != nil {
		return Decimal{}, fmt.Errorf("parse decimal %q: %w", s, err)
	}
	return d, nil
}

// MustDecimal is NewDecimal that panics on malformed input. Intended for literals.
func MustDecimal(s string) Decimal {
	d, err := NewDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DecimalFromFloat converts f using its shortest decimal representation.
func DecimalFromFloat(f float64) Decimal {
	var d Decimal
	if _, err := d.Decimal.SetFloat64(f); err != nil {
		return Decimal{}
	}
	return d
}

// Ptr returns a pointer to a copy of d, for optional request fields.
func (d Decimal) Ptr() *Decimal {
	return &d
}

// String renders the decimal in plain notation without an exponent.
func (d Decimal) String() string {
	return d.Decimal.Text('f')
}

// MarshalJSON encodes the decimal as a JSON string.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return quote(d.String()), nil
}

// UnmarshalJSON accepts a quoted or bare number. An empty string or null leaves zero.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		d.Decimal = apd.Decimal{}
		return nil
	}
	if _, _, err := d.Decimal.SetString(s); err != nil {
		return fmt.Errorf("decode decimal %q: %w", s, err)
	}
	return nil
}
