package isoskema

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Rule binds a constrained value type to its facets. Implementations are
// zero-size types whose Facets method returns a package-level *Facets:
//
//	var max35Facets = isoskema.NewFacets("Max35Text").Length(1, 35)
//
//	type max35 struct{}
//
//	func (max35) Facets() *isoskema.Facets { return max35Facets }
//
//	type Max35Text = isoskema.Text[max35]
type Rule interface {
	Facets() *Facets
}

// Text is a string constrained by the facets of R.
type Text[R Rule] string

// ValidateAt checks the value against R's facets, reporting at p.
func (t Text[R]) ValidateAt(p PathRef) error {
	var r R
	return r.Facets().CheckText(p, string(t))
}

// Validate checks the value as a standalone document root.
func (t Text[R]) Validate() error { return t.ValidateAt(Root()) }

func (t Text[R]) String() string { return string(t) }

// Ptr returns a pointer to a copy of t, for populating optional fields.
func (t Text[R]) Ptr() *Text[R] { return &t }

// Decimal is a float64 constrained by the facets of R. It renders without an
// exponent on every wire format.
type Decimal[R Rule] float64

// ValidateAt checks the value against R's facets, reporting at p.
func (d Decimal[R]) ValidateAt(p PathRef) error {
	var r R
	return r.Facets().CheckDecimal(p, float64(d))
}

// Validate checks the value as a standalone document root.
func (d Decimal[R]) Validate() error { return d.ValidateAt(Root()) }

func (d Decimal[R]) String() string { return formatDecimal(float64(d)) }

// MarshalText implements encoding.TextMarshaler (used for XML character data
// and attributes).
func (d Decimal[R]) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Decimal[R]) UnmarshalText(b []byte) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(string(b)), 64)
	if err != nil {
		return fmt.Errorf("decimal %q: %w", b, err)
	}
	*d = Decimal[R](v)
	return nil
}

// MarshalJSON emits a JSON number.
func (d Decimal[R]) MarshalJSON() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
func (d *Decimal[R]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) >= 2 && b[0] == '"' && b[len(b)-1] == '"' {
		b = b[1 : len(b)-1]
	}
	return d.UnmarshalText(b)
}
