package isoskema

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	js "github.com/reoring/isoskema/jsonschema"
)

// Facets is the constraint set of one schema simple type. A Facets value is
// declared once per type (normally in a package-level var) and is read-only
// afterwards, so it is safe to share between goroutines.
//
// Text checks run in the order MinLength, MaxLength, Pattern, Enum, Format.
// Decimal checks run in the order finite, MinInclusive, MaxInclusive,
// TotalDigits, FractionDigits.
type Facets struct {
	name string

	minLen, maxLen       int
	hasMinLen, hasMaxLen bool

	pattern string
	re      *regexp.Regexp

	enum    []string
	enumSet map[string]struct{}

	format Format

	minIncl, maxIncl       float64
	hasMinIncl, hasMaxIncl bool
	fractionDigits         int
	totalDigits            int
}

// NewFacets declares an empty facet set for the named schema type and adds it
// to the Catalog.
func NewFacets(name string) *Facets {
	f := &Facets{name: name}
	register(f)
	return f
}

// Name returns the schema type name the facets were declared for.
func (f *Facets) Name() string { return f.name }

// Length sets inclusive minimum and maximum character counts.
func (f *Facets) Length(min, max int) *Facets { return f.MinLength(min).MaxLength(max) }

// MinLength sets the inclusive minimum character count.
func (f *Facets) MinLength(n int) *Facets {
	f.minLen, f.hasMinLen = n, true
	return f
}

// MaxLength sets the inclusive maximum character count.
func (f *Facets) MaxLength(n int) *Facets {
	f.maxLen, f.hasMaxLen = n, true
	return f
}

// Pattern sets a regular expression the whole value must match. The
// expression is compiled here, once; an invalid expression panics because
// facets are schema data fixed at build time.
func (f *Facets) Pattern(expr string) *Facets {
	f.pattern = expr
	f.re = regexp.MustCompile(`^(?:` + expr + `)$`)
	return f
}

// Enum restricts the value to a closed set of codes.
func (f *Facets) Enum(codes ...string) *Facets {
	f.enum = append([]string(nil), codes...)
	f.enumSet = make(map[string]struct{}, len(codes))
	for _, c := range codes {
		f.enumSet[c] = struct{}{}
	}
	return f
}

// Format requires the value to parse as the given lexical date/time format.
func (f *Facets) Format(fm Format) *Facets {
	f.format = fm
	return f
}

// MinInclusive sets the inclusive numeric lower bound.
func (f *Facets) MinInclusive(v float64) *Facets {
	f.minIncl, f.hasMinIncl = v, true
	return f
}

// MaxInclusive sets the inclusive numeric upper bound.
func (f *Facets) MaxInclusive(v float64) *Facets {
	f.maxIncl, f.hasMaxIncl = v, true
	return f
}

// FractionDigits limits the number of digits after the decimal point.
func (f *Facets) FractionDigits(n int) *Facets {
	f.fractionDigits = n
	return f
}

// TotalDigits limits the number of significant digits.
func (f *Facets) TotalDigits(n int) *Facets {
	f.totalDigits = n
	return f
}

// Codes returns the enumeration, if any.
func (f *Facets) Codes() []string { return append([]string(nil), f.enum...) }

// CheckText validates s at path p and returns the first violated facet.
func (f *Facets) CheckText(p PathRef, s string) error {
	if f.hasMinLen || f.hasMaxLen {
		n := utf8.RuneCountInString(s)
		if f.hasMinLen && n < f.minLen {
			return p.Issue(CodeTooShort, map[string]any{"min": f.minLen, "got": n})
		}
		if f.hasMaxLen && n > f.maxLen {
			return p.Issue(CodeTooLong, map[string]any{"max": f.maxLen, "got": n})
		}
	}
	if f.re != nil && !f.re.MatchString(s) {
		return p.Issue(CodePatternMismatch, map[string]any{"pattern": f.pattern})
	}
	if f.enumSet != nil {
		if _, ok := f.enumSet[s]; !ok {
			return p.Issue(CodeInvalidEnumeration, map[string]any{"got": s, "allowed": strings.Join(f.enum, ",")})
		}
	}
	if f.format != FormatNone && !f.format.Valid(s) {
		return p.Issue(CodeInvalidFormat, map[string]any{"format": string(f.format)})
	}
	return nil
}

// CheckDecimal validates v at path p and returns the first violated facet.
func (f *Facets) CheckDecimal(p PathRef, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return p.Issue(CodeInvalidFormat, map[string]any{"format": "decimal"})
	}
	if f.hasMinIncl && v < f.minIncl {
		return p.Issue(CodeBelowMinimum, map[string]any{"min": formatDecimal(f.minIncl), "got": formatDecimal(v)})
	}
	if f.hasMaxIncl && v > f.maxIncl {
		return p.Issue(CodeAboveMaximum, map[string]any{"max": formatDecimal(f.maxIncl), "got": formatDecimal(v)})
	}
	if f.totalDigits > 0 || f.fractionDigits > 0 {
		total, frac := countDigits(v)
		if f.totalDigits > 0 && total > f.totalDigits {
			return p.Issue(CodeTotalDigits, map[string]any{"max": f.totalDigits, "got": total})
		}
		if f.fractionDigits > 0 && frac > f.fractionDigits {
			return p.Issue(CodeFractionDigits, map[string]any{"max": f.fractionDigits, "got": frac})
		}
	}
	return nil
}

// JSONSchema projects the facets into a JSON Schema fragment.
func (f *Facets) JSONSchema() *js.Schema {
	out := &js.Schema{Title: f.name, Type: "string", Pattern: f.pattern, Enum: f.Codes()}
	if f.hasMinLen {
		n := f.minLen
		out.MinLength = &n
	}
	if f.hasMaxLen {
		n := f.maxLen
		out.MaxLength = &n
	}
	if f.format != FormatNone {
		out.Format = f.format.jsonSchemaFormat()
	}
	if f.hasMinIncl || f.hasMaxIncl || f.fractionDigits > 0 || f.totalDigits > 0 {
		out.Type = "number"
	}
	if f.hasMinIncl {
		v := f.minIncl
		out.Minimum = &v
	}
	if f.hasMaxIncl {
		v := f.maxIncl
		out.Maximum = &v
	}
	if f.fractionDigits > 0 {
		step := math.Pow10(-f.fractionDigits)
		out.MultipleOf = &step
	}
	return out
}

// formatDecimal renders a float64 without exponent and without trailing zeros.
func formatDecimal(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// countDigits returns the significant digit count and the fraction digit
// count of the shortest decimal rendering of v.
func countDigits(v float64) (total, frac int) {
	s := formatDecimal(math.Abs(v))
	intPart, fracPart, _ := strings.Cut(s, ".")
	intPart = strings.TrimLeft(intPart, "0")
	frac = len(fracPart)
	if intPart == "" {
		// 0.00123 has three significant digits.
		return len(strings.TrimLeft(fracPart, "0")), frac
	}
	return len(intPart) + frac, frac
}
