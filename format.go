package isoskema

import "time"

// Format names a lexical date/time format checked by the Format facet.
type Format string

const (
	FormatNone        Format = ""
	FormatISODate     Format = "ISODate"     // xs:date, e.g. 2024-05-01 (optional zone).
	FormatISODateTime Format = "ISODateTime" // xs:dateTime, e.g. 2024-05-01T10:00:00.123-05:00 (optional zone).
	FormatISOTime     Format = "ISOTime"     // xs:time, e.g. 10:00:00Z.
	FormatISOYear     Format = "ISOYear"     // xs:gYear, e.g. 2024.
)

var formatLayouts = map[Format][]string{
	// ".999999999" makes the fractional seconds optional.
	FormatISODateTime: {"2006-01-02T15:04:05.999999999Z07:00", "2006-01-02T15:04:05.999999999"},
	FormatISODate:     {"2006-01-02", "2006-01-02Z07:00"},
	FormatISOTime:     {"15:04:05.999999999Z07:00", "15:04:05.999999999"},
	FormatISOYear:     {"2006"},
}

// Valid reports whether s parses with one of the layouts of the format.
// Unknown formats accept every value.
func (f Format) Valid(s string) bool {
	layouts, ok := formatLayouts[f]
	if !ok {
		return true
	}
	for _, l := range layouts {
		if _, err := time.Parse(l, s); err == nil {
			return true
		}
	}
	return false
}

func (f Format) jsonSchemaFormat() string {
	switch f {
	case FormatISODate:
		return "date"
	case FormatISODateTime:
		return "date-time"
	case FormatISOTime:
		return "time"
	default:
		return string(f)
	}
}
