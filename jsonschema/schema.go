package jsonschema

// Schema is a minimal JSON Schema representation used for exporting facet
// sets. Only the keywords a facet can produce are modeled.
type Schema struct {
	// Core
	Title  string `json:"title,omitempty" yaml:"title,omitempty"`
	Type   string `json:"type,omitempty" yaml:"type,omitempty"`
	Format string `json:"format,omitempty" yaml:"format,omitempty"`

	// String
	MinLength *int     `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Pattern   string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Enum      []string `json:"enum,omitempty" yaml:"enum,omitempty"`

	// Number
	Minimum    *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum    *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	MultipleOf *float64 `json:"multipleOf,omitempty" yaml:"multipleOf,omitempty"`
}
