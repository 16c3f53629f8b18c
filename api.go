package isoskema

// Validator is implemented by every constrained value and composite record.
// ValidateAt checks the receiver located at p and returns nil or the first
// *Issue found in a depth-first walk. It never mutates the receiver.
type Validator interface {
	ValidateAt(p PathRef) error
}

// Validate walks v from the document root.
func Validate(v Validator) error {
	return v.ValidateAt(Root())
}

// Is reports whether v validates.
func Is(v Validator) bool { return Validate(v) == nil }

// FieldCheck validates one field of a composite record located at parent.
type FieldCheck func(parent PathRef) error

// Fields runs checks in declaration order and returns the first failure
// unchanged. Later checks are not evaluated.
func Fields(p PathRef, checks ...FieldCheck) error {
	for _, c := range checks {
		if c == nil {
			continue
		}
		if err := c(p); err != nil {
			return err
		}
	}
	return nil
}

// Required delegates to v unconditionally.
func Required(name string, v Validator) FieldCheck {
	return func(parent PathRef) error {
		return v.ValidateAt(parent.Field(name))
	}
}

// Optional delegates to *v when v is non-nil. Absence is always valid.
func Optional[V Validator](name string, v *V) FieldCheck {
	return func(parent PathRef) error {
		if v == nil {
			return nil
		}
		return (*v).ValidateAt(parent.Field(name))
	}
}

// Unbounded is the max value of Repeated for maxOccurs="unbounded".
const Unbounded = -1

// Repeated checks the cardinality of items against [min, max] and then
// validates each element in order, stopping at the first failing element.
// Elements are reported at /name/<index>.
func Repeated[V Validator](name string, items []V, min, max int) FieldCheck {
	return func(parent PathRef) error {
		p := parent.Field(name)
		if len(items) < min {
			return p.Issue(CodeTooFewItems, map[string]any{"min": min, "got": len(items)})
		}
		if max != Unbounded && len(items) > max {
			return p.Issue(CodeTooManyItems, map[string]any{"max": max, "got": len(items)})
		}
		for i := range items {
			if err := items[i].ValidateAt(p.Index(i)); err != nil {
				return err
			}
		}
		return nil
	}
}

// Each is shorthand for Repeated(name, items, 0, Unbounded).
func Each[V Validator](name string, items []V) FieldCheck {
	return Repeated(name, items, 0, Unbounded)
}

// Record adapts a plain function into a Validator, for records assembled at
// run time (tests, ad-hoc envelopes).
type Record func(p PathRef) error

// ValidateAt calls the function.
func (r Record) ValidateAt(p PathRef) error { return r(p) }
