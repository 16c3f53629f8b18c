package isoskema

import "strings"

// Arm is one alternative of a choice group.
type Arm struct {
	name    string
	present bool
	check   FieldCheck
}

// Alt declares a validated alternative. A nil v means the arm is not
// populated.
func Alt[V Validator](name string, v *V) Arm {
	return Arm{name: name, present: v != nil, check: Optional(name, v)}
}

// Flag declares an alternative without constraints of its own (for example a
// plain indicator or an empty element); only its presence matters.
func Flag(name string, present bool) Arm {
	return Arm{name: name, present: present}
}

// ExactlyOne validates a choice group located at p: exactly one arm must be
// populated, and that arm is validated. Two or more populated arms yield
// CodeChoiceViolation; none yields CodeMissingRequiredAlternative. Arms are
// counted before any of them is validated.
func ExactlyOne(p PathRef, arms ...Arm) error {
	var chosen *Arm
	var populated []string
	for i := range arms {
		if !arms[i].present {
			continue
		}
		populated = append(populated, arms[i].name)
		if chosen == nil {
			chosen = &arms[i]
		}
	}
	switch {
	case len(populated) > 1:
		return p.Issue(CodeChoiceViolation, map[string]any{"got": strings.Join(populated, ",")})
	case chosen == nil:
		names := make([]string, len(arms))
		for i := range arms {
			names[i] = arms[i].name
		}
		return p.Issue(CodeMissingRequiredAlternative, map[string]any{"allowed": strings.Join(names, ",")})
	case chosen.check == nil:
		return nil
	default:
		return chosen.check(p)
	}
}

// Selected returns the name of the first populated arm, or "" when none is.
func Selected(arms ...Arm) string {
	for _, a := range arms {
		if a.present {
			return a.name
		}
	}
	return ""
}
