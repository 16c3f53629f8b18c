package isoskema

import (
	"errors"
	"fmt"
	"strconv"
)

// Code is the stable numeric category of a validation failure.
type Code int

// Issue codes. The numeric values are part of the wire contract with callers
// that log or forward them; never renumber.
const (
	CodeTooShort                   Code = 1001
	CodeTooLong                    Code = 1002
	CodeBelowMinimum               Code = 1003
	CodeAboveMaximum               Code = 1004
	CodePatternMismatch            Code = 1005
	CodeInvalidEnumeration         Code = 1006
	CodeChoiceViolation            Code = 1007
	CodeMissingRequiredAlternative Code = 1008
	CodeTooFewItems                Code = 1009
	CodeTooManyItems               Code = 1010
	CodeInvalidFormat              Code = 1011
	CodeFractionDigits             Code = 1012
	CodeTotalDigits                Code = 1013
)

var codeNames = map[Code]string{
	CodeTooShort:                   "too_short",
	CodeTooLong:                    "too_long",
	CodeBelowMinimum:               "below_minimum",
	CodeAboveMaximum:               "above_maximum",
	CodePatternMismatch:            "pattern_mismatch",
	CodeInvalidEnumeration:         "invalid_enumeration",
	CodeChoiceViolation:            "choice_violation",
	CodeMissingRequiredAlternative: "missing_required_alternative",
	CodeTooFewItems:                "too_few_items",
	CodeTooManyItems:               "too_many_items",
	CodeInvalidFormat:              "invalid_format",
	CodeFractionDigits:             "fraction_digits",
	CodeTotalDigits:                "total_digits",
}

// String returns the snake_case name of the code (for example "too_long"),
// which is also the i18n message key.
func (c Code) String() string {
	if n, ok := codeNames[c]; ok {
		return n
	}
	return "code_" + strconv.Itoa(int(c))
}

// Codes lists every known code in ascending order.
func Codes() []Code {
	out := make([]Code, 0, len(codeNames))
	for c := CodeTooShort; c <= CodeTotalDigits; c++ {
		out = append(out, c)
	}
	return out
}

// Issue is the single failure produced by a validation walk.
type Issue struct {
	Code    Code
	Path    string // JSON Pointer of the violating node (for example: /GetMmb/MsgHdr/MsgId).
	Field   string // Schema element name of the violating node.
	Message string
	// Params carries structured parameters (for example {"max": 35, "got": 36})
	// for i18n and observability.
	Params map[string]any
}

// Error renders "<code> <name> at <path>: <message>".
func (i *Issue) Error() string {
	return fmt.Sprintf("%d %s at %s: %s", int(i.Code), i.Code, i.Path, i.Message)
}

// AsIssue extracts the Issue from an error using errors.As internally.
func AsIssue(err error) (*Issue, bool) {
	if err == nil {
		return nil, false
	}
	var iss *Issue
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// CodeOf returns the code carried by err, or 0 when err is not an Issue.
func CodeOf(err error) Code {
	if iss, ok := AsIssue(err); ok {
		return iss.Code
	}
	return 0
}
