package isoskema

import (
	"fmt"

	"github.com/reoring/isoskema/i18n"
)

// IssueAt creates an Issue at the given path with provided code and params map.
// The message is rendered through the current i18n Translator with the field
// name and every param available as placeholders.
func IssueAt(p PathRef, code Code, params map[string]any) *Issue {
	return newIssue(p, code, params)
}

func newIssue(p PathRef, code Code, params map[string]any) *Issue {
	field := p.Name()
	if field == "" {
		field = "value"
	}
	data := make(map[string]string, len(params)+1)
	for k, v := range params {
		data[k] = fmt.Sprint(v)
	}
	data["field"] = field
	return &Issue{
		Code:    code,
		Path:    p.Pointer(),
		Field:   p.Name(),
		Message: i18n.T(code.String(), data),
		Params:  params,
	}
}
