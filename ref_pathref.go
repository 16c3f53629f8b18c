package isoskema

import (
	"strconv"
	"strings"
)

// PathRef builds JSON Pointer paths in a chain-safe way and creates Issues.
// Each step shares its parent, so building a child never copies the prefix.
type PathRef interface {
	Field(name string) PathRef
	Index(i int) PathRef
	// Name returns the schema element name of the node: the last field name,
	// also for indexed elements.
	Name() string
	Pointer() string
	Issue(code Code, data map[string]any) *Issue
}

// Root returns the path of a document root ("/").
func Root() PathRef { return &pathRef{} }

type pathRef struct {
	parent *pathRef
	seg    string
	name   string
}

func (p *pathRef) Field(name string) PathRef {
	if name == "" {
		return p
	}
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return &pathRef{parent: p, seg: esc, name: name}
}

func (p *pathRef) Index(i int) PathRef {
	return &pathRef{parent: p, seg: strconv.Itoa(i), name: p.name}
}

func (p *pathRef) Name() string { return p.name }

func (p *pathRef) Pointer() string {
	if p.parent == nil {
		return "/"
	}
	var segs []string
	for cur := p; cur.parent != nil; cur = cur.parent {
		segs = append(segs, cur.seg)
	}
	b := &strings.Builder{}
	for i := len(segs) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(segs[i])
	}
	return b.String()
}

func (p *pathRef) Issue(code Code, data map[string]any) *Issue {
	return newIssue(p, code, data)
}
