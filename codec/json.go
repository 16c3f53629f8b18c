package codec

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// DecodeJSON unmarshals a FedNow JSON body into dst. Unknown members and
// duplicate member names are errors.
func DecodeJSON(data []byte, dst any) error {
	if err := checkDuplicateKeys(data); err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// EncodeJSON marshals v with two-space indentation.
func EncodeJSON(v any) ([]byte, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return append(b, '\n'), nil
}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type dupFrame struct {
	kind         containerKind
	keys         map[string]struct{}
	expectingKey bool
	// seg is the pointer segment of the container in its parent.
	seg string
	// key is the last member name read in an object; idx the next array index.
	key string
	idx int
}

// checkDuplicateKeys walks the token stream and reports the first repeated
// member name together with the JSON Pointer of its object. Syntax errors
// are left to the decoder.
func checkDuplicateKeys(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var stack []dupFrame

	// childSeg returns the segment of the value that starts next.
	childSeg := func() string {
		if len(stack) == 0 {
			return ""
		}
		top := &stack[len(stack)-1]
		if top.kind == kindArray {
			s := fmt.Sprint(top.idx)
			top.idx++
			return s
		}
		return top.key
	}
	valueDone := func() {
		if len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.kind == kindObject {
				top.expectingKey = true
			}
		}
	}
	pointer := func() string {
		var b bytes.Buffer
		for _, f := range stack[1:] {
			b.WriteByte('/')
			b.WriteString(f.seg)
		}
		if b.Len() == 0 {
			return "/"
		}
		return b.String()
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			// io.EOF ends the walk; syntax errors are reported by the decoder.
			return nil
		}
		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{':
				stack = append(stack, dupFrame{kind: kindObject, keys: map[string]struct{}{}, expectingKey: true, seg: childSeg()})
			case '[':
				stack = append(stack, dupFrame{kind: kindArray, seg: childSeg()})
			case '}', ']':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
				valueDone()
			}
		case string:
			if len(stack) > 0 {
				top := &stack[len(stack)-1]
				if top.kind == kindObject && top.expectingKey {
					if _, ok := top.keys[v]; ok {
						return fmt.Errorf("%w: %q in %s", ErrDuplicateKey, v, pointer())
					}
					top.keys[v] = struct{}{}
					top.key = v
					top.expectingKey = false
					continue
				}
			}
			childSeg()
			valueDone()
		default:
			childSeg()
			valueDone()
		}
	}
}
