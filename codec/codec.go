// Package codec moves messages between their wire forms (ISO 20022 XML and
// FedNow JSON) and the typed records that validate them. It only decodes and
// encodes; constraint checking is left to the records' ValidateAt methods.
package codec

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// Format is a wire format.
type Format string

const (
	FormatXML  Format = "xml"
	FormatJSON Format = "json"
)

var (
	// ErrUnknownFormat is returned when the payload is neither XML nor JSON.
	ErrUnknownFormat = errors.New("codec: unknown wire format")
	// ErrDuplicateKey is returned when a JSON object repeats a member name.
	ErrDuplicateKey = errors.New("codec: duplicate JSON key")
)

// Envelope describes a payload without decoding its body.
type Envelope struct {
	Format Format
	// Root is the local name of the XML root element ("Document"); empty for
	// JSON.
	Root string
	// Namespace is the XML namespace of the root element; empty for JSON.
	Namespace string
}

// Sniff inspects the first significant byte of data and, for XML, reads
// tokens up to the root element.
func Sniff(data []byte) (Envelope, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n\uFEFF")
	if len(trimmed) == 0 {
		return Envelope{}, ErrUnknownFormat
	}
	switch trimmed[0] {
	case '{', '[':
		return Envelope{Format: FormatJSON}, nil
	case '<':
		return sniffXML(trimmed)
	default:
		return Envelope{}, ErrUnknownFormat
	}
}

func sniffXML(data []byte) (Envelope, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return Envelope{}, fmt.Errorf("%w: no root element", ErrUnknownFormat)
		}
		if err != nil {
			return Envelope{}, fmt.Errorf("sniff xml: %w", err)
		}
		if se, ok := tok.(xml.StartElement); ok {
			return Envelope{Format: FormatXML, Root: se.Name.Local, Namespace: se.Name.Space}, nil
		}
	}
}

// Decode decodes data in format f into dst.
func Decode(f Format, data []byte, dst any) error {
	switch f {
	case FormatXML:
		return DecodeXML(data, dst)
	case FormatJSON:
		return DecodeJSON(data, dst)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// Encode encodes v in format f.
func Encode(f Format, v any) ([]byte, error) {
	switch f {
	case FormatXML:
		return EncodeXML(v)
	case FormatJSON:
		return EncodeJSON(v)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}
