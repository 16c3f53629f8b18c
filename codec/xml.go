package codec

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// DecodeXML unmarshals an ISO 20022 document. Documents declare their
// namespace on the XMLName field, so a payload of another message version is
// rejected here rather than decoded into an empty record. Unlike DecodeJSON,
// unknown child elements are ignored, not reported.
func DecodeXML(data []byte, dst any) error {
	if err := xml.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode xml: %w", err)
	}
	return nil
}

// EncodeXML marshals v with an XML declaration and two-space indentation.
func EncodeXML(v any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encode xml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode xml: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
