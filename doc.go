// Package isoskema provides:
//
// - Typed constrained values for ISO 20022 simple types (Text[R], Decimal[R]) whose
// facets (length, pattern, enumeration, bounds, digits, date/time format) are declared
// once per type and shared by every validation
// - A composite validation protocol (Fields/Required/Optional/Repeated) that walks a
// record tree depth-first in declared field order and stops at the first violation
// - Choice groups (ExactlyOne/Alt/Flag) that require exactly one populated alternative
// - A stable error model via Issue (numeric code, JSON Pointer, field name, message)
//
// Design policy:
// - Keep only the engine in the root package; schema data lives under iso20022/ and
// fednow/, wire codecs under codec/, message lookup under registry/, the CLI under
// cmd/isoskema.
// - Validation is pure: no I/O, no logging, no mutation of the validated tree.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	doc, _, err := registry.Default().Decode(data, "")
//	if err != nil {
//		return err // malformed markup or unknown message
//	}
//	if err := isoskema.Validate(doc); err != nil {
//		iss, _ := isoskema.AsIssue(err)
//		log.Printf("reject: %d at %s: %s", iss.Code, iss.Path, iss.Message)
//	}
//
// Declaring a record:
//
//	func (h MessageHeader9) ValidateAt(p isoskema.PathRef) error {
//		return isoskema.Fields(p,
//			isoskema.Required("MsgId", h.MsgID),
//			isoskema.Optional("CreDtTm", h.CreDtTm),
//			isoskema.Optional("ReqTp", h.ReqTp),
//		)
//	}
package isoskema
