// Package keyexchange models the FedNow message-signature key exchange API:
// the JSON bodies used to add and revoke customer public keys and to list the
// active keys of FedNow and of the customer.
package keyexchange

import (
	"bytes"

	"github.com/goccy/go-json"

	iso "github.com/reoring/isoskema"
)

// Message identifiers of the JSON bodies, as used by the registry.
const (
	MessageID           = "fednow.keyexchange"
	OperationResponseID = "fednow.keyexchange.response"
	PublicKeysID        = "fednow.publickeys"
)

var (
	max300AlnumFacets = iso.NewFacets("Max300AlphaNumericString").Length(1, 300).Pattern(`[A-Za-z0-9\-_]+`)
	max50AlnumFacets  = iso.NewFacets("Max50AlphaNumericString").Length(1, 50).Pattern(`[A-Za-z0-9\-_]+`)
	max300TextFacets  = iso.NewFacets("Max300Text").Length(1, 300)
	routingFacets     = iso.NewFacets("RoutingNumberFRS1").Pattern(`[0-9]{9}`)
)

type (
	max300Alnum struct{}
	max50Alnum  struct{}
	max300Text  struct{}
	routing     struct{}
)

func (max300Alnum) Facets() *iso.Facets { return max300AlnumFacets }
func (max50Alnum) Facets() *iso.Facets  { return max50AlnumFacets }
func (max300Text) Facets() *iso.Facets  { return max300TextFacets }
func (routing) Facets() *iso.Facets     { return routingFacets }

type (
	Max300AlphaNumericString = iso.Text[max300Alnum]
	Max50AlphaNumericString  = iso.Text[max50Alnum]
	Max300Text               = iso.Text[max300Text]
	// RoutingNumberFRS1 is a nine digit ABA routing number.
	RoutingNumberFRS1 = iso.Text[routing]
)

// FedNowMessageSignatureKeyStatus reports the state of a key as FedNow sends
// it. Neither field carries a code list or format, so any value is accepted.
type FedNowMessageSignatureKeyStatus struct {
	KeyStatus      string `json:"KeyStatus"`
	StatusDateTime string `json:"StatusDateTime"`
}

func (FedNowMessageSignatureKeyStatus) ValidateAt(iso.PathRef) error { return nil }

// FedNowMessageSignatureKey is a public key used to verify message
// signatures. EncodedPublicKey is opaque to validation.
type FedNowMessageSignatureKey struct {
	FedNowKeyID         Max300AlphaNumericString `json:"FedNowKeyID"`
	Name                Max300AlphaNumericString `json:"Name"`
	EncodedPublicKey    string                   `json:"EncodedPublicKey"`
	Encoding            Max50AlphaNumericString  `json:"Encoding"`
	Algorithm           *Max50AlphaNumericString `json:"Algorithm,omitempty"`
	KeyCreationDateTime *string                  `json:"KeyCreationDateTime,omitempty"`
}

func (k FedNowMessageSignatureKey) ValidateAt(p iso.PathRef) error {
	return iso.Fields(p,
		iso.Required("FedNowKeyID", k.FedNowKeyID),
		iso.Required("Name", k.Name),
		iso.Required("Encoding", k.Encoding),
		iso.Optional("Algorithm", k.Algorithm),
	)
}

type KeyAddition struct {
	Key *FedNowMessageSignatureKey `json:"Key,omitempty"`
}

func (a KeyAddition) ValidateAt(p iso.PathRef) error {
	return iso.Fields(p, iso.Optional("Key", a.Key))
}

// KeyRevocation withdraws a previously added key. On the wire the arm is
// either a bare reason string ({"KeyRevocation":"compromised"}) or an object
// carrying the key id and a status description.
type KeyRevocation struct {
	Reason                  *string                   `json:"KeyRevocation,omitempty"`
	FedNowStatusDescription *Max300Text               `json:"FedNowStatusDescription,omitempty"`
	FedNowKeyID             *Max300AlphaNumericString `json:"FedNowKeyID,omitempty"`
}

// UnmarshalJSON accepts both the string and the object form.
func (r *KeyRevocation) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var reason string
		if err := json.Unmarshal(b, &reason); err != nil {
			return err
		}
		*r = KeyRevocation{Reason: &reason}
		return nil
	}
	type object KeyRevocation
	var v object
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	*r = KeyRevocation(v)
	return nil
}

func (r KeyRevocation) ValidateAt(p iso.PathRef) error {
	return iso.Fields(p,
		iso.Optional("FedNowStatusDescription", r.FedNowStatusDescription),
		iso.Optional("FedNowKeyID", r.FedNowKeyID),
	)
}

// FedNowMessageSignatureKeyExchange is the request body of a key operation:
// either an addition or a revocation.
type FedNowMessageSignatureKeyExchange struct {
	KeyAddition   *KeyAddition   `json:"KeyAddition,omitempty"`
	KeyRevocation *KeyRevocation `json:"KeyRevocation,omitempty"`
}

func (x FedNowMessageSignatureKeyExchange) ValidateAt(p iso.PathRef) error {
	return iso.ExactlyOne(p, x.arms()...)
}

// Validate walks the request from the root.
func (x FedNowMessageSignatureKeyExchange) Validate() error { return iso.Validate(x) }

// Operation returns "KeyAddition", "KeyRevocation" or "".
func (x FedNowMessageSignatureKeyExchange) Operation() string { return iso.Selected(x.arms()...) }

func (x FedNowMessageSignatureKeyExchange) arms() []iso.Arm {
	return []iso.Arm{iso.Alt("KeyAddition", x.KeyAddition), iso.Alt("KeyRevocation", x.KeyRevocation)}
}

// AddKey builds an addition request.
func AddKey(k FedNowMessageSignatureKey) FedNowMessageSignatureKeyExchange {
	return FedNowMessageSignatureKeyExchange{KeyAddition: &KeyAddition{Key: &k}}
}

// RevokeKey builds a revocation request for keyID.
func RevokeKey(keyID string) FedNowMessageSignatureKeyExchange {
	id := Max300AlphaNumericString(keyID)
	return FedNowMessageSignatureKeyExchange{KeyRevocation: &KeyRevocation{FedNowKeyID: &id}}
}

type FedNowCustomerMessageSignatureKeyOperationResponse struct {
	FedNowKeyID Max300AlphaNumericString `json:"FedNowKeyID"`
	Status      string                   `json:"Status"`
	ErrorCode   *string                  `json:"ErrorCode,omitempty"`
}

func (r FedNowCustomerMessageSignatureKeyOperationResponse) ValidateAt(p iso.PathRef) error {
	return iso.Fields(p, iso.Required("FedNowKeyID", r.FedNowKeyID))
}

// Validate walks the response from the root.
func (r FedNowCustomerMessageSignatureKeyOperationResponse) Validate() error { return iso.Validate(r) }

// GetAllFedNowActivePublicKeys requests the keys FedNow currently signs with. It has no body.
type GetAllFedNowActivePublicKeys struct{}

func (GetAllFedNowActivePublicKeys) ValidateAt(iso.PathRef) error { return nil }

// GetAllCustomerPublicKeys requests the keys registered for the calling participant. It has no body.
type GetAllCustomerPublicKeys struct{}

func (GetAllCustomerPublicKeys) ValidateAt(iso.PathRef) error { return nil }

type FedNowPublicKeyResponse struct {
	FedNowMessageSignatureKeyStatus FedNowMessageSignatureKeyStatus `json:"FedNowMessageSignatureKeyStatus"`
	FedNowMessageSignatureKey       FedNowMessageSignatureKey       `json:"FedNowMessageSignatureKey"`
}

func (r FedNowPublicKeyResponse) ValidateAt(p iso.PathRef) error {
	return iso.Fields(p,
		iso.Required("FedNowMessageSignatureKeyStatus", r.FedNowMessageSignatureKeyStatus),
		iso.Required("FedNowMessageSignatureKey", r.FedNowMessageSignatureKey),
	)
}

// FedNowPublicKeyResponses lists public keys; the list is never empty.
type FedNowPublicKeyResponses struct {
	PublicKeys []FedNowPublicKeyResponse `json:"PublicKeys"`
}

func (r FedNowPublicKeyResponses) ValidateAt(p iso.PathRef) error {
	return iso.Fields(p, iso.Repeated("PublicKeys", r.PublicKeys, 1, iso.Unbounded))
}

// Validate walks the response from the root.
func (r FedNowPublicKeyResponses) Validate() error { return iso.Validate(r) }
