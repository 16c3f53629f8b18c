package common

import iso "github.com/reoring/isoskema"

// SupplementaryData1 carries market-specific extensions the message schema
// does not describe.
type SupplementaryData1 struct {
	PlcAndNm *Max350Text                `xml:"PlcAndNm,omitempty" json:"PlcAndNm,omitempty"`
	Envlp    SupplementaryDataEnvelope1 `xml:"Envlp" json:"Envlp"`
}

func (s SupplementaryData1) ValidateAt(p iso.PathRef) error {
	return iso.Fields(p,
		iso.Optional("PlcAndNm", s.PlcAndNm),
		iso.Required("Envlp", s.Envlp),
	)
}

// SupplementaryDataEnvelope1 keeps the extension markup verbatim; it has no
// constraints of its own.
type SupplementaryDataEnvelope1 struct {
	Content string `xml:",innerxml" json:"Content,omitempty"`
}

func (SupplementaryDataEnvelope1) ValidateAt(iso.PathRef) error { return nil }
