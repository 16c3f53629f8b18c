// Package admi004 models admi.004.001.02 (SystemEventNotificationV02), the
// notification a market infrastructure broadcasts to its participants when a
// system event such as a cut-off or an outage occurs.
package admi004

import (
	"encoding/xml"

	iso "github.com/reoring/isoskema"
	"github.com/reoring/isoskema/iso20022/common"
)

// Namespace is the XML namespace of the message.
const Namespace = "urn:iso:std:iso:20022:tech:xsd:admi.004.001.02"

// MessageID is the ISO 20022 message identifier.
const MessageID = "admi.004.001.02"

// Document is the root element.
type Document struct {
	XMLName      xml.Name                   `xml:"urn:iso:std:iso:20022:tech:xsd:admi.004.001.02 Document" json:"-"`
	SysEvtNtfctn SystemEventNotificationV02 `xml:"SysEvtNtfctn" json:"SysEvtNtfctn"`
}

func (d Document) ValidateAt(p iso.PathRef) error {
	return iso.Fields(p, iso.Required("SysEvtNtfctn", d.SysEvtNtfctn))
}

// Validate walks the document from the root.
func (d Document) Validate() error { return iso.Validate(d) }

type SystemEventNotificationV02 struct {
	EvtInf Event2 `xml:"EvtInf" json:"EvtInf"`
}

func (s SystemEventNotificationV02) ValidateAt(p iso.PathRef) error {
	return iso.Fields(p, iso.Required("EvtInf", s.EvtInf))
}

// Event2 describes one system event. EvtParam holds free-form parameters
// whose meaning depends on EvtCd.
type Event2 struct {
	EvtCd    common.Max4AlphaNumericText `xml:"EvtCd" json:"EvtCd"`
	EvtParam []common.Max35Text          `xml:"EvtParam,omitempty" json:"EvtParam,omitempty"`
	EvtDesc  *common.Max1000Text         `xml:"EvtDesc,omitempty" json:"EvtDesc,omitempty"`
	EvtTm    *common.ISODateTime         `xml:"EvtTm,omitempty" json:"EvtTm,omitempty"`
}

func (e Event2) ValidateAt(p iso.PathRef) error {
	return iso.Fields(p,
		iso.Required("EvtCd", e.EvtCd),
		iso.Each("EvtParam", e.EvtParam),
		iso.Optional("EvtDesc", e.EvtDesc),
		iso.Optional("EvtTm", e.EvtTm),
	)
}

// New builds a notification for code with the given parameters.
func New(code string, params ...string) Document {
	ev := Event2{EvtCd: common.Max4AlphaNumericText(code)}
	for _, s := range params {
		ev.EvtParam = append(ev.EvtParam, common.Max35Text(s))
	}
	return Document{SysEvtNtfctn: SystemEventNotificationV02{EvtInf: ev}}
}
