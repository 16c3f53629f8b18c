// Package camt013 models camt.013.001.04 (GetMemberV04), the query a
// participant sends to a clearing system to retrieve member reference data.
package camt013

import (
	"encoding/xml"

	iso "github.com/reoring/isoskema"
	"github.com/reoring/isoskema/iso20022/common"
)

const (
	Namespace = "urn:iso:std:iso:20022:tech:xsd:camt.013.001.04"
	MessageID = "camt.013.001.04"
)

var (
	paymentControlFacets = iso.NewFacets("ExternalPaymentControlRequestType1Code").Length(1, 4)
	enquiryFacets        = iso.NewFacets("ExternalEnquiryRequestType1Code").Length(1, 4)
	memberTypeFacets     = iso.NewFacets("ExternalSystemMemberType1Code").Length(1, 4)
	queryTypeFacets      = iso.NewFacets("QueryType2Code").Enum("ALLL", "CHNG", "MODF", "DELD")
	memberStatusFacets   = iso.NewFacets("MemberStatus1Code").Enum("ENBL", "DSBL", "DLTD", "JOIN")
)

type (
	paymentControl struct{}
	enquiry        struct{}
	memberType     struct{}
	queryType      struct{}
	memberStatus   struct{}
)

func (paymentControl) Facets() *iso.Facets { return paymentControlFacets }
func (enquiry) Facets() *iso.Facets        { return enquiryFacets }
func (memberType) Facets() *iso.Facets     { return memberTypeFacets }
func (queryType) Facets() *iso.Facets      { return queryTypeFacets }
func (memberStatus) Facets() *iso.Facets   { return memberStatusFacets }

type (
	ExternalPaymentControlRequestType1Code = iso.Text[paymentControl]
	ExternalEnquiryRequestType1Code        = iso.Text[enquiry]
	ExternalSystemMemberType1Code          = iso.Text[memberType]
	QueryType2Code                         = iso.Text[queryType]
	MemberStatus1Code                      = iso.Text[memberStatus]
)

// Query types.
const (
	QueryAll      QueryType2Code = "ALLL"
	QueryChanged  QueryType2Code = "CHNG"
	QueryModified QueryType2Code = "MODF"
	QueryDeleted  QueryType2Code = "DELD"
)

// Member statuses.
const (
	MemberEnabled  MemberStatus1Code = "ENBL"
	MemberDisabled MemberStatus1Code = "DSBL"
	MemberDeleted  MemberStatus1Code = "DLTD"
	MemberJoining  MemberStatus1Code = "JOIN"
)

// Document is the root element.
type Document struct {
	XMLName xml.Name     `xml:"urn:iso:std:iso:20022:tech:xsd:camt.013.001.04 Document" json:"-"`
	GetMmb  GetMemberV04 `xml:"GetMmb" json:"GetMmb"`
}

func (d Document) ValidateAt(p iso.PathRef) error {
	return iso.Fields(p, iso.Required("GetMmb", d.GetMmb))
}

// Validate walks the document from the root.
func (d Document) Validate() error { return iso.Validate(d) }

type GetMemberV04 struct {
	MsgHdr      MessageHeader9              `xml:"MsgHdr" json:"MsgHdr"`
	MmbQryDef   *MemberQueryDefinition4     `xml:"MmbQryDef,omitempty" json:"MmbQryDef,omitempty"`
	SplmtryData []common.SupplementaryData1 `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

func (g GetMemberV04) ValidateAt(p iso.PathRef) error {
	return iso.Fields(p,
		iso.Required("MsgHdr", g.MsgHdr),
		iso.Optional("MmbQryDef", g.MmbQryDef),
		iso.Each("SplmtryData", g.SplmtryData),
	)
}

type MessageHeader9 struct {
	MsgID   common.Max35Text    `xml:"MsgId" json:"MsgId"`
	CreDtTm *common.ISODateTime `xml:"CreDtTm,omitempty" json:"CreDtTm,omitempty"`
	ReqTp   *RequestType4Choice `xml:"ReqTp,omitempty" json:"ReqTp,omitempty"`
}

func (h MessageHeader9) ValidateAt(p iso.PathRef) error {
	return iso.Fields(p,
		iso.Required("MsgId", h.MsgID),
		iso.Optional("CreDtTm", h.CreDtTm),
		iso.Optional("ReqTp", h.ReqTp),
	)
}

// RequestType4Choice qualifies the request as a payment control, an enquiry
// or a proprietary request.
type RequestType4Choice struct {
	PmtCtrl *ExternalPaymentControlRequestType1Code `xml:"PmtCtrl,omitempty" json:"PmtCtrl,omitempty"`
	Enqry   *ExternalEnquiryRequestType1Code        `xml:"Enqry,omitempty" json:"Enqry,omitempty"`
	Prtry   *common.GenericIdentification1          `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c RequestType4Choice) ValidateAt(p iso.PathRef) error {
	return iso.ExactlyOne(p,
		iso.Alt("PmtCtrl", c.PmtCtrl),
		iso.Alt("Enqry", c.Enqry),
		iso.Alt("Prtry", c.Prtry),
	)
}

type MemberQueryDefinition4 struct {
	QryTp   *QueryType2Code                  `xml:"QryTp,omitempty" json:"QryTp,omitempty"`
	MmbCrit *MemberCriteriaDefinition2Choice `xml:"MmbCrit,omitempty" json:"MmbCrit,omitempty"`
}

func (q MemberQueryDefinition4) ValidateAt(p iso.PathRef) error {
	return iso.Fields(p,
		iso.Optional("QryTp", q.QryTp),
		iso.Optional("MmbCrit", q.MmbCrit),
	)
}

// MemberCriteriaDefinition2Choice either names a stored query or defines new
// criteria.
type MemberCriteriaDefinition2Choice struct {
	QryNm   *common.Max35Text `xml:"QryNm,omitempty" json:"QryNm,omitempty"`
	NewCrit *MemberCriteria4  `xml:"NewCrit,omitempty" json:"NewCrit,omitempty"`
}

func (c MemberCriteriaDefinition2Choice) ValidateAt(p iso.PathRef) error {
	return iso.ExactlyOne(p, c.arms()...)
}

// Which returns "QryNm", "NewCrit" or "".
func (c MemberCriteriaDefinition2Choice) Which() string { return iso.Selected(c.arms()...) }

func (c MemberCriteriaDefinition2Choice) arms() []iso.Arm {
	return []iso.Arm{iso.Alt("QryNm", c.QryNm), iso.Alt("NewCrit", c.NewCrit)}
}

// ByQueryName selects a stored query.
func ByQueryName(name string) MemberCriteriaDefinition2Choice {
	n := common.Max35Text(name)
	return MemberCriteriaDefinition2Choice{QryNm: &n}
}

// ByCriteria defines new criteria.
func ByCriteria(c MemberCriteria4) MemberCriteriaDefinition2Choice {
	return MemberCriteriaDefinition2Choice{NewCrit: &c}
}

type MemberCriteria4 struct {
	NewQryNm *common.Max35Text       `xml:"NewQryNm,omitempty" json:"NewQryNm,omitempty"`
	SchCrit  []MemberSearchCriteria4 `xml:"SchCrit,omitempty" json:"SchCrit,omitempty"`
	RtrCrit  *MemberReturnCriteria1  `xml:"RtrCrit,omitempty" json:"RtrCrit,omitempty"`
}

func (c MemberCriteria4) ValidateAt(p iso.PathRef) error {
	return iso.Fields(p,
		iso.Optional("NewQryNm", c.NewQryNm),
		iso.Each("SchCrit", c.SchCrit),
		iso.Optional("RtrCrit", c.RtrCrit),
	)
}

type MemberSearchCriteria4 struct {
	ID  []MemberIdentification3Choice `xml:"Id,omitempty" json:"Id,omitempty"`
	Tp  []SystemMemberType1Choice     `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Sts []SystemMemberStatus1Choice   `xml:"Sts,omitempty" json:"Sts,omitempty"`
}

func (c MemberSearchCriteria4) ValidateAt(p iso.PathRef) error {
	return iso.Fields(p,
		iso.Each("Id", c.ID),
		iso.Each("Tp", c.Tp),
		iso.Each("Sts", c.Sts),
	)
}

// MemberReturnCriteria1 selects which member attributes the response carries.
type MemberReturnCriteria1 struct {
	NmInd        *bool `xml:"NmInd,omitempty" json:"NmInd,omitempty"`
	MmbRtrAdrInd *bool `xml:"MmbRtrAdrInd,omitempty" json:"MmbRtrAdrInd,omitempty"`
	AcctInd      *bool `xml:"AcctInd,omitempty" json:"AcctInd,omitempty"`
	TpInd        *bool `xml:"TpInd,omitempty" json:"TpInd,omitempty"`
	StsInd       *bool `xml:"StsInd,omitempty" json:"StsInd,omitempty"`
	CtctRefInd   *bool `xml:"CtctRefInd,omitempty" json:"CtctRefInd,omitempty"`
	ComAdrInd    *bool `xml:"ComAdrInd,omitempty" json:"ComAdrInd,omitempty"`
}

func (MemberReturnCriteria1) ValidateAt(iso.PathRef) error { return nil }

type MemberIdentification3Choice struct {
	BICFI       *common.BICFIDec2014Identifier              `xml:"BICFI,omitempty" json:"BICFI,omitempty"`
	ClrSysMmbID *common.ClearingSystemMemberIdentification2 `xml:"ClrSysMmbId,omitempty" json:"ClrSysMmbId,omitempty"`
	Othr        *common.GenericFinancialIdentification1     `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

func (c MemberIdentification3Choice) ValidateAt(p iso.PathRef) error {
	return iso.ExactlyOne(p,
		iso.Alt("BICFI", c.BICFI),
		iso.Alt("ClrSysMmbId", c.ClrSysMmbID),
		iso.Alt("Othr", c.Othr),
	)
}

// MemberByBIC identifies a member by its BIC.
func MemberByBIC(bic string) MemberIdentification3Choice {
	b := common.BICFIDec2014Identifier(bic)
	return MemberIdentification3Choice{BICFI: &b}
}

type SystemMemberType1Choice struct {
	Cd    *ExternalSystemMemberType1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *common.Max35Text              `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c SystemMemberType1Choice) ValidateAt(p iso.PathRef) error {
	return iso.ExactlyOne(p, iso.Alt("Cd", c.Cd), iso.Alt("Prtry", c.Prtry))
}

type SystemMemberStatus1Choice struct {
	Cd    *MemberStatus1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *common.Max35Text  `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c SystemMemberStatus1Choice) ValidateAt(p iso.PathRef) error {
	return iso.ExactlyOne(p, iso.Alt("Cd", c.Cd), iso.Alt("Prtry", c.Prtry))
}

// StatusCode builds the code alternative.
func StatusCode(c MemberStatus1Code) SystemMemberStatus1Choice {
	return SystemMemberStatus1Choice{Cd: &c}
}
