package camt013_test

import (
	"encoding/xml"
	"strings"
	"testing"

	iso "github.com/reoring/isoskema"
	"github.com/reoring/isoskema/iso20022/camt013"
	"github.com/reoring/isoskema/iso20022/common"
)

func validDoc() camt013.Document {
	qt := camt013.QueryAll
	return camt013.Document{GetMmb: camt013.GetMemberV04{
		MsgHdr: camt013.MessageHeader9{MsgID: "MSG-0001"},
		MmbQryDef: &camt013.MemberQueryDefinition4{
			QryTp: &qt,
			MmbCrit: func() *camt013.MemberCriteriaDefinition2Choice {
				c := camt013.ByCriteria(camt013.MemberCriteria4{
					SchCrit: []camt013.MemberSearchCriteria4{{
						ID:  []camt013.MemberIdentification3Choice{camt013.MemberByBIC("BOFAUS3N")},
						Sts: []camt013.SystemMemberStatus1Choice{camt013.StatusCode(camt013.MemberEnabled)},
					}},
				})
				return &c
			}(),
		},
	}}
}

func TestGetMember_Valid(t *testing.T) {
	if err := validDoc().Validate(); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
}

func TestGetMember_Failures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(d *camt013.Document)
		code   iso.Code
		path   string
	}{
		{
			name:   "message id too long",
			mutate: func(d *camt013.Document) { d.GetMmb.MsgHdr.MsgID = common.Max35Text(strings.Repeat("M", 36)) },
			code:   iso.CodeTooLong,
			path:   "/GetMmb/MsgHdr/MsgId",
		},
		{
			name: "request type with two arms",
			mutate: func(d *camt013.Document) {
				pc := camt013.ExternalPaymentControlRequestType1Code("BLCK")
				enq := camt013.ExternalEnquiryRequestType1Code("ACCT")
				d.GetMmb.MsgHdr.ReqTp = &camt013.RequestType4Choice{PmtCtrl: &pc, Enqry: &enq}
			},
			code: iso.CodeChoiceViolation,
			path: "/GetMmb/MsgHdr/ReqTp",
		},
		{
			name:   "empty request type",
			mutate: func(d *camt013.Document) { d.GetMmb.MsgHdr.ReqTp = &camt013.RequestType4Choice{} },
			code:   iso.CodeMissingRequiredAlternative,
			path:   "/GetMmb/MsgHdr/ReqTp",
		},
		{
			name: "unknown query type",
			mutate: func(d *camt013.Document) {
				qt := camt013.QueryType2Code("SOME")
				d.GetMmb.MmbQryDef.QryTp = &qt
			},
			code: iso.CodeInvalidEnumeration,
			path: "/GetMmb/MmbQryDef/QryTp",
		},
		{
			name: "member status code",
			mutate: func(d *camt013.Document) {
				d.GetMmb.MmbQryDef.MmbCrit.NewCrit.SchCrit[0].Sts[0] = camt013.StatusCode("GONE")
			},
			code: iso.CodeInvalidEnumeration,
			path: "/GetMmb/MmbQryDef/MmbCrit/NewCrit/SchCrit/0/Sts/0/Cd",
		},
		{
			name: "member bic",
			mutate: func(d *camt013.Document) {
				d.GetMmb.MmbQryDef.MmbCrit.NewCrit.SchCrit[0].ID[0] = camt013.MemberByBIC("bofaus3n")
			},
			code: iso.CodePatternMismatch,
			path: "/GetMmb/MmbQryDef/MmbCrit/NewCrit/SchCrit/0/Id/0/BICFI",
		},
		{
			name: "criteria choice with both arms",
			mutate: func(d *camt013.Document) {
				n := common.Max35Text("STORED")
				d.GetMmb.MmbQryDef.MmbCrit.QryNm = &n
			},
			code: iso.CodeChoiceViolation,
			path: "/GetMmb/MmbQryDef/MmbCrit",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := validDoc()
			c.mutate(&d)
			iss, ok := iso.AsIssue(d.Validate())
			if !ok {
				t.Fatalf("expected an Issue")
			}
			if iss.Code != c.code || iss.Path != c.path {
				t.Fatalf("got %d at %s, want %d at %s", iss.Code, iss.Path, c.code, c.path)
			}
		})
	}
}

func TestMemberCriteriaChoice_Which(t *testing.T) {
	if got := camt013.ByQueryName("DAILY").Which(); got != "QryNm" {
		t.Fatalf("got %q", got)
	}
	if got := (camt013.MemberCriteriaDefinition2Choice{}).Which(); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestDocument_DecodeXML(t *testing.T) {
	in := []byte(`<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.013.001.04"><GetMmb>` +
		`<MsgHdr><MsgId>REQ1</MsgId><ReqTp><Enqry>MBRS</Enqry></ReqTp></MsgHdr>` +
		`<MmbQryDef><QryTp>CHNG</QryTp><MmbCrit><NewCrit><RtrCrit><NmInd>true</NmInd></RtrCrit></NewCrit></MmbCrit></MmbQryDef>` +
		`</GetMmb></Document>`)
	var d camt013.Document
	if err := xml.Unmarshal(in, &d); err != nil {
		t.Fatal(err)
	}
	if err := d.Validate(); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	rc := d.GetMmb.MmbQryDef.MmbCrit.NewCrit.RtrCrit
	if rc == nil || rc.NmInd == nil || !*rc.NmInd {
		t.Fatalf("return criteria not decoded: %+v", rc)
	}
}
