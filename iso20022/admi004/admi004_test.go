package admi004_test

import (
	"encoding/xml"
	"strings"
	"testing"

	iso "github.com/reoring/isoskema"
	"github.com/reoring/isoskema/iso20022/admi004"
	"github.com/reoring/isoskema/iso20022/common"
)

func TestEvent_SecondParameterTooLong(t *testing.T) {
	doc := admi004.New("CLSD", "first", strings.Repeat("x", 36), strings.Repeat("y", 99))
	iss, ok := iso.AsIssue(doc.Validate())
	if !ok {
		t.Fatalf("expected an Issue")
	}
	if iss.Code != iso.CodeTooLong {
		t.Fatalf("code: got %v", iss.Code)
	}
	if iss.Path != "/SysEvtNtfctn/EvtInf/EvtParam/1" {
		t.Fatalf("path: got %s", iss.Path)
	}
	if iss.Field != "EvtParam" {
		t.Fatalf("field: got %s", iss.Field)
	}
}

func TestEvent_Valid(t *testing.T) {
	doc := admi004.New("OPEN", "BATCH01")
	desc := common.Max1000Text("Service opened")
	tm := common.ISODateTime("2024-05-01T07:00:00Z")
	doc.SysEvtNtfctn.EvtInf.EvtDesc = &desc
	doc.SysEvtNtfctn.EvtInf.EvtTm = &tm
	if err := doc.Validate(); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
}

func TestEvent_NoParametersIsValid(t *testing.T) {
	if err := admi004.New("OPEN").Validate(); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
}

func TestEvent_CodeCheckedBeforeParameters(t *testing.T) {
	doc := admi004.New("TOOLONG", strings.Repeat("x", 36))
	iss, _ := iso.AsIssue(doc.Validate())
	if iss == nil || iss.Path != "/SysEvtNtfctn/EvtInf/EvtCd" {
		t.Fatalf("got %v", iss)
	}
}

func TestDocument_XMLRoundTrip(t *testing.T) {
	in := []byte(`<Document xmlns="urn:iso:std:iso:20022:tech:xsd:admi.004.001.02">` +
		`<SysEvtNtfctn><EvtInf><EvtCd>CLSD</EvtCd><EvtParam>A</EvtParam><EvtParam>B</EvtParam>` +
		`<EvtTm>2024-05-01T18:00:00Z</EvtTm></EvtInf></SysEvtNtfctn></Document>`)
	var doc admi004.Document
	if err := xml.Unmarshal(in, &doc); err != nil {
		t.Fatal(err)
	}
	ev := doc.SysEvtNtfctn.EvtInf
	if ev.EvtCd != "CLSD" || len(ev.EvtParam) != 2 || ev.EvtParam[1] != "B" || ev.EvtTm == nil {
		t.Fatalf("decoded: %+v", ev)
	}
	if err := doc.Validate(); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	out, err := xml.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), `xmlns="`+admi004.Namespace+`"`) {
		t.Fatalf("namespace missing: %s", out)
	}
}
