package codec_test

import (
	"errors"
	"strings"
	"testing"

	iso "github.com/reoring/isoskema"
	"github.com/reoring/isoskema/codec"
	"github.com/reoring/isoskema/fednow/keyexchange"
	"github.com/reoring/isoskema/iso20022/admi004"
	"github.com/reoring/isoskema/iso20022/common"
)

func TestSniff(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want codec.Envelope
		err  error
	}{
		{
			name: "xml with declaration",
			in:   `<?xml version="1.0" encoding="UTF-8"?>` + "\n" + `<Document xmlns="urn:iso:std:iso:20022:tech:xsd:admi.004.001.02"><SysEvtNtfctn/></Document>`,
			want: codec.Envelope{Format: codec.FormatXML, Root: "Document", Namespace: admi004.Namespace},
		},
		{
			name: "json object",
			in:   "  \n{\"KeyAddition\":{}}",
			want: codec.Envelope{Format: codec.FormatJSON},
		},
		{
			name: "xml with byte order mark",
			in:   "\uFEFF" + `<Document xmlns="urn:iso:std:iso:20022:tech:xsd:admi.004.001.02"/>`,
			want: codec.Envelope{Format: codec.FormatXML, Root: "Document", Namespace: admi004.Namespace},
		},
		{
			name: "json with byte order mark",
			in:   "\uFEFF{}",
			want: codec.Envelope{Format: codec.FormatJSON},
		},
		{name: "empty", in: "   ", err: codec.ErrUnknownFormat},
		{name: "text", in: "hello", err: codec.ErrUnknownFormat},
		{name: "comment only", in: "<!-- nothing -->", err: codec.ErrUnknownFormat},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := codec.Sniff([]byte(c.in))
			if c.err != nil {
				if !errors.Is(err, c.err) {
					t.Fatalf("err: got %v want %v", err, c.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected: %v", err)
			}
			if got != c.want {
				t.Fatalf("got %+v want %+v", got, c.want)
			}
		})
	}
}

func TestXML_AmountAttributeAndValue(t *testing.T) {
	type payment struct {
		Amt common.ActiveCurrencyAndAmount `xml:"InstdAmt"`
	}
	var p payment
	if err := codec.DecodeXML([]byte(`<Pmt><InstdAmt Ccy="USD">10.50</InstdAmt></Pmt>`), &p); err != nil {
		t.Fatal(err)
	}
	if p.Amt.Ccy != "USD" || p.Amt.Value != 10.5 {
		t.Fatalf("decoded: %+v", p.Amt)
	}
	out, err := codec.EncodeXML(payment{Amt: common.Amount("EUR", 0.00001)})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), `<InstdAmt Ccy="EUR">0.00001</InstdAmt>`) {
		t.Fatalf("encoded: %s", out)
	}
}

func TestXML_WrongNamespaceRejected(t *testing.T) {
	var d admi004.Document
	err := codec.DecodeXML([]byte(`<Document xmlns="urn:iso:std:iso:20022:tech:xsd:admi.004.001.01"><SysEvtNtfctn/></Document>`), &d)
	if err == nil {
		t.Fatalf("expected namespace mismatch")
	}
}

func TestXML_RoundTripPreservesValidation(t *testing.T) {
	doc := admi004.New("CLSD", "A", strings.Repeat("x", 36))
	out, err := codec.Encode(codec.FormatXML, doc)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(out), "<?xml") {
		t.Fatalf("missing declaration: %s", out)
	}
	var back admi004.Document
	if err := codec.Decode(codec.FormatXML, out, &back); err != nil {
		t.Fatal(err)
	}
	iss, _ := iso.AsIssue(back.Validate())
	if iss == nil || iss.Path != "/SysEvtNtfctn/EvtInf/EvtParam/1" {
		t.Fatalf("got %v", iss)
	}
}

func TestJSON_UnknownFieldRejected(t *testing.T) {
	var x keyexchange.FedNowMessageSignatureKeyExchange
	err := codec.DecodeJSON([]byte(`{"KeyAddition":{"Key":null},"Extra":1}`), &x)
	if err == nil {
		t.Fatalf("expected unknown field error")
	}
}

func TestJSON_DuplicateKeyRejected(t *testing.T) {
	var x keyexchange.FedNowMessageSignatureKeyExchange
	err := codec.DecodeJSON([]byte(`{"KeyAddition":{"Key":{"Name":"a","Name":"b"}}}`), &x)
	if !errors.Is(err, codec.ErrDuplicateKey) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "/KeyAddition/Key") {
		t.Fatalf("pointer missing: %v", err)
	}
}

func TestJSON_DuplicateKeysInArraysOfObjects(t *testing.T) {
	var r keyexchange.FedNowPublicKeyResponses
	ok := `{"PublicKeys":[{"FedNowMessageSignatureKey":{"Name":"a"}},{"FedNowMessageSignatureKey":{"Name":"b"}}]}`
	if err := codec.DecodeJSON([]byte(ok), &r); err != nil {
		t.Fatalf("same key in sibling objects is fine: %v", err)
	}
	dup := `{"PublicKeys":[{},{"FedNowMessageSignatureKey":{},"FedNowMessageSignatureKey":{}}]}`
	err := codec.DecodeJSON([]byte(dup), &r)
	if !errors.Is(err, codec.ErrDuplicateKey) || !strings.Contains(err.Error(), "/PublicKeys/1") {
		t.Fatalf("got %v", err)
	}
}

func TestJSON_RoundTrip(t *testing.T) {
	in := keyexchange.RevokeKey("KEY-1")
	out, err := codec.EncodeJSON(in)
	if err != nil {
		t.Fatal(err)
	}
	var back keyexchange.FedNowMessageSignatureKeyExchange
	if err := codec.DecodeJSON(out, &back); err != nil {
		t.Fatal(err)
	}
	if back.Operation() != "KeyRevocation" || *back.KeyRevocation.FedNowKeyID != "KEY-1" {
		t.Fatalf("got %+v", back)
	}
}

func TestUnknownFormat(t *testing.T) {
	if _, err := codec.Encode("csv", 1); !errors.Is(err, codec.ErrUnknownFormat) {
		t.Fatalf("got %v", err)
	}
	if err := codec.Decode("csv", nil, nil); !errors.Is(err, codec.ErrUnknownFormat) {
		t.Fatalf("got %v", err)
	}
}

func TestDecodeXML_IgnoresUnknownElements(t *testing.T) {
	in := []byte(`<Document xmlns="urn:iso:std:iso:20022:tech:xsd:admi.004.001.02"><SysEvtNtfctn><EvtInf>` +
		`<EvtCd>CLSD</EvtCd><Extra>kept out</Extra></EvtInf></SysEvtNtfctn></Document>`)
	var doc admi004.Document
	if err := codec.DecodeXML(in, &doc); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if doc.SysEvtNtfctn.EvtInf.EvtCd != "CLSD" {
		t.Fatalf("EvtCd = %q", doc.SysEvtNtfctn.EvtInf.EvtCd)
	}
}
