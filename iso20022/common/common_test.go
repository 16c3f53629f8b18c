package common_test

import (
	"strings"
	"testing"

	iso "github.com/reoring/isoskema"
	"github.com/reoring/isoskema/iso20022/common"
)

func TestAmount_MinimumIsInclusive(t *testing.T) {
	cases := []struct {
		v    float64
		want iso.Code
	}{
		{v: -0.01, want: iso.CodeBelowMinimum},
		{v: 0, want: 0},
		{v: 0.0, want: 0},
		{v: 1234.56789, want: 0},
		{v: 1.123456, want: iso.CodeFractionDigits},
		{v: 1234567890123456789, want: iso.CodeTotalDigits},
	}
	for _, c := range cases {
		got := iso.CodeOf(common.ActiveCurrencyAndAmountSimpleType(c.v).Validate())
		if got != c.want {
			t.Errorf("amount %v: got code %d want %d", c.v, got, c.want)
		}
	}
}

func TestActiveCurrencyAndAmount_ValueBeforeCurrency(t *testing.T) {
	err := iso.Validate(common.Amount("usd", -1))
	iss, ok := iso.AsIssue(err)
	if !ok || iss.Code != iso.CodeBelowMinimum || iss.Path != "/Value" {
		t.Fatalf("want below_minimum at /Value, got %v", err)
	}

	err = iso.Validate(common.Amount("usd", 1))
	iss, ok = iso.AsIssue(err)
	if !ok || iss.Code != iso.CodePatternMismatch || iss.Path != "/Ccy" {
		t.Fatalf("want pattern_mismatch at /Ccy, got %v", err)
	}

	if err := iso.Validate(common.Amount("USD", 10.5)); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
}

func TestMax35Text_Bounds(t *testing.T) {
	if err := common.Max35Text(strings.Repeat("a", 35)).Validate(); err != nil {
		t.Fatalf("35 chars: %v", err)
	}
	if got := iso.CodeOf(common.Max35Text(strings.Repeat("a", 36)).Validate()); got != iso.CodeTooLong {
		t.Fatalf("36 chars: got %d", got)
	}
	if got := iso.CodeOf(common.Max35Text("").Validate()); got != iso.CodeTooShort {
		t.Fatalf("empty: got %d", got)
	}
	// length counts characters, not bytes
	if err := common.Max35Text(strings.Repeat("é", 35)).Validate(); err != nil {
		t.Fatalf("35 runes: %v", err)
	}
}

func TestIdentifiers(t *testing.T) {
	cases := []struct {
		name string
		v    iso.Validator
		want iso.Code
	}{
		{"bic8", common.BICFIDec2014Identifier("BOFAUS3N"), 0},
		{"bic11", common.BICFIDec2014Identifier("BOFAUS3NXXX"), 0},
		{"bic10", common.BICFIDec2014Identifier("BOFAUS3NXX"), iso.CodePatternMismatch},
		{"bic prefix only matches", common.BICFIDec2014Identifier("BOFAUS3NXXX!"), iso.CodePatternMismatch},
		{"ccy", common.ActiveCurrencyCode("JPY"), 0},
		{"ccy lower", common.ActiveCurrencyCode("jpy"), iso.CodePatternMismatch},
		{"iban", common.IBAN2007Identifier("DE89370400440532013000"), 0},
		{"lei", common.LEIIdentifier("5493001KJTIIGC8Y1R12"), 0},
		{"date", common.ISODate("2024-05-01"), 0},
		{"date bad", common.ISODate("2024-13-01"), iso.CodeInvalidFormat},
		{"datetime", common.ISODateTime("2024-05-01T10:00:00.123-05:00"), 0},
		{"datetime local", common.ISODateTime("2024-05-01T10:00:00"), 0},
		{"datetime bad", common.ISODateTime("2024-05-01 10:00"), iso.CodeInvalidFormat},
		{"address type", common.AddressTypeHOME, 0},
		{"address type bad", common.AddressType2Code("CAVE"), iso.CodeInvalidEnumeration},
		{"alnum4", common.Max4AlphaNumericText("CUT1"), 0},
		{"alnum4 symbol", common.Max4AlphaNumericText("C-1"), iso.CodePatternMismatch},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := iso.CodeOf(iso.Validate(c.v)); got != c.want {
				t.Fatalf("got %d want %d", got, c.want)
			}
		})
	}
}

func TestAccountIdentification4Choice(t *testing.T) {
	byIBAN := common.AccountIDByIBAN("DE89370400440532013000")
	if err := iso.Validate(byIBAN); err != nil {
		t.Fatalf("iban arm: %v", err)
	}
	if byIBAN.Which() != "IBAN" {
		t.Fatalf("which: %q", byIBAN.Which())
	}

	other := common.AccountIDByOther(common.GenericAccountIdentification1{ID: "12345"})
	if err := iso.Validate(other); err != nil {
		t.Fatalf("othr arm: %v", err)
	}

	both := byIBAN
	both.Othr = other.Othr
	if got := iso.CodeOf(iso.Validate(both)); got != iso.CodeChoiceViolation {
		t.Fatalf("both arms: got %d", got)
	}
	if got := iso.CodeOf(iso.Validate(common.AccountIdentification4Choice{})); got != iso.CodeMissingRequiredAlternative {
		t.Fatalf("no arm: got %d", got)
	}

	// The populated arm is validated with its own path.
	bad := common.AccountIDByOther(common.GenericAccountIdentification1{ID: common.Max34Text(strings.Repeat("9", 35))})
	iss, ok := iso.AsIssue(iso.Validate(bad))
	if !ok || iss.Path != "/Othr/Id" || iss.Code != iso.CodeTooLong {
		t.Fatalf("got %v", iss)
	}
}

func TestPostalAddress24(t *testing.T) {
	ctry := common.CountryCode("US")
	addr := common.PostalAddress24{
		AdrTp: &common.AddressType3Choice{Cd: common.AddressTypeBIZZ.Ptr()},
		Ctry:  &ctry,
	}
	for i := 0; i < 7; i++ {
		addr.AdrLine = append(addr.AdrLine, "line")
	}
	if err := iso.Validate(addr); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	addr.AdrLine = append(addr.AdrLine, "line")
	iss, ok := iso.AsIssue(iso.Validate(addr))
	if !ok || iss.Code != iso.CodeTooManyItems || iss.Path != "/AdrLine" {
		t.Fatalf("got %v", iss)
	}
}

func TestSupplementaryData_EnvelopeIsOpaque(t *testing.T) {
	sd := common.SupplementaryData1{Envlp: common.SupplementaryDataEnvelope1{Content: "<X/>"}}
	if err := iso.Validate(sd); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	empty := common.Max350Text("")
	sd.PlcAndNm = &empty
	if iss, _ := iso.AsIssue(iso.Validate(sd)); iss == nil || iss.Path != "/PlcAndNm" {
		t.Fatalf("got %v", iss)
	}
}
