package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	data := map[string]string{"field": "MsgId", "max": "35"}

	// default is en
	if msg := T("too_long", data); msg != "MsgId exceeds the maximum length of 35" {
		t.Fatalf("unexpected english message: %q", msg)
	}

	SetLanguage("ja")
	if msg := T("too_long", data); msg == "MsgId exceeds the maximum length of 35" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_UnknownCodeFallsBackToKey(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("expected key fallback, got %q", msg)
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestTranslator_Custom(t *testing.T) {
	SetTranslator(upper{})
	defer SetTranslator(nil)
	if msg := T("too_short", nil); msg != "X:too_short" {
		t.Fatalf("custom translator not used: %q", msg)
	}
}
