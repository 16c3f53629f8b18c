package i18n

import (
	"strings"
)

// Translator retrieves localized messages for Issue codes.
// data provides the values substituted into {placeholders} (for example
// "field", "min", "max" or "pattern").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"too_short":                    "{field} is shorter than the minimum length of {min}",
		"too_long":                     "{field} exceeds the maximum length of {max}",
		"below_minimum":                "{field} is less than the minimum value of {min}",
		"above_maximum":                "{field} exceeds the maximum value of {max}",
		"pattern_mismatch":             "{field} does not match the required pattern",
		"invalid_enumeration":          "{field} is not one of the allowed codes",
		"choice_violation":             "{field} has more than one alternative populated ({got})",
		"missing_required_alternative": "{field} requires exactly one alternative",
		"too_few_items":                "{field} requires at least {min} item(s)",
		"too_many_items":               "{field} allows at most {max} item(s)",
		"invalid_format":               "{field} is not a valid {format}",
		"fraction_digits":              "{field} has more than {max} fraction digits",
		"total_digits":                 "{field} has more than {max} total digits",
	},
	"ja": {
		"too_short":                    "{field} は最小長 {min} より短いです",
		"too_long":                     "{field} は最大長 {max} を超えています",
		"below_minimum":                "{field} は最小値 {min} 未満です",
		"above_maximum":                "{field} は最大値 {max} を超えています",
		"pattern_mismatch":             "{field} は必要なパターンに一致しません",
		"invalid_enumeration":          "{field} は許可されたコードではありません",
		"choice_violation":             "{field} に複数の選択肢が設定されています ({got})",
		"missing_required_alternative": "{field} にはちょうど1つの選択肢が必要です",
		"too_few_items":                "{field} には少なくとも {min} 個の要素が必要です",
		"too_many_items":               "{field} の要素は最大 {max} 個です",
		"invalid_format":               "{field} は有効な {format} ではありません",
		"fraction_digits":              "{field} の小数桁数が {max} を超えています",
		"total_digits":                 "{field} の総桁数が {max} を超えています",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	return expand(tmpl, data)
}

// expand substitutes {key} placeholders; unknown placeholders are left as-is.
func expand(tmpl string, data map[string]string) string {
	if len(data) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
