// Package jptext maps free-form Japanese place and station names to
// canonical slugs and back, and extracts station names from free-text
// access descriptions. All lookups are read-only after package init and
// safe for concurrent use.
package jptext

import "strings"

// foldRunes maps visually-similar character variants to one canonical
// form so that minor input variation does not miss a dictionary entry.
// 市ヶ谷/市ケ谷 and 四ッ谷/四ツ谷 are the classic cases.
var foldRunes = map[rune]rune{
	'ヶ': 'ケ',
	'ヵ': 'カ',
	'ッ': 'ツ',
	'ｰ': 'ー',
	'−': 'ー',
	'‐': 'ー',
}

// Fold normalizes a name for dictionary lookup: trims ASCII and fullwidth
// whitespace and folds known character variants. Pure function, no side
// effects.
func Fold(name string) string {
	trimmed := strings.Trim(name, " \t　")
	if trimmed == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(trimmed))
	for _, r := range trimmed {
		if folded, ok := foldRunes[r]; ok {
			r = folded
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SplitValues splits a comma-separated multi-value field into trimmed
// tokens. Empty tokens and the "-" placeholder are not values and are
// dropped. Source data uses both ASCII and Japanese commas.
func SplitValues(s string) []string {
	if s == "" {
		return nil
	}
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '、'
	})
	values := make([]string, 0, len(fields))
	for _, f := range fields {
		v := strings.Trim(f, " \t　")
		if v == "" || v == "-" {
			continue
		}
		values = append(values, v)
	}
	return values
}
