// Package strcase provides the string conversions used when mapping event
// detail keys onto notification payload fields, plus a compact JSON helper
// for logging detail maps.
package strcase

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode"
)

// ToCamelCase converts a snake_case or whitespace-separated string to
// CamelCase. Separators are dropped; the first letter of every token is
// upper-cased and the rest lower-cased.
func ToCamelCase(s string) string {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || unicode.IsSpace(r)
	})

	var b strings.Builder
	for _, tok := range tokens {
		runes := []rune(tok)
		b.WriteRune(unicode.ToUpper(runes[0]))
		b.WriteString(strings.ToLower(string(runes[1:])))
	}
	return b.String()
}

// ToSnakeCase converts a CamelCase string to snake_case. An underscore is
// inserted before each upper-case letter that follows a lower-case letter
// or digit, so a string already in snake_case is returned unchanged.
func ToSnakeCase(s string) string {
	var b strings.Builder
	var prev rune
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
		prev = r
	}
	return b.String()
}

// ToJSONString serializes a string map as a compact JSON object with no
// extra whitespace. Non-ASCII text is kept as UTF-8 rather than escaped.
func ToJSONString(m map[string]string) string {
	if m == nil {
		return "{}"
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(m); err != nil {
		return "{}"
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
