package payload

import (
	"fmt"
	"strings"
)

// objectWriter emits a JSON object with string fields in insertion order.
// Field presence is decided by the caller, and non-ASCII text is written
// as UTF-8 rather than \u escapes, which downstream consumers compare
// byte-for-byte.
type objectWriter struct {
	buf strings.Builder
}

// Field appends one string field.
func (w *objectWriter) Field(name, value string) {
	if w.buf.Len() == 0 {
		w.buf.WriteByte('{')
	} else {
		w.buf.WriteByte(',')
	}
	w.quote(name)
	w.buf.WriteByte(':')
	w.quote(value)
}

// String closes the object and returns it.
func (w *objectWriter) String() string {
	if w.buf.Len() == 0 {
		return "{}"
	}
	return w.buf.String() + "}"
}

// quote writes s as a JSON string literal.
func (w *objectWriter) quote(s string) {
	w.buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			w.buf.WriteString(`\"`)
		case '\\':
			w.buf.WriteString(`\\`)
		case '\n':
			w.buf.WriteString(`\n`)
		case '\r':
			w.buf.WriteString(`\r`)
		case '\t':
			w.buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&w.buf, `\u%04x`, r)
			} else {
				w.buf.WriteRune(r)
			}
		}
	}
	w.buf.WriteByte('"')
}
