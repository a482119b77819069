package cpp

import (
	"fmt"
	"strings"
)

// maxLineWidth bounds the emitted width of one literal line, counted in
// output characters including the opening quote. The check runs after a
// byte is emitted, so a wide escape may finish slightly past the bound.
const maxLineWidth = 120

// EncodeLiteral converts raw bytes into a C++ narrow string literal made of
// one or more double-quoted segments separated by newlines. Adjacent segments
// concatenate during compilation, so the decoded value of the whole literal
// is exactly the input. The returned count is the input length in bytes and
// never depends on how wide the escapes came out.
func EncodeLiteral(data []byte) (string, int) {
	var w literalWriter
	for _, b := range data {
		esc, isHex := escapeByte(b)
		// A hex escape swallows every hex digit that follows it, so a
		// literally-emitted digit right after \xNN must start a fresh
		// segment to terminate the escape.
		if w.hexTail && isHexDigit(b) {
			w.closeSegment()
		}
		w.append(esc)
		if w.open {
			w.hexTail = isHex
		}
	}
	return w.finish(), len(data)
}

type literalWriter struct {
	buf       strings.Builder
	lineWidth int
	open      bool
	hexTail   bool
}

func (w *literalWriter) append(s string) {
	if !w.open {
		if w.buf.Len() > 0 {
			w.buf.WriteByte('\n')
		}
		w.buf.WriteByte('"')
		w.open = true
		w.lineWidth = 1
	}
	w.buf.WriteString(s)
	w.lineWidth += len(s)
	if w.lineWidth >= maxLineWidth {
		w.closeSegment()
	}
}

func (w *literalWriter) closeSegment() {
	if !w.open {
		return
	}
	w.buf.WriteByte('"')
	w.open = false
	w.hexTail = false
}

func (w *literalWriter) finish() string {
	if w.buf.Len() == 0 {
		return `""`
	}
	w.closeSegment()
	return w.buf.String()
}

func escapeByte(b byte) (esc string, isHex bool) {
	switch b {
	case '"':
		return `\"`, false
	case '\\':
		return `\\`, false
	case '\n':
		return `\n`, false
	case '\r':
		return `\r`, false
	case '\t':
		return `\t`, false
	}
	if b >= 0x20 && b <= 0x7e {
		return string(b), false
	}
	return fmt.Sprintf(`\x%02x`, b), true
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
