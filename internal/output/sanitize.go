package output

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SanitizeTerminal makes a string safe to print to an interactive terminal.
// Control characters, bidi overrides and invalid UTF-8 bytes are replaced by
// visible escapes; newlines and tabs are kept:
//   - "hi\x1b[31m"     -> `hi\x1b[31m`
//   - "abc\u202edcba" -> `abc\u202edcba`
//   - "bad:\xff"       -> `bad:\xff`
func SanitizeTerminal(s string) string {
	idx := firstUnsafe(s)
	if idx == len(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	b.WriteString(s[:idx])

	for idx < len(s) {
		r, size := utf8.DecodeRuneInString(s[idx:])
		switch {
		case r == utf8.RuneError && size == 1:
			appendEscapedByte(&b, s[idx])
		case unsafeRune(r):
			appendEscapedRune(&b, r)
		default:
			b.WriteString(s[idx : idx+size])
		}
		idx += size
	}
	return b.String()
}

// firstUnsafe returns the offset of the first byte that needs escaping or
// len(s) when s can be printed as-is
func firstUnsafe(s string) int {
	for idx := 0; idx < len(s); {
		r, size := utf8.DecodeRuneInString(s[idx:])
		if (r == utf8.RuneError && size == 1) || unsafeRune(r) {
			return idx
		}
		idx += size
	}
	return len(s)
}

func unsafeRune(r rune) bool {
	if r == '\n' || r == '\t' {
		return false
	}
	// bidi controls can make a spoofed team name read like a trusted one
	return unicode.IsControl(r) || unicode.Is(unicode.Bidi_Control, r)
}

func appendEscapedByte(b *strings.Builder, bt byte) {
	fmt.Fprintf(b, `\x%02x`, bt)
}

func appendEscapedRune(b *strings.Builder, r rune) {
	switch {
	case r <= 0xFF:
		appendEscapedByte(b, byte(r))
	case r <= 0xFFFF:
		fmt.Fprintf(b, `\u%04x`, r)
	default:
		fmt.Fprintf(b, `\U%08x`, r)
	}
}
