package xml2excel

import (
	"fmt"
	"strings"
	"unicode"
)

// SanitizeName maps an arbitrary string to a valid element name. Runes
// that may not appear in a name are hex-escaped as _xHHHH_, and a name
// whose first rune may not start a name gets a leading underscore. The
// function is pure and idempotent: a valid name passes through unchanged,
// and the same input always yields the same output.
func SanitizeName(s string) string {
	if s == "" {
		return "_"
	}
	var b strings.Builder
	for i, r := range s {
		switch {
		case i == 0 && isNameChar(r) && !isNameStart(r):
			// A leading digit (or dot, dash) is legal inside a name but
			// not at its start.
			b.WriteByte('_')
			b.WriteRune(r)
		case isNameChar(r):
			b.WriteRune(r)
		default:
			fmt.Fprintf(&b, "_x%04X_", r)
		}
	}
	return b.String()
}

// SingularName undoes the usual plural worksheet naming by stripping a
// single trailing "s" when present. It is a heuristic, not an inflector:
// irregular plurals pass through unchanged and "status" loses its "s".
func SingularName(s string) string {
	if len(s) > 1 && strings.HasSuffix(s, "s") {
		return s[:len(s)-1]
	}
	return s
}

func isNameStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

// Colons are excluded even though XML permits them: names here carry no
// namespace prefixes.
func isNameChar(r rune) bool {
	return isNameStart(r) || r == '-' || r == '.' || unicode.IsDigit(r)
}
