package normalize

import (
	"strings"
	"unicode/utf8"
)

// keep reports whether the decoded rune survives Sanitize
func keep(r rune, size int) bool {
	switch {
	case r == utf8.RuneError && size == 1:
		return false
	case r == '\t', r == '\n', r == '\r':
		return true
	case r < 0x20, r == 0x7F:
		return false
	case r >= 0x80 && r <= 0x9F:
		return false
	}
	return true
}

// Sanitize drops NUL, ASCII controls other than tab and line breaks, DEL,
// C1 controls and invalid UTF-8. Clean input is returned unchanged.
func Sanitize(s string) string {
	dirty := 0
	for dirty < len(s) {
		r, size := utf8.DecodeRuneInString(s[dirty:])
		if !keep(r, size) {
			break
		}
		dirty += size
	}
	if dirty == len(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:dirty])
	for rest := s[dirty:]; rest != ""; {
		r, size := utf8.DecodeRuneInString(rest)
		if keep(r, size) {
			b.WriteString(rest[:size])
		}
		rest = rest[size:]
	}
	return b.String()
}
