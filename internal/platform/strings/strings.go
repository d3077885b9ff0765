// Package strings holds small text helpers used across handlers and repos
package strings

import (
	std "strings"
	"unicode/utf8"
)

// MustString returns s unless it is blank, in which case it panics naming the value
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalises a mount path to a single leading slash and no trailing slash
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}

// FirstNonEmpty returns the first value with non-blank content, trimmed
func FirstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if t := std.TrimSpace(v); t != "" {
			return t
		}
	}
	return ""
}

// Truncate cuts s to at most n runes
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}

// DistinctFold trims each value, drops blanks and case-insensitive repeats,
// and keeps at most max values in input order. max <= 0 means no cap.
func DistinctFold(vals []string, max int) []string {
	out := make([]string, 0, len(vals))
	seen := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		v = std.TrimSpace(v)
		if v == "" {
			continue
		}
		k := std.ToLower(v)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
		if max > 0 && len(out) == max {
			break
		}
	}
	return out
}

var likeEscaper = std.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE/ILIKE wildcards so s matches literally
func EscapeLike(s string) string { return likeEscaper.Replace(s) }

// Contains wraps s for a literal "contains" ILIKE match
func Contains(s string) string { return "%" + EscapeLike(s) + "%" }

// SQLNull maps blank strings to a NULL query argument
func SQLNull(s string) any {
	if std.TrimSpace(s) == "" {
		return nil
	}
	return s
}

// Deref returns "" for nil
func Deref(ps *string) string {
	if ps == nil {
		return ""
	}
	return *ps
}

// Ptr returns nil for "" and &s otherwise
func Ptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
