// Package langhint guesses the language of post text and reads the viewer's
// preferred language from an Accept-Language header.
package langhint

import (
	"strings"
	"unicode"

	"golang.org/x/text/language"
)

// minLetters is the least evidence needed before a post language is stored
const minLetters = 12

// script tables in tie-break order; decisive scripts map to one language
var scripts = []struct {
	name  string
	table *unicode.RangeTable
	lang  string
}{
	{"Hiragana", unicode.Hiragana, "ja"},
	{"Katakana", unicode.Katakana, "ja"},
	{"Hangul", unicode.Hangul, "ko"},
	{"Han", unicode.Han, ""},
	{"Arabic", unicode.Arabic, "ar"},
	{"Hebrew", unicode.Hebrew, "he"},
	{"Thai", unicode.Thai, "th"},
	{"Greek", unicode.Greek, "el"},
	{"Cyrillic", unicode.Cyrillic, ""},
	{"Devanagari", unicode.Devanagari, ""},
	{"Latin", unicode.Latin, ""},
}

// Post returns the dominant script of s and, when the script names one
// language and there are enough letters, that language code. Latin text
// yields no language; Han, Cyrillic and Devanagari are too ambiguous.
func Post(s string) (script, lang string) {
	counts := make([]int, len(scripts))
	total := 0
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		total++
		for i, sc := range scripts {
			if unicode.Is(sc.table, r) {
				counts[i]++
				break
			}
		}
	}
	best := -1
	for i, n := range counts {
		if n > 0 && (best < 0 || n > counts[best]) {
			best = i
		}
	}
	if best < 0 {
		return "", ""
	}
	script = scripts[best].name
	if total < minLetters {
		return script, ""
	}
	// kana anywhere settles Japanese even when Han dominates
	if counts[0]+counts[1] > 0 {
		return script, "ja"
	}
	return script, scripts[best].lang
}

// Viewer returns the base language of the first Accept-Language entry, or
// "" when the header is empty or malformed
func Viewer(accept string) string {
	first := strings.TrimSpace(strings.Split(accept, ",")[0])
	if first == "" || first == "*" {
		return ""
	}
	tags, _, err := language.ParseAcceptLanguage(first)
	if err != nil || len(tags) == 0 {
		// keep the raw primary subtag for tags the parser refuses
		return strings.ToLower(strings.TrimSpace(strings.Split(strings.Split(first, ";")[0], "-")[0]))
	}
	base, _ := tags[0].Base()
	return base.String()
}
