package normalize

import "testing"

func TestFold(t *testing.T) {
	tests := []struct {
		name, in, out string
	}{
		{"ascii", "We need to talk", "we need to talk"},
		{"invalid utf8", string([]byte{0xff, 'l', 'o', 'v', 'e', 0x80}), "love"},
		{"zero width", "he\u200bart\u200dbreak", "heartbreak"},
		{"combining accent", "cafe\u0301", "cafe"},
		{"precomposed accent", "Caf\u00e9 Cr\u00e8me", "cafe creme"},
		{"fullwidth", "\uff2c\uff2f\uff36\uff25 you", "love you"},
		{"ligature", "o\ufb03ce drama", "office drama"},
		{"whitespace", "  a\t\tb\nc   d ", "a b c d"},
		{"empty", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Fold(tc.in); got != tc.out {
				t.Fatalf("Fold(%q) = %q, want %q", tc.in, got, tc.out)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	in := "ok\x00\x07 line\nnext\x7f\u0085!"
	if got := Sanitize(in); got != "ok line\nnext!" {
		t.Fatalf("Sanitize = %q", got)
	}
	clean := "nothing to do\n"
	if got := Sanitize(clean); got != clean {
		t.Fatalf("clean input changed: %q", got)
	}
}

func TestClean(t *testing.T) {
	if got := Clean("  \tsilence speaks\n\n"); got != "silence speaks" {
		t.Fatalf("Clean = %q", got)
	}
	if got := Clean(" \x00 "); got != "" {
		t.Fatalf("Clean = %q", got)
	}
}
