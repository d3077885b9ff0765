package card

import (
	"encoding/xml"
	"strings"
	"testing"
)

func TestRender_EscapesAndIsWellFormed(t *testing.T) {
	svg, err := Render(Card{Slug: "abc", Text: `me & "you" <3`, Meaning: "it's love"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	s := string(svg)
	for _, want := range []string{"&amp;", "&lt;3", "meanin.com/p/abc", `fill="#8B5CFF"`, `width="1080"`} {
		if !strings.Contains(s, want) {
			t.Fatalf("missing %q in\n%s", want, s)
		}
	}
	if err := xml.Unmarshal(svg, new(struct{})); err != nil {
		t.Fatalf("not well-formed: %v", err)
	}
}

func TestRender_ClipsRunes(t *testing.T) {
	long := strings.Repeat("é", MaxText+50)
	svg, err := Render(Card{Slug: "s", Text: long, Meaning: strings.Repeat("&", MaxMeaning+1), Accent: "#FFF"})
	if err != nil {
		t.Fatal(err)
	}
	s := string(svg)
	if strings.Count(s, "é") != MaxText {
		t.Fatalf("want %d runes of text, got %d", MaxText, strings.Count(s, "é"))
	}
	if strings.Count(s, "&amp;") != MaxMeaning {
		t.Fatalf("meaning should be clipped before escaping")
	}
	if !strings.Contains(s, `fill="#FFF"`) {
		t.Fatalf("accent override ignored")
	}
}

func TestMeaningText(t *testing.T) {
	if got := MeaningText(" short ", "full"); got != "short" {
		t.Fatalf("got %q", got)
	}
	if got := MeaningText("", "full"); got != "full" {
		t.Fatalf("got %q", got)
	}
	if got := MeaningText(" ", ""); got != Placeholder {
		t.Fatalf("got %q", got)
	}
	if Path("x") != "cards/x.svg" {
		t.Fatalf("path")
	}
}
