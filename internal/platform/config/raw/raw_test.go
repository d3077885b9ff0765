package raw

import "testing"

func TestGet(t *testing.T) {
	t.Setenv("LOG_SERVICE", " meanin-api ")
	c := New().Prefix("LOG_")
	if got := c.Get("SERVICE", "x"); got != "meanin-api" {
		t.Fatalf("Get = %q", got)
	}
	if got := c.Get("MISSING", "def"); got != "def" {
		t.Fatalf("Get default = %q", got)
	}
}

func TestGetBool(t *testing.T) {
	c := New().Prefix("B_")
	cases := map[string]bool{"1": true, "TRUE": true, "yes": true, "no": false, "0": false}
	for in, want := range cases {
		t.Setenv("B_V", in)
		if got := c.GetBool("V", !want); got != want {
			t.Fatalf("GetBool(%q) = %v", in, got)
		}
	}
	if !c.GetBool("UNSET", true) {
		t.Fatal("default not used")
	}
}

func TestGetInt(t *testing.T) {
	c := New().Prefix("I_")
	t.Setenv("I_OK", " 12 ")
	t.Setenv("I_NEG", "-1")
	t.Setenv("I_BAD", "1x")
	if got := c.GetInt("OK", 0); got != 12 {
		t.Fatalf("GetInt = %d", got)
	}
	if got := c.GetInt("NEG", 5); got != 5 {
		t.Fatalf("GetInt negative = %d", got)
	}
	if got := c.GetInt("BAD", 7); got != 7 {
		t.Fatalf("GetInt invalid = %d", got)
	}
}
