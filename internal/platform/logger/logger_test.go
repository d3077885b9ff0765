package logger

import (
	"bytes"
	"context"
	"testing"

	kit "meanin/internal/platform/testkit"

	"github.com/rs/zerolog"
)

func TestLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"chatty":  zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := level(in); got != want {
			t.Fatalf("level(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInitNamedAndRequest(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{
		Level:   "debug",
		Format:  "json",
		Service: "meanin-api",
		Writer:  &buf,
		Static:  map[string]string{"build": "test"},
	})

	Named("decode").Info().Msg("named-msg")
	ctx := WithRequest(context.Background(), "req-123")
	C(ctx).Info().Msg("ctx-msg")
	C(context.Background()).Info().Msg("bare-msg")

	out := buf.String()
	kit.MustContain(t, out, `"component":"decode"`)
	kit.MustContain(t, out, `"request_id":"req-123"`)
	kit.MustContain(t, out, `"service":"meanin-api"`)
	kit.MustContain(t, out, `"build":"test"`)
	kit.MustContain(t, out, "bare-msg")

	if RequestID(ctx) != "req-123" || RequestID(context.Background()) != "" {
		t.Fatal("RequestID mismatch")
	}
	if WithRequest(ctx, "") != ctx {
		t.Fatal("empty id should not wrap ctx")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("LOG_SERVICE", "meanin-ctl")
	t.Setenv("LOG_CALLER", "yes")
	t.Setenv("LOG_SAMPLE_EVERY", "5")

	o := FromEnv()
	if o.Level != "warn" || o.Format != "json" || o.Service != "meanin-ctl" {
		t.Fatalf("FromEnv = %+v", o)
	}
	if !o.WithCaller || o.SampleEvery != 5 {
		t.Fatalf("FromEnv caller/sample = %+v", o)
	}
}
