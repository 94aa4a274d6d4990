package logger

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestLoggerInit(t *testing.T) {
	if err := Init(Options{Level: "info"}); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	if Get() == nil {
		t.Fatal("logger is nil after initialization")
	}

	if err := Init(Options{Level: "debug", Format: "json"}); err != nil {
		t.Fatalf("failed to initialize json logger: %v", err)
	}
	Named("test").Info(context.Background(), "test message", String("k", "v"))
}

func TestLoggerInitRejectsUnknownFormat(t *testing.T) {
	if err := Init(Options{Format: "xml"}); err == nil {
		t.Fatal("expected an error for an unknown format")
	}
}

func TestNewWritesStructuredRecords(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, Options{Level: "debug", Format: "json", AddCaller: true})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	l.Named("engine").With(String("event", "2026flwp")).Warn(context.Background(), "fetch failed",
		String("call", "teams"), Error(errors.New("boom")))

	out := buf.String()
	for _, want := range []string{`"msg":"fetch failed"`, `"event":"2026flwp"`, `"call":"teams"`, `"source":"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in %s", want, out)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, Options{Level: "warn"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	l.Info(context.Background(), "hidden")
	l.Debug(context.Background(), "hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected nothing below warn, got %q", buf.String())
	}
	l.Error(context.Background(), "shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("expected error record, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	for _, in := range []string{"debug", "INFO", "", " warn ", "warning", "error"} {
		if _, err := ParseLevel(in); err != nil {
			t.Errorf("ParseLevel(%q) returned %v", in, err)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

func TestNop(t *testing.T) {
	Nop().Error(context.Background(), "discarded", Int("n", 1))
}
