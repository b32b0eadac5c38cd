package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"error", "WARN", " info ", "Debug"} {
		if _, err := ParseLevel(s); err != nil {
			t.Errorf("ParseLevel(%q): %v", s, err)
		}
	}
	if _, err := ParseLevel("trace"); err == nil {
		t.Error("ParseLevel(trace) succeeded")
	}
}

func TestHandler_Format(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, slog.LevelDebug)).With("program", "arith")
	l.Debug("parsed", "digits", 3)
	l.Info("done")
	l.WithGroup("op").Warn("underflow", "lhs", "5")

	want := "[DEBUG] parsed program=arith digits=3\n" +
		"done program=arith\n" +
		"[WARN] underflow program=arith op.lhs=5\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSetLevel_Filters(t *testing.T) {
	prev := output
	defer func() {
		SetOutput(prev)
		_ = SetLevel(LevelWarn)
	}()

	var buf bytes.Buffer
	SetOutput(&buf)
	if err := SetLevel(LevelWarn); err != nil {
		t.Fatal(err)
	}
	Debug("hidden")
	Info("hidden")
	Warn("shown")
	if got := buf.String(); strings.Contains(got, "hidden") || !strings.Contains(got, "shown") {
		t.Fatalf("unexpected output %q", got)
	}
}
