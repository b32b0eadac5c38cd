package arith_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"drills/internal/services/arith"
)

func run(t *testing.T, capacity int, in string) string {
	t.Helper()
	svc := arith.New(capacity, slog.New(slog.NewTextHandler(io.Discard, nil)))
	var out bytes.Buffer
	if err := svc.Run(context.Background(), strings.NewReader(in), &out); err != nil {
		t.Fatalf("Run(%q): %v", in, err)
	}
	return out.String()
}

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"carry and canonical difference", "1 2\n9\n", "2 1\n3\n"},
		{"negative difference", "5\n9\n", "1 4\nn/a\n"},
		{"carry into new digit", "9 9 9\n1\n", "1 0 0 0\n9 9 8\n"},
		{"equal operands", "4 2\n4 2\n", "8 4\n0\n"},
		{"no trailing newline", "1 0\n1", "1 1\n9\n"},
		{"letter in first operand", "1 a\n9\n", "n/a\n"},
		{"negative digit in first operand", "1 -3\n9\n", "n/a\n"},
		{"digit above nine in first operand", "1 10\n5\n", "n/a\n"},
		{"digit above nine in second operand", "5\n1 10\n", "n/a\n"},
		{"undelimited number is one token", "12\n9\n", "n/a\n"},
		{"comma separators", "1,2\n9\n", "2 1\n3\n"},
		{"empty first operand", "\n9\n", "n/a\n"},
		{"empty input", "", "n/a\n"},
		{"bad second operand", "1 2\nx\n", "n/a\n"},
		{"missing second operand", "1 2\n", "n/a\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := run(t, 100, tt.in); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRun_Capacity(t *testing.T) {
	if got := run(t, 3, "1 2 3\n1\n"); got != "1 2 4\n1 2 2\n" {
		t.Fatalf("at capacity: got %q", got)
	}
	if got := run(t, 3, "1 2 3 4\n1\n"); got != "n/a\n" {
		t.Fatalf("over capacity: got %q", got)
	}
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc := arith.New(100, slog.Default())
	if err := svc.Run(ctx, strings.NewReader("1\n1\n"), io.Discard); err == nil {
		t.Fatal("expected context error")
	}
}
