package search_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"drills/internal/services/search"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"first even above mean", "4\n2 9 7 10\n", "10\n"},
		{"none qualifies", "3\n1 3 5\n", "0\n"},
		{"single value", "1\n8\n", "8\n"},
		{"values across lines", "3\n2\n4\n6", "4\n"},
		{"zero count", "0\n", "n/a\n"},
		{"negative count", "-2\n1 2\n", "n/a\n"},
		{"count over capacity", "31\n", "n/a\n"},
		{"too few values", "3\n1 2\n", "n/a\n"},
		{"non-numeric value", "2\n1 x\n", "n/a\n"},
		{"trailing garbage", "2\n1 2 3\n", "n/a\n"},
		{"trailing space", "2\n1 2 \n", "n/a\n"},
		{"empty input", "", "n/a\n"},
	}
	svc := search.New(30, slog.New(slog.NewTextHandler(io.Discard, nil)))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := svc.Run(context.Background(), strings.NewReader(tt.in), &out); err != nil {
				t.Fatalf("Run: %v", err)
			}
			if got := out.String(); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}
