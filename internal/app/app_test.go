package app_test

import (
	"testing"

	"drills/internal/app"
)

func TestNew_Defaults(t *testing.T) {
	a, err := app.New(app.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if a.Arith == nil || a.Search == nil || a.Sort == nil {
		t.Fatal("program not wired")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []func(*app.Config){
		func(c *app.Config) { c.MaxDigits = 0 },
		func(c *app.Config) { c.MaxSamples = -1 },
		func(c *app.Config) { c.SortSize = 0 },
	}
	for i, mutate := range tests {
		cfg := app.DefaultConfig()
		mutate(&cfg)
		if _, err := app.New(cfg, nil); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}
