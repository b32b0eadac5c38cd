package app

import (
	"github.com/pkg/errors"

	"drills/internal/digits"
	"drills/internal/sorting"
	"drills/internal/stats"
)

// Config holds runtime options resolved from flags, environment and config
// file.
type Config struct {
	LogLevel   string // error, warn, info or debug
	MaxDigits  int    // digit capacity of each arith operand
	MaxSamples int    // largest sample the search program accepts
	SortSize   int    // exact count of values the sort program reads
}

// DefaultConfig returns the capacities of the classic exercises.
func DefaultConfig() Config {
	return Config{
		LogLevel:   "warn",
		MaxDigits:  digits.DefaultCapacity,
		MaxSamples: stats.DefaultCapacity,
		SortSize:   sorting.DefaultSize,
	}
}

// Validate checks that every capacity is positive.
func (c Config) Validate() error {
	switch {
	case c.MaxDigits <= 0:
		return errors.Errorf("max-digits must be positive, got %d", c.MaxDigits)
	case c.MaxSamples <= 0:
		return errors.Errorf("max-samples must be positive, got %d", c.MaxSamples)
	case c.SortSize <= 0:
		return errors.Errorf("sort-size must be positive, got %d", c.SortSize)
	}
	return nil
}
