package app

import (
	"log/slog"

	"drills/internal/domain"
	arithsvc "drills/internal/services/arith"
	searchsvc "drills/internal/services/search"
	sortsvc "drills/internal/services/sort"
)

// App bundles the programs reachable from the CLI.
type App struct {
	Arith  domain.Program
	Search domain.Program
	Sort   domain.Program
}

// New validates cfg and constructs the programs.
func New(cfg Config, logger *slog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		Arith:  arithsvc.New(cfg.MaxDigits, logger),
		Search: searchsvc.New(cfg.MaxSamples, logger),
		Sort:   sortsvc.New(cfg.SortSize, logger),
	}, nil
}
