package sort

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/pkg/errors"

	"drills/internal/domain"
	"drills/internal/sorting"
	"drills/internal/textio"
)

// Service reads exactly size integers and prints them in ascending order.
type Service struct {
	size int
	log  *slog.Logger
}

// New returns a Service reading exactly size values.
func New(size int, logger *slog.Logger) *Service {
	return &Service{size: size, log: logger.With("program", "sort")}
}

// Run sorts the values read from in. Invalid input prints n/a and returns an
// error wrapping both domain.ErrAborted, so the process exits non-zero, and
// the parse failure.
func (s *Service) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	xs, err := s.read(textio.NewScanner(in))
	if err != nil {
		if !errors.Is(err, domain.ErrParse) {
			return err
		}
		s.log.Debug("rejected input", "error", err)
		if err := textio.WriteNA(out); err != nil {
			return err
		}
		return fmt.Errorf("%w: %w", domain.ErrAborted, err)
	}
	sorting.Bubble(xs)
	return textio.WriteInts(out, xs)
}

func (s *Service) read(sc *textio.Scanner) ([]int, error) {
	xs := make([]int, s.size)
	for i := range xs {
		x, err := sc.Int()
		if err != nil {
			return nil, errors.Wrapf(err, "value %d of %d", i+1, s.size)
		}
		xs[i] = x
	}
	return xs, sc.End()
}

var _ domain.Program = (*Service)(nil)
