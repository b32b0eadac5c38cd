package search

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/pkg/errors"

	"drills/internal/domain"
	"drills/internal/stats"
	"drills/internal/textio"
)

// Service reads a sample of at most capacity integers.
type Service struct {
	capacity int
	log      *slog.Logger
}

// New returns a Service rejecting samples larger than capacity.
func New(capacity int, logger *slog.Logger) *Service {
	return &Service{capacity: capacity, log: logger.With("program", "search")}
}

// Run reads "n x1 ... xn" from in and prints the search result to out.
func (s *Service) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	xs, err := s.read(textio.NewScanner(in))
	if err != nil {
		if !errors.Is(err, domain.ErrParse) && !errors.Is(err, domain.ErrCapacityExceeded) {
			return err
		}
		s.log.Debug("rejected input", "error", err)
		return textio.WriteNA(out)
	}

	sample := stats.NewSample(xs)
	x, found := sample.Search()
	s.log.Debug("searched",
		"n", len(xs),
		"mean", sample.Mean(),
		"sigma", sample.Sigma(),
		"found", found)
	_, err = fmt.Fprintln(out, x)
	return err
}

func (s *Service) read(sc *textio.Scanner) ([]int, error) {
	n, err := sc.Int()
	if err != nil {
		return nil, err
	}
	switch {
	case n <= 0:
		return nil, errors.Wrapf(domain.ErrParse, "sample size %d", n)
	case n > s.capacity:
		return nil, errors.Wrapf(domain.ErrCapacityExceeded, "sample size %d over %d", n, s.capacity)
	}
	xs := make([]int, n)
	for i := range xs {
		if xs[i], err = sc.Int(); err != nil {
			return nil, errors.Wrapf(err, "value %d of %d", i+1, n)
		}
	}
	return xs, sc.End()
}

var _ domain.Program = (*Service)(nil)
