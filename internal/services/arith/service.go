package arith

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/pkg/errors"

	"drills/internal/digits"
	"drills/internal/domain"
	"drills/internal/textio"
)

// Service adds and subtracts two digit sequences read from a stream.
type Service struct {
	capacity int
	log      *slog.Logger
}

// New returns a Service accepting operands of up to capacity digits.
func New(capacity int, logger *slog.Logger) *Service {
	return &Service{capacity: capacity, log: logger.With("program", "arith")}
}

// Run reads both operands from in and prints the results to out.
func (s *Service) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	sc := textio.NewScanner(in)

	x, err := s.operand(sc)
	if err != nil {
		return s.reject(out, "first operand", err)
	}
	y, err := s.operand(sc)
	if err != nil {
		return s.reject(out, "second operand", err)
	}

	sum := digits.Add(x, y)
	s.log.Debug("sum", "digits", len(sum))
	if _, err := fmt.Fprintln(out, sum); err != nil {
		return err
	}

	diff, err := digits.Sub(x, y)
	if errors.Is(err, domain.ErrNotRepresentable) {
		s.log.Debug("difference is negative", "lhs", len(x), "rhs", len(y))
		return textio.WriteNA(out)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, diff)
	return err
}

func (s *Service) operand(sc *textio.Scanner) (digits.Digits, error) {
	line, err := sc.Line()
	if err != nil {
		return nil, err
	}
	return digits.Parse(line, s.capacity)
}

// reject prints the sentinel for input errors and passes I/O errors through.
func (s *Service) reject(out io.Writer, what string, err error) error {
	if !errors.Is(err, domain.ErrParse) && !errors.Is(err, domain.ErrCapacityExceeded) {
		return errors.Wrapf(err, "reading %s", what)
	}
	s.log.Debug("rejected input", "operand", what, "error", err)
	return textio.WriteNA(out)
}

var _ domain.Program = (*Service)(nil)
