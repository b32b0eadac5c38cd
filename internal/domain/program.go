package domain

import (
	"context"
	"io"
)

// Program is one self-contained exercise: it reads its input from in and
// writes exactly one result line (or the n/a sentinel) to out.
type Program interface {
	Run(ctx context.Context, in io.Reader, out io.Writer) error
}
