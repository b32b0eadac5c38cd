// Package stats finds the first even value that sits at or above the mean of
// its sample and within three standard deviations of it.
package stats

import (
	"math"

	moremath "github.com/aclements/go-moremath/stats"
)

// DefaultCapacity is the largest sample size accepted by the search program.
const DefaultCapacity = 30

// Sample is an integer sample with its mean and population deviation.
type Sample struct {
	xs    []int
	mean  float64
	sigma float64
}

// NewSample computes the statistics of xs. xs must not be empty.
func NewSample(xs []int) *Sample {
	fs := make([]float64, len(xs))
	for i, x := range xs {
		fs[i] = float64(x)
	}
	s := moremath.Sample{Xs: fs}
	n := float64(len(fs))

	// Sample.Variance divides by n-1; rescale to the population variance.
	var variance float64
	if n > 1 {
		variance = s.Variance() * (n - 1) / n
	}
	return &Sample{
		xs:    xs,
		mean:  s.Mean(),
		sigma: math.Sqrt(variance),
	}
}

// Mean returns the arithmetic mean.
func (s *Sample) Mean() float64 { return s.mean }

// Sigma returns the population standard deviation.
func (s *Sample) Sigma() float64 { return s.sigma }

// Accepts reports whether x is a non-zero even value no smaller than the
// mean and at most three deviations away from it.
func (s *Sample) Accepts(x int) bool {
	return x != 0 &&
		x%2 == 0 &&
		float64(x) >= s.mean &&
		math.Abs(float64(x)-s.mean) <= 3*s.sigma
}

// Search returns the first accepted value in sample order.
func (s *Sample) Search() (int, bool) {
	for _, x := range s.xs {
		if s.Accepts(x) {
			return x, true
		}
	}
	return 0, false
}
