// Package sorting implements the fixed-size bubble sort exercise.
package sorting

import "golang.org/x/exp/constraints"

// DefaultSize is the number of values the sort program reads.
const DefaultSize = 10

// Bubble sorts xs ascending in place. Each pass carries the largest
// remaining value to the end of the unsorted prefix.
func Bubble[T constraints.Ordered](xs []T) {
	for i := 0; i < len(xs)-1; i++ {
		for j := 0; j < len(xs)-i-1; j++ {
			if xs[j] > xs[j+1] {
				xs[j], xs[j+1] = xs[j+1], xs[j]
			}
		}
	}
}
