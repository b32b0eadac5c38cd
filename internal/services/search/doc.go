// Package search runs the statistical search exercise.
//
// Input is a count n followed by n integers and a line terminator. Output is
// the first non-zero even value that is at least the sample mean and within
// three population standard deviations of it, or 0 when none qualifies.
// Rejected input prints n/a; the exit status stays zero.
package search
