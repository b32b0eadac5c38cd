// Package sort runs the fixed-size bubble sort exercise: read exactly the
// configured number of integers and print them in ascending order. Invalid
// input prints n/a and makes the process exit with status 1.
package sort
