// Package arith runs the digit-sequence addition and subtraction exercise.
//
// Input is two lines, each one digit sequence. Output is the sum on one line,
// then the difference, both as space-separated digits. A first operand that
// fails to parse prints n/a and the second line is never read. A difference
// that would be negative prints n/a in its place; the sum is still reported.
package arith
