package digits

import (
	"strings"

	"github.com/pkg/errors"

	"drills/internal/domain"
)

// DefaultCapacity is the largest digit count accepted by Parse when the
// caller has no configured limit of its own.
const DefaultCapacity = 100

// Digits is a non-negative integer as decimal digits, most significant first.
// Each element is in [0,9].
type Digits []uint8

// String returns the digits separated by single spaces.
func (d Digits) String() string {
	var b strings.Builder
	b.Grow(2 * len(d))
	for i, x := range d {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('0' + x)
	}
	return b.String()
}

// Parse reads one digit sequence from line, token by token like
// scanf("%d%c"): optional leading blanks, an optionally signed integer, then
// one separator character of any kind. A line terminator ends the input.
//
// A token outside [0,9] (such as 10 or -3), a token that is not an integer,
// or an empty sequence fails with domain.ErrParse. More than capacity tokens
// fails with domain.ErrCapacityExceeded.
func Parse(line string, capacity int) (Digits, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	line = strings.TrimRight(line, "\r\n")

	var d Digits
	for i := skipBlank(line, 0); i < len(line); i = skipBlank(line, i) {
		start := i
		if line[i] == '-' || line[i] == '+' {
			i++
		}
		j := i
		for j < len(line) && isDigit(line[j]) {
			j++
		}
		if j == i {
			return nil, errors.Wrapf(domain.ErrParse, "expected a digit at offset %d", start)
		}

		sig := strings.TrimLeft(line[i:j], "0")
		if len(sig) > 1 || (line[start] == '-' && sig != "") {
			return nil, errors.Wrapf(domain.ErrParse, "%s is not a digit", line[start:j])
		}
		if len(d) == capacity {
			return nil, errors.Wrapf(domain.ErrCapacityExceeded, "more than %d digits", capacity)
		}
		var x uint8
		if sig != "" {
			x = sig[0] - '0'
		}
		d = append(d, x)

		// The run of digits is maximal, so line[j] is the separator.
		i = j
		if i < len(line) {
			i++
		}
	}
	if len(d) == 0 {
		return nil, errors.Wrap(domain.ErrParse, "no digits")
	}
	return d, nil
}

func skipBlank(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// Reverse returns a copy of d with the digit order reversed.
func Reverse(d Digits) Digits {
	z := make(Digits, len(d))
	copy(z, d)
	z.reverse()
	return z
}

// reverse swaps element i with len-1-i in place.
func (z Digits) reverse() {
	for i, j := 0, len(z)-1; i < j; i, j = i+1, j-1 {
		z[i], z[j] = z[j], z[i]
	}
}

// msd returns d without leading zeros, keeping at least one digit.
func (d Digits) msd() Digits {
	i := 0
	for i < len(d)-1 && d[i] == 0 {
		i++
	}
	return d[i:]
}

// at returns the i-th least significant digit of a reversed sequence, or 0
// past its end.
func (z Digits) at(i int) uint8 {
	if i < len(z) {
		return z[i]
	}
	return 0
}
