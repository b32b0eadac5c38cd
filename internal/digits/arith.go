package digits

import "drills/internal/domain"

// Compare returns -1, 0 or +1 depending on whether x is less than, equal to
// or greater than y. Leading zeros do not count towards the length, so the
// length shortcut always agrees with the numeric order.
func Compare(x, y Digits) int {
	x, y = x.msd(), y.msd()
	switch {
	case len(x) > len(y):
		return 1
	case len(x) < len(y):
		return -1
	}
	for i := range x {
		switch {
		case x[i] > y[i]:
			return 1
		case x[i] < y[i]:
			return -1
		}
	}
	return 0
}

// Add returns x + y. The result has one more digit than the longer operand
// when the final position carries.
func Add(x, y Digits) Digits {
	a, b := Reverse(x), Reverse(y)
	n := max(len(a), len(b))

	z := make(Digits, 0, n+1)
	var carry uint8
	for i := 0; i < n || carry != 0; i++ {
		s := a.at(i) + b.at(i) + carry
		z = append(z, s%10)
		carry = s / 10
	}
	z.reverse()
	return z
}

// Sub returns x - y with leading zeros removed. It fails with
// domain.ErrNotRepresentable if x < y.
func Sub(x, y Digits) (Digits, error) {
	if Compare(x, y) < 0 {
		return nil, domain.ErrNotRepresentable
	}
	a, b := Reverse(x), Reverse(y)
	// y may only be longer than x through leading zeros; those positions
	// subtract 0.
	n := max(len(a), len(b))

	z := make(Digits, n)
	var borrow int8
	for i := 0; i < n; i++ {
		d := int8(a.at(i)) - int8(b.at(i)) - borrow
		if d < 0 {
			d += 10
			borrow = 1
		} else {
			borrow = 0
		}
		z[i] = uint8(d)
	}

	// z is least significant first: trailing zeros are leading zeros.
	for len(z) > 1 && z[len(z)-1] == 0 {
		z = z[:len(z)-1]
	}
	z.reverse()
	return z, nil
}
