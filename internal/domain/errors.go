package domain

import "errors"

var (
	// ErrParse reports a malformed or out-of-range input token.
	ErrParse = errors.New("malformed input")

	// ErrCapacityExceeded reports input longer than the configured capacity.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrNotRepresentable reports a subtraction whose result would be negative.
	ErrNotRepresentable = errors.New("result not representable")

	// ErrAborted tells the CLI to exit non-zero after the program already
	// printed its sentinel.
	ErrAborted = errors.New("aborted")
)
