package gf2

import "errors"

var (
	// ErrInvalidPolynomial is returned for tap sets with fewer than two taps,
	// taps outside [1, M] or duplicated taps.
	ErrInvalidPolynomial = errors.New("invalid feedback polynomial")

	// ErrInvalidState is returned for register contents that are empty, non-binary,
	// all-zero or of the wrong length.
	ErrInvalidState = errors.New("invalid state vector")
)
