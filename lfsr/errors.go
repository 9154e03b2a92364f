package lfsr

import (
	"errors"

	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/gf2"
)

var (
	// ErrInvalidPolynomial is gf2.ErrInvalidPolynomial, re-exported for callers of this package.
	ErrInvalidPolynomial = gf2.ErrInvalidPolynomial

	// ErrInvalidState is gf2.ErrInvalidState, re-exported for callers of this package.
	ErrInvalidState = gf2.ErrInvalidState

	// ErrInvalidConfiguration is returned for a configuration other than fibonacci or galois.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidOutputIndex is returned for an output index outside [-M, M-1].
	ErrInvalidOutputIndex = errors.New("invalid output index")

	// ErrIncompatibleMutation is returned when a mutation would change the register
	// size while enforcement is off.
	ErrIncompatibleMutation = errors.New("incompatible mutation")
)
