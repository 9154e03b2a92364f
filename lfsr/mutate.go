package lfsr

import (
	"fmt"

	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/gf2"
)

// Reset restores the initial state and clears the counter and sequence.
// The polynomial, configuration and output index in effect are kept.
func (r *Register) Reset() {
	r.state = r.initState.Clone()
	r.restart()
	r.log.Debug("register reset", "state", r.state.String(), "count", r.count)
}

// SetPolynomial replaces the feedback polynomial.
//
// Unless enforce is set the new degree must equal the current one; resizing
// fails with ErrIncompatibleMutation. With enforce the new polynomial must still
// fit both the current and the initial state. If reset is set the register is
// reset after the change.
func (r *Register) SetPolynomial(taps []int, reset, enforce bool) error {
	poly, err := gf2.NewPolynomial(taps...)
	if err != nil {
		return err
	}
	if !enforce && poly.Degree() != r.poly.Degree() {
		return fmt.Errorf("%w: polynomial degree %d differs from register degree %d",
			ErrIncompatibleMutation, poly.Degree(), r.poly.Degree())
	}
	for _, s := range []gf2.State{r.state, r.initState} {
		if err := poly.FitsRegister(len(s)); err != nil {
			return err
		}
		if r.conf == Galois && len(s) != poly.Degree() {
			return fmt.Errorf("%w: galois configuration needs degree %d to match state length %d",
				ErrInvalidPolynomial, poly.Degree(), len(s))
		}
	}
	if err := checkOutputIndex(r.outIndex, poly.Degree()); err != nil {
		return err
	}

	r.poly = poly
	r.log.Debug("polynomial changed", "polynomial", r.poly.String())
	if reset {
		r.Reset()
	}
	return nil
}

// SetState replaces the current register contents without touching the
// counter, sequence or stored initial state.
//
// Unless enforce is set the new state must have the current length; a different
// length fails with ErrIncompatibleMutation.
func (r *Register) SetState(init InitialState, enforce bool) error {
	state := init.resolve(r.poly.Degree(), r.src)
	if !enforce && len(state) != len(r.state) {
		return fmt.Errorf("%w: state length %d differs from register length %d",
			ErrIncompatibleMutation, len(state), len(r.state))
	}
	if err := checkState(state, r.poly, r.conf); err != nil {
		return err
	}

	r.state = state
	r.log.Debug("state changed", "state", r.state.String())
	return nil
}

// SetConfiguration switches between Fibonacci and Galois. The current and
// initial states must satisfy the constraints of the new configuration.
func (r *Register) SetConfiguration(conf Configuration, reset bool) error {
	if err := conf.Validate(); err != nil {
		return err
	}
	for _, s := range []gf2.State{r.state, r.initState} {
		if err := checkState(s, r.poly, conf); err != nil {
			return err
		}
	}

	r.conf = conf
	r.log.Debug("configuration changed", "configuration", r.conf)
	if reset {
		r.Reset()
	}
	return nil
}

// SetOutputIndex changes the register position the output is read from.
// The index must lie in [-M, M-1].
func (r *Register) SetOutputIndex(index int) error {
	if err := checkOutputIndex(index, r.poly.Degree()); err != nil {
		return err
	}
	r.outIndex = index
	return nil
}

// Reinit rebuilds the register with a new polynomial and initial state while
// keeping its configuration, output index and counter policy. Unless enforce is
// set the degree and state length must not change. On error the register is
// left untouched.
func (r *Register) Reinit(taps []int, init InitialState, enforce bool) error {
	if !enforce {
		if len(taps) > 0 && maxTap(taps) != r.poly.Degree() {
			return fmt.Errorf("%w: polynomial degree %d differs from register degree %d",
				ErrIncompatibleMutation, maxTap(taps), r.poly.Degree())
		}
		if init.Kind() == InitExplicit && len(init.bits) != len(r.state) {
			return fmt.Errorf("%w: state length %d differs from register length %d",
				ErrIncompatibleMutation, len(init.bits), len(r.state))
		}
	}

	fresh, err := New(taps,
		WithInitialState(init),
		WithConfiguration(r.conf),
		WithOutputIndex(r.outIndex),
		WithCounterStartZero(r.counterStartZero),
		WithSource(r.src),
		WithLogger(r.log))
	if err != nil {
		return err
	}
	*r = *fresh
	return nil
}

func maxTap(taps []int) int {
	m := taps[0]
	for _, t := range taps[1:] {
		m = max(m, t)
	}
	return m
}
