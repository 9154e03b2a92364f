package lfsr

import "github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/gf2"

// Legacy names kept as thin forwarders for callers ported from older releases.

// Next performs a single step.
//
// Deprecated: use Step.
func (r *Register) Next() gf2.Bit {
	return r.Step()
}

// RunKCycle performs k steps.
//
// Deprecated: use Run.
func (r *Register) RunKCycle(k int) gf2.Sequence {
	return r.Run(k)
}

// RunFullCycle runs one period and returns the whole output sequence.
//
// Deprecated: misnomer, use RunFullPeriod.
func (r *Register) RunFullCycle() gf2.Sequence {
	r.RunFullPeriod()
	return r.Sequence()
}

// ChangeFpoly replaces the polynomial.
//
// Deprecated: use SetPolynomial.
func (r *Register) ChangeFpoly(taps []int, reset, enforce bool) error {
	return r.SetPolynomial(taps, reset, enforce)
}

// ChangeConf switches the configuration.
//
// Deprecated: use SetConfiguration.
func (r *Register) ChangeConf(conf Configuration) error {
	return r.SetConfiguration(conf, false)
}

// SetSeqBitIndex changes the output position.
//
// Deprecated: use SetOutputIndex.
func (r *Register) SetSeqBitIndex(index int) error {
	return r.SetOutputIndex(index)
}

// GetFPoly returns the polynomial.
//
// Deprecated: use Polynomial.
func (r *Register) GetFPoly() gf2.Polynomial {
	return r.Polynomial()
}

// GetCurrentState returns the current state.
//
// Deprecated: use State.
func (r *Register) GetCurrentState() gf2.State {
	return r.State()
}

// GetOutputSeq returns the output sequence.
//
// Deprecated: use Sequence.
func (r *Register) GetOutputSeq() gf2.Sequence {
	return r.Sequence()
}

// GetCount returns the step counter.
//
// Deprecated: use Count.
func (r *Register) GetCount() int {
	return r.Count()
}

// GetExpectedPeriod returns 2^M - 1.
//
// Deprecated: use ExpectedPeriod.
func (r *Register) GetExpectedPeriod() uint64 {
	return r.ExpectedPeriod()
}
