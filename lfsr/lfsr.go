package lfsr

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/gf2"
)

// Register is an M-bit linear feedback shift register over GF(2).
// A Register is not safe for concurrent use.
type Register struct {
	poly             gf2.Polynomial
	initSpec         InitialState
	initState        gf2.State
	state            gf2.State
	conf             Configuration
	outIndex         int
	counterStartZero bool

	count       int
	outputBit   gf2.Bit
	feedbackBit gf2.Bit
	hasOutput   bool
	seq         gf2.Sequence

	src gf2.Source
	log *slog.Logger
}

// Option configures a Register at construction.
type Option func(*settings)

type settings struct {
	init             InitialState
	conf             Configuration
	outIndex         int
	counterStartZero bool
	src              gf2.Source
	log              *slog.Logger
}

// WithInitialState sets how the register is filled. Defaults to Ones().
func WithInitialState(init InitialState) Option {
	return func(s *settings) {
		s.init = init
	}
}

// WithState is shorthand for WithInitialState(Explicit(state)).
func WithState(state gf2.State) Option {
	return WithInitialState(Explicit(state))
}

// WithConfiguration sets the tap arrangement. Defaults to Fibonacci.
func WithConfiguration(conf Configuration) Option {
	return func(s *settings) {
		s.conf = conf
	}
}

// WithOutputIndex sets the register position the output bit is read from.
// Negative indexes count from the end. Defaults to -1, the last position.
func WithOutputIndex(index int) Option {
	return func(s *settings) {
		s.outIndex = index
	}
}

// WithCounterStartZero selects the counter start policy. Defaults to true.
func WithCounterStartZero(zero bool) Option {
	return func(s *settings) {
		s.counterStartZero = zero
	}
}

// WithSource sets the random source used for Random() states.
// Defaults to gf2.DefaultSource.
func WithSource(src gf2.Source) Option {
	return func(s *settings) {
		s.src = src
	}
}

// WithLogger attaches a logger receiving debug records for construction,
// mutation and reset. Registers are silent by default.
func WithLogger(log *slog.Logger) Option {
	return func(s *settings) {
		s.log = log
	}
}

// New creates a register with the given feedback taps.
//
// Parameters:
//   - taps: feedback polynomial powers, at least two, unique, all >= 1
//   - opts: initial state, configuration, output index, counter policy
//
// Returns:
//   - the register, with taps stored in descending order
//   - an error matching ErrInvalidPolynomial, ErrInvalidState,
//     ErrInvalidConfiguration or ErrInvalidOutputIndex
func New(taps []int, opts ...Option) (*Register, error) {
	s := &settings{
		init:             Ones(),
		conf:             Fibonacci,
		outIndex:         -1,
		counterStartZero: true,
		src:              gf2.DefaultSource,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = slog.New(slog.DiscardHandler)
	}

	if err := s.conf.Validate(); err != nil {
		return nil, err
	}

	poly, err := gf2.NewPolynomial(taps...)
	if err != nil {
		return nil, err
	}

	state := s.init.resolve(poly.Degree(), s.src)
	if err := checkState(state, poly, s.conf); err != nil {
		return nil, err
	}

	if err := checkOutputIndex(s.outIndex, poly.Degree()); err != nil {
		return nil, err
	}

	r := &Register{
		poly:             poly,
		initSpec:         s.init,
		initState:        state.Clone(),
		state:            state,
		conf:             s.conf,
		outIndex:         s.outIndex,
		counterStartZero: s.counterStartZero,
		src:              s.src,
		log:              s.log,
	}
	r.restart()

	r.log.Debug("register created",
		"polynomial", r.poly.String(),
		"configuration", r.conf,
		"state", r.state.String(),
		"outputIndex", r.outIndex,
		"counterStartZero", r.counterStartZero)

	return r, nil
}

// checkState validates register contents for a polynomial and configuration.
func checkState(state gf2.State, poly gf2.Polynomial, conf Configuration) error {
	if err := state.Validate(); err != nil {
		return err
	}
	if conf == Galois && len(state) != poly.Degree() {
		return fmt.Errorf("%w: for galois configuration the state length (%d) must equal the polynomial degree (%d)",
			ErrInvalidState, len(state), poly.Degree())
	}
	if len(state) < poly.Degree() {
		return fmt.Errorf("%w: state length %d is shorter than polynomial degree %d",
			ErrInvalidState, len(state), poly.Degree())
	}
	return nil
}

func checkOutputIndex(index int, m int) error {
	if index < -m || index >= m {
		return fmt.Errorf("%w: output can be taken from registers [%d, %d), index %d provided",
			ErrInvalidOutputIndex, -m, m, index)
	}
	return nil
}

// restart clears the counters and sequence according to the counter start policy.
func (r *Register) restart() {
	r.seq = gf2.Sequence{}
	if r.counterStartZero {
		r.count = 0
		r.hasOutput = false
		r.outputBit = 0
		r.feedbackBit = 0
		return
	}
	r.count = 1
	r.hasOutput = true
	r.outputBit = r.state.At(r.outIndex)
	r.feedbackBit = r.outputBit
	r.seq = append(r.seq, r.outputBit)
}

// Step performs a single state transition and returns the output bit.
func (r *Register) Step() gf2.Bit {
	if r.counterStartZero {
		r.emit()
	}

	n := len(r.state)
	switch r.conf {
	case Galois:
		fb := r.state[0]
		copy(r.state, r.state[1:])
		r.state[n-1] = fb
		for _, t := range r.poly[1:] {
			r.state[t-1] ^= fb
		}
		r.feedbackBit = fb
	default:
		var fb gf2.Bit
		for _, t := range r.poly {
			fb ^= r.state[t-1]
		}
		copy(r.state[1:], r.state[:n-1])
		r.state[0] = fb
		r.feedbackBit = fb
	}

	if !r.counterStartZero {
		r.emit()
	}
	r.count++
	return r.outputBit
}

func (r *Register) emit() {
	r.outputBit = r.state.At(r.outIndex)
	r.hasOutput = true
	r.seq = append(r.seq, r.outputBit)
}

// Run performs k steps and returns the k output bits they produced.
// It panics if k is negative.
func (r *Register) Run(k int) gf2.Sequence {
	if k < 0 {
		panic(fmt.Sprintf("lfsr: negative cycle count %d", k))
	}
	out := make(gf2.Sequence, k)
	for i := range out {
		out[i] = r.Step()
	}
	return out
}

// RunFullPeriod performs 2^M - 1 steps and returns the bits produced.
// It panics if the period does not fit in an int, which happens from degree 63.
// The property checks never call it for periods above 2^31 - 1.
func (r *Register) RunFullPeriod() gf2.Sequence {
	period := r.ExpectedPeriod()
	if period > math.MaxInt {
		panic(fmt.Sprintf("lfsr: period of a degree %d register is too large to run", r.poly.Degree()))
	}
	return r.Run(int(period))
}

// State returns a copy of the current register contents.
func (r *Register) State() gf2.State {
	return r.state.Clone()
}

// Bit returns the current bit at register index i without copying the state.
// Negative indexes count from the end; i must lie in [-Len, Len-1].
func (r *Register) Bit(i int) gf2.Bit {
	return r.state.At(i)
}

// Len returns the register length. It equals Degree unless a longer
// explicit state was supplied in Fibonacci configuration.
func (r *Register) Len() int {
	return len(r.state)
}

// InitialState returns a copy of the resolved initial register contents.
func (r *Register) InitialState() gf2.State {
	return r.initState.Clone()
}

// Polynomial returns a copy of the feedback polynomial.
func (r *Register) Polynomial() gf2.Polynomial {
	return gf2.Polynomial(r.poly.Taps())
}

// Degree returns M, the degree of the feedback polynomial.
func (r *Register) Degree() int {
	return r.poly.Degree()
}

// ExpectedPeriod returns 2^M - 1.
func (r *Register) ExpectedPeriod() uint64 {
	return r.poly.ExpectedPeriod()
}

// Sequence returns a copy of every output bit produced since the last reset.
func (r *Register) Sequence() gf2.Sequence {
	return r.seq.Clone()
}

// Count returns the step counter.
func (r *Register) Count() int {
	return r.count
}

// OutputBit returns the most recent output bit. ok is false until the first
// bit has been produced.
func (r *Register) OutputBit() (bit gf2.Bit, ok bool) {
	return r.outputBit, r.hasOutput
}

// FeedbackBit returns the most recent feedback bit. ok is false until the
// first bit has been produced.
func (r *Register) FeedbackBit() (bit gf2.Bit, ok bool) {
	return r.feedbackBit, r.hasOutput
}

// Configuration returns the tap arrangement.
func (r *Register) Configuration() Configuration {
	return r.conf
}

// OutputIndex returns the register position the output is read from.
func (r *Register) OutputIndex() int {
	return r.outIndex
}

// CounterStartZero reports the counter start policy.
func (r *Register) CounterStartZero() bool {
	return r.counterStartZero
}
