package generators

import (
	"log/slog"

	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/gf2"
	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/lfsr"
)

// BitSource produces one keystream bit per call.
type BitSource interface {
	Step() gf2.Bit
}

// Generator is a stepped keystream generator. *lfsr.Register and every
// composite generator in this package implement it.
type Generator interface {
	BitSource

	// Run performs k steps and returns the bits they produced.
	Run(k int) gf2.Sequence

	// Sequence returns every output bit since construction or the last reset.
	Sequence() gf2.Sequence

	// State returns the concatenated contents of all owned registers.
	State() gf2.State

	// Count returns the number of output bits produced.
	Count() int

	// Reset restores every owned register to its initial state.
	Reset()
}

var (
	_ Generator = (*lfsr.Register)(nil)
	_ Generator = (*A51)(nil)
	_ Generator = (*Geffe)(nil)
	_ Generator = (*Geffe3)(nil)
)

// Option configures a composite generator at construction.
type Option func(*settings)

type settings struct {
	src              gf2.Source
	counterStartZero bool
	classic          bool
	log              *slog.Logger
}

func newSettings(opts []Option) *settings {
	s := &settings{
		src:              gf2.DefaultSource,
		counterStartZero: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = slog.New(slog.DiscardHandler)
	}
	return s
}

// WithSource sets the random source used to resolve random register keys.
func WithSource(src gf2.Source) Option {
	return func(s *settings) {
		s.src = src
	}
}

// WithCounterStartZero selects the counter policy of registers the generator
// builds itself. Pre-built registers keep their own policy.
func WithCounterStartZero(zero bool) Option {
	return func(s *settings) {
		s.counterStartZero = zero
	}
}

// WithClassicCombiner makes Geffe3 use the textbook combining function
// (r1 AND r2) XOR ((NOT r1) AND r3). Other generators ignore it.
func WithClassicCombiner() Option {
	return func(s *settings) {
		s.classic = true
	}
}

// WithLogger attaches a logger receiving debug records on construction and reset.
func WithLogger(log *slog.Logger) Option {
	return func(s *settings) {
		s.log = log
	}
}

// concatStates joins register contents in order.
func concatStates(regs []*lfsr.Register) gf2.State {
	n := 0
	for _, r := range regs {
		n += r.Len()
	}
	out := make(gf2.State, 0, n)
	for _, r := range regs {
		out = append(out, r.State()...)
	}
	return out
}
