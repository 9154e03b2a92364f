package testutil

import (
	"math/rand/v2"
	"testing"

	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/gf2"
	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/lfsr"
	"github.com/stretchr/testify/require"
)

// Reference full-period output sequences (output index -1, counter starting at zero).
const (
	// Period53 is one period of x^5 + x^3 + 1 from 11110.
	Period53 = "0111110001101110101000010010110"

	// Period51 is 31 bits of the reducible x^5 + x + 1 from 11110.
	Period51 = "0111110101001100010000111110101"

	// Period52 is one period of x^5 + x^2 + 1 from 11111.
	Period52 = "1111100110100100001010111011000"

	// Period52Galois is one period of x^5 + x^2 + 1 from 11111 in Galois configuration.
	Period52Galois = "1110011010010000101011101100011"
)

// Trace32 is the first 14 output bits of x^3 + x^2 + 1 from 111.
const Trace32 = "11100101110010"

// =====================================
// Configuration Generators
// =====================================

// TestConfigOption modifies an lfsr.Config.
type TestConfigOption func(*lfsr.Config)

// WithTaps sets the feedback polynomial.
func WithTaps(taps ...int) TestConfigOption {
	return func(cfg *lfsr.Config) {
		cfg.Taps = taps
	}
}

// WithInitState sets the initial state ("ones", "random" or a bit string).
func WithInitState(state string) TestConfigOption {
	return func(cfg *lfsr.Config) {
		cfg.InitState = state
	}
}

// WithGalois selects the Galois configuration.
func WithGalois() TestConfigOption {
	return func(cfg *lfsr.Config) {
		cfg.Configuration = lfsr.Galois
	}
}

// WithOutputIndex sets the output register position.
func WithOutputIndex(index int) TestConfigOption {
	return func(cfg *lfsr.Config) {
		cfg.OutputIndex = &index
	}
}

// WithCounterStartZero sets the counter start policy.
func WithCounterStartZero(zero bool) TestConfigOption {
	return func(cfg *lfsr.Config) {
		cfg.CounterStartZero = &zero
	}
}

// NewTestConfig creates a register config with test defaults: x^5 + x^3 + 1
// from 11110 in Fibonacci configuration.
func NewTestConfig(options ...TestConfigOption) *lfsr.Config {
	cfg := &lfsr.Config{
		Taps:          []int{5, 3},
		InitState:     "11110",
		Configuration: lfsr.Fibonacci,
	}

	for _, option := range options {
		option(cfg)
	}

	return cfg
}

// =====================================
// Register Generators
// =====================================

// NewTestRegister builds a register from NewTestConfig(options...) and fails
// the test if construction fails.
func NewTestRegister(t testing.TB, options ...TestConfigOption) *lfsr.Register {
	t.Helper()

	r, err := NewTestConfig(options...).Build()
	require.NoError(t, err)
	return r
}

// NewTestRegisters builds one all-ones register per tap set.
func NewTestRegisters(t testing.TB, taps ...[]int) []*lfsr.Register {
	t.Helper()

	rs := make([]*lfsr.Register, len(taps))
	for i, tp := range taps {
		rs[i] = NewTestRegister(t, WithTaps(tp...), WithInitState("ones"))
	}
	return rs
}

// SeededSource returns a deterministic random source for state draws.
func SeededSource(seed uint64) gf2.Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// MustState parses a bit string and fails the test on error.
func MustState(t testing.TB, s string) gf2.State {
	t.Helper()

	state, err := gf2.ParseState(s)
	require.NoError(t, err)
	return state
}

// MustSequence parses a bit string and fails the test on error.
func MustSequence(t testing.TB, s string) gf2.Sequence {
	t.Helper()

	seq, err := gf2.ParseSequence(s)
	require.NoError(t, err)
	return seq
}

// ZeroSource always returns zero, so every draw is the all-zero state.
type ZeroSource struct{}

// Uint64 implements gf2.Source.
func (ZeroSource) Uint64() uint64 { return 0 }
