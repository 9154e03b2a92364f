package lfsr

import (
	"fmt"
	"strings"

	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/gf2"
)

// Configuration selects the arrangement of the feedback taps.
type Configuration string

const (
	// Fibonacci XORs the tapped bits into the input end of the register.
	Fibonacci Configuration = "fibonacci"

	// Galois XORs the bit leaving the register into each tapped position.
	Galois Configuration = "galois"
)

// ParseConfiguration parses a configuration name, ignoring case.
func ParseConfiguration(s string) (Configuration, error) {
	c := Configuration(strings.ToLower(strings.TrimSpace(s)))
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

// Validate reports whether c is one of the two recognized configurations.
func (c Configuration) Validate() error {
	switch c {
	case Fibonacci, Galois:
		return nil
	default:
		return fmt.Errorf("%w: %q, should be either %q or %q", ErrInvalidConfiguration, string(c), Fibonacci, Galois)
	}
}

// String returns the configuration name.
func (c Configuration) String() string {
	return string(c)
}

// Config provides the serializable description of a register.
type Config struct {
	// Taps are the feedback polynomial powers, e.g. [5, 2] for x^5 + x^2 + 1.
	Taps []int `json:"taps" yaml:"taps" validate:"required,min=2,dive,min=1,max=64"`

	// InitState is "ones", "random" or an explicit bit string such as "11110".
	// Empty means "ones".
	InitState string `json:"init_state,omitempty" yaml:"init_state,omitempty"`

	// Configuration is "fibonacci" or "galois". Empty means "fibonacci".
	Configuration Configuration `json:"configuration,omitempty" yaml:"configuration,omitempty" validate:"omitempty,oneof=fibonacci galois"`

	// OutputIndex is the register position the output is read from.
	// Nil means the last position (-1).
	OutputIndex *int `json:"output_index,omitempty" yaml:"output_index,omitempty"`

	// CounterStartZero selects the counter start policy. Nil means true.
	CounterStartZero *bool `json:"counter_start_zero,omitempty" yaml:"counter_start_zero,omitempty"`
}

// Options converts the configuration into construction options.
func (c *Config) Options() ([]Option, error) {
	opts := []Option{}

	if c.InitState != "" {
		init, err := ParseInitialState(c.InitState)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithInitialState(init))
	}
	if c.Configuration != "" {
		conf, err := ParseConfiguration(string(c.Configuration))
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithConfiguration(conf))
	}
	if c.OutputIndex != nil {
		opts = append(opts, WithOutputIndex(*c.OutputIndex))
	}
	if c.CounterStartZero != nil {
		opts = append(opts, WithCounterStartZero(*c.CounterStartZero))
	}
	return opts, nil
}

// Build creates a register from the configuration. Extra options are applied
// after the ones derived from the configuration.
func (c *Config) Build(extra ...Option) (*Register, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return New(c.Taps, append(opts, extra...)...)
}

// Config describes the register as it was initialized, suitable for rebuilding it.
func (r *Register) Config() Config {
	outIndex := r.outIndex
	counterStartZero := r.counterStartZero
	return Config{
		Taps:             r.poly.Taps(),
		InitState:        r.initState.String(),
		Configuration:    r.conf,
		OutputIndex:      &outIndex,
		CounterStartZero: &counterStartZero,
	}
}

// InitKind enumerates the ways an initial state can be specified.
type InitKind int

const (
	// InitOnes is the all-ones register of length M.
	InitOnes InitKind = iota
	// InitRandom is a uniformly random register of length M.
	InitRandom
	// InitExplicit is a caller-supplied register.
	InitExplicit
)

// InitialState specifies how the register is filled at construction.
// It is resolved into concrete bits before any validation runs.
type InitialState struct {
	kind InitKind
	bits gf2.State
}

// Ones specifies the all-ones initial state.
func Ones() InitialState {
	return InitialState{kind: InitOnes}
}

// Random specifies a uniformly random initial state. The draw is not resampled;
// an all-zero draw fails construction with ErrInvalidState.
func Random() InitialState {
	return InitialState{kind: InitRandom}
}

// Explicit specifies the exact initial register contents. The bits are copied.
func Explicit(s gf2.State) InitialState {
	return InitialState{kind: InitExplicit, bits: s.Clone()}
}

// ParseInitialState parses "ones", "random" (or "rand") or a bit string.
// Bit strings are not validated here; that happens at construction.
func ParseInitialState(s string) (InitialState, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ones":
		return Ones(), nil
	case "random", "rand":
		return Random(), nil
	}
	seq, err := gf2.ParseSequence(s)
	if err != nil {
		return InitialState{}, fmt.Errorf("%w: unknown initial state %q", ErrInvalidState, s)
	}
	return InitialState{kind: InitExplicit, bits: gf2.State(seq)}, nil
}

// Kind returns how the state is specified.
func (i InitialState) Kind() InitKind {
	return i.kind
}

// String returns "ones", "random" or the explicit bit string.
func (i InitialState) String() string {
	switch i.kind {
	case InitOnes:
		return "ones"
	case InitRandom:
		return "random"
	default:
		return i.bits.String()
	}
}

// resolve turns i into concrete bits for a register of degree m.
func (i InitialState) resolve(m int, src gf2.Source) gf2.State {
	switch i.kind {
	case InitOnes:
		return gf2.Ones(m)
	case InitRandom:
		return gf2.DrawState(src, m)
	default:
		return i.bits.Clone()
	}
}
