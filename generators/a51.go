package generators

import (
	"fmt"

	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/gf2"
	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/lfsr"
)

const a51KeyBits = 64

var (
	a51Lengths = [3]int{19, 22, 23}
	a51Taps    = [3][]int{
		{19, 18, 17, 14},
		{22, 21},
		{23, 22, 21, 8},
	}
	// register positions holding the clocking bits
	a51ClockIndex = [3]int{8, 10, 10}
)

// a51Info labels the HKDF expansion used by NewA51FromSecret.
const a51Info = "lfsr/a5-1"

// A51 is the A5/1 keystream generator.
//
// On every cycle after the first, the registers whose clocking bit agrees with
// the majority of the three clocking bits are stepped. The output is the XOR of
// the last bit of each register.
type A51 struct {
	regs [3]*lfsr.Register
	key  string

	count     int
	outputBit gf2.Bit
	seq       gf2.Sequence

	s *settings
}

// NewA51 builds the three registers from key. Random register keys are drawn
// from the configured source and resampled until non-zero.
func NewA51(key A51Key, opts ...Option) (*A51, error) {
	s := newSettings(opts)

	a := &A51{s: s}
	for i, init := range []lfsr.InitialState{key.R1, key.R2, key.R3} {
		state, err := resolveKey(init, a51Lengths[i], s.src)
		if err != nil {
			return nil, fmt.Errorf("register R%d: %w", i+1, err)
		}
		r, err := lfsr.New(a51Taps[i],
			lfsr.WithState(state),
			lfsr.WithCounterStartZero(s.counterStartZero))
		if err != nil {
			return nil, fmt.Errorf("%w: register R%d: %w", ErrInvalidKey, i+1, err)
		}
		a.regs[i] = r
		a.key += state.String()
	}

	s.log.Debug("a5/1 generator created", "key", a.key)
	return a, nil
}

// NewA51FromSecret derives the 64 key bits from secret with DeriveKey.
func NewA51FromSecret(secret []byte, opts ...Option) (*A51, error) {
	states, err := DeriveKey(secret, a51Info, a51Lengths[:]...)
	if err != nil {
		return nil, err
	}
	return NewA51(A51Key{
		R1: lfsr.Explicit(states[0]),
		R2: lfsr.Explicit(states[1]),
		R3: lfsr.Explicit(states[2]),
	}, opts...)
}

// Step performs one cycle and returns the output bit. The first cycle
// outputs the initial state's bit without stepping any register.
func (a *A51) Step() gf2.Bit {
	if a.count > 0 {
		clockBits := a.ClockBits()
		maj := gf2.Majority(clockBits[0], clockBits[1], clockBits[2])
		for i, r := range a.regs {
			if clockBits[i] == maj {
				r.Step()
			}
		}
	}

	last := a.LastBits()
	a.outputBit = last[0] ^ last[1] ^ last[2]
	a.seq = append(a.seq, a.outputBit)
	a.count++
	return a.outputBit
}

// Run performs k cycles and returns the k output bits. It panics if k is negative.
func (a *A51) Run(k int) gf2.Sequence {
	if k < 0 {
		panic(fmt.Sprintf("generators: negative cycle count %d", k))
	}
	out := make(gf2.Sequence, k)
	for i := range out {
		out[i] = a.Step()
	}
	return out
}

// Reset restores the key and clears the output.
func (a *A51) Reset() {
	for _, r := range a.regs {
		r.Reset()
	}
	a.count = 0
	a.outputBit = 0
	a.seq = nil
	a.s.log.Debug("a5/1 generator reset")
}

// Key returns the 64-bit key the registers were loaded with.
func (a *A51) Key() string {
	return a.key
}

// ClockBits returns the current clocking bits of R1, R2 and R3.
func (a *A51) ClockBits() [3]gf2.Bit {
	var out [3]gf2.Bit
	for i, r := range a.regs {
		out[i] = r.Bit(a51ClockIndex[i])
	}
	return out
}

// Majority returns the majority of the current clocking bits, the value a
// register's clocking bit must match to be stepped on the next cycle.
func (a *A51) Majority() gf2.Bit {
	c := a.ClockBits()
	return gf2.Majority(c[0], c[1], c[2])
}

// LastBits returns the last bit of R1, R2 and R3.
func (a *A51) LastBits() [3]gf2.Bit {
	var out [3]gf2.Bit
	for i, r := range a.regs {
		out[i] = r.Bit(-1)
	}
	return out
}

// RegisterStates returns the current contents of R1, R2 and R3.
func (a *A51) RegisterStates() [3]gf2.State {
	var out [3]gf2.State
	for i, r := range a.regs {
		out[i] = r.State()
	}
	return out
}

// RegisterCounts returns how many times each register has been stepped.
func (a *A51) RegisterCounts() [3]int {
	var out [3]int
	for i, r := range a.regs {
		out[i] = r.Count()
	}
	return out
}

// State returns the 64 register bits, R1 first.
func (a *A51) State() gf2.State {
	return concatStates(a.regs[:])
}

// Sequence returns a copy of the output bits.
func (a *A51) Sequence() gf2.Sequence {
	return a.seq.Clone()
}

// Count returns the number of output bits produced.
func (a *A51) Count() int {
	return a.count
}

// OutputBit returns the last output bit; ok is false before the first cycle.
func (a *A51) OutputBit() (bit gf2.Bit, ok bool) {
	return a.outputBit, a.count > 0
}
