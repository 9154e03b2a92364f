package generators

import (
	"fmt"

	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/gf2"
	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/lfsr"
)

// Geffe3 combines three registers stepped together.
//
// The default combiner is (r1 AND r2) XOR ((NOT r1) AND r2), which reduces to
// r2. WithClassicCombiner switches to (r1 AND r2) XOR ((NOT r1) AND r3), where
// r1 selects between r2 and r3.
type Geffe3 struct {
	regs    [3]*lfsr.Register
	classic bool

	count     int
	last      [3]gf2.Bit
	outputBit gf2.Bit
	seq       gf2.Sequence

	s *settings
}

// NewGeffe3 takes ownership of r1, r2 and r3 and produces the first output bit
// from their initial states, so Count is 1 on return.
func NewGeffe3(r1, r2, r3 *lfsr.Register, opts ...Option) (*Geffe3, error) {
	for i, r := range []*lfsr.Register{r1, r2, r3} {
		if r == nil {
			return nil, fmt.Errorf("%w: register R%d", ErrMissingRegister, i+1)
		}
	}

	g := &Geffe3{
		regs: [3]*lfsr.Register{r1, r2, r3},
		s:    newSettings(opts),
	}
	g.classic = g.s.classic
	g.Step()

	g.s.log.Debug("geffe3 generator created", "classic", g.classic)
	return g, nil
}

// Step performs one cycle and returns the output bit.
func (g *Geffe3) Step() gf2.Bit {
	if g.count > 0 {
		for _, r := range g.regs {
			r.Step()
		}
	}

	for i, r := range g.regs {
		g.last[i] = r.Bit(-1)
	}
	r1, r2, r3 := g.last[0], g.last[1], g.last[2]
	if g.classic {
		g.outputBit = (r1 & r2) ^ (r1.Not() & r3)
	} else {
		g.outputBit = (r1 & r2) ^ (r1.Not() & r2)
	}

	g.seq = append(g.seq, g.outputBit)
	g.count++
	return g.outputBit
}

// Run performs k cycles and returns the k output bits. It panics if k is negative.
func (g *Geffe3) Run(k int) gf2.Sequence {
	if k < 0 {
		panic(fmt.Sprintf("generators: negative cycle count %d", k))
	}
	out := make(gf2.Sequence, k)
	for i := range out {
		out[i] = g.Step()
	}
	return out
}

// Reset resets the registers and produces the first output bit again.
func (g *Geffe3) Reset() {
	for _, r := range g.regs {
		r.Reset()
	}
	g.count = 0
	g.seq = nil
	g.Step()
	g.s.log.Debug("geffe3 generator reset")
}

// Classic reports whether the textbook combiner is in use.
func (g *Geffe3) Classic() bool {
	return g.classic
}

// LastBits returns r1, r2 and r3 as read on the last cycle.
func (g *Geffe3) LastBits() [3]gf2.Bit {
	return g.last
}

// State returns the three register contents, R1 first.
func (g *Geffe3) State() gf2.State {
	return concatStates(g.regs[:])
}

// Sequence returns a copy of the output bits.
func (g *Geffe3) Sequence() gf2.Sequence {
	return g.seq.Clone()
}

// Count returns the number of output bits produced.
func (g *Geffe3) Count() int {
	return g.count
}

// OutputBit returns the last output bit.
func (g *Geffe3) OutputBit() gf2.Bit {
	return g.outputBit
}
