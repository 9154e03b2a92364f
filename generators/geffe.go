package generators

import (
	"fmt"
	"math/bits"

	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/gf2"
	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/lfsr"
)

// Geffe selects between K component registers with a selector register.
//
// On every cycle after the first, all components are stepped. Then log2(K)
// output bits are drawn from the selector and read most significant first as
// the index of the component whose last bit becomes the output.
type Geffe struct {
	components []*lfsr.Register
	selector   *lfsr.Register
	width      int

	count         int
	selectorSteps int
	selected      int
	outputBit     gf2.Bit
	seq           gf2.Sequence

	s *settings
}

// NewGeffe takes ownership of the components and the selector. The number of
// components must be a power of two greater than one.
func NewGeffe(components []*lfsr.Register, selector *lfsr.Register, opts ...Option) (*Geffe, error) {
	k := len(components)
	if k < 2 || bits.OnesCount(uint(k)) != 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSelectorWidth, k)
	}
	if selector == nil {
		return nil, fmt.Errorf("%w: selector", ErrMissingRegister)
	}
	for i, r := range components {
		if r == nil {
			return nil, fmt.Errorf("%w: component %d", ErrMissingRegister, i)
		}
	}

	g := &Geffe{
		components: append([]*lfsr.Register(nil), components...),
		selector:   selector,
		width:      bits.TrailingZeros(uint(k)),
		selected:   -1,
		s:          newSettings(opts),
	}
	g.s.log.Debug("geffe generator created", "components", k, "selectorWidth", g.width)
	return g, nil
}

// Step performs one cycle and returns the output bit.
func (g *Geffe) Step() gf2.Bit {
	if g.count > 0 {
		for _, r := range g.components {
			r.Step()
		}
	}

	sel := 0
	for _, b := range g.selector.Run(g.width) {
		sel = sel<<1 | int(b)
	}
	g.selectorSteps += g.width
	g.selected = sel

	g.outputBit = g.components[sel].Bit(-1)
	g.seq = append(g.seq, g.outputBit)
	g.count++
	return g.outputBit
}

// Run performs k cycles and returns the k output bits. It panics if k is negative.
func (g *Geffe) Run(k int) gf2.Sequence {
	if k < 0 {
		panic(fmt.Sprintf("generators: negative cycle count %d", k))
	}
	out := make(gf2.Sequence, k)
	for i := range out {
		out[i] = g.Step()
	}
	return out
}

// Reset resets every register and clears the output.
func (g *Geffe) Reset() {
	for _, r := range g.components {
		r.Reset()
	}
	g.selector.Reset()
	g.count = 0
	g.selectorSteps = 0
	g.selected = -1
	g.outputBit = 0
	g.seq = nil
	g.s.log.Debug("geffe generator reset")
}

// K returns the number of component registers.
func (g *Geffe) K() int {
	return len(g.components)
}

// SelectorWidth returns log2(K), the selector bits drawn per cycle.
func (g *Geffe) SelectorWidth() int {
	return g.width
}

// Selected returns the component index chosen on the last cycle, or -1 before
// the first cycle.
func (g *Geffe) Selected() int {
	return g.selected
}

// SelectorSteps returns the total number of selector bits drawn.
func (g *Geffe) SelectorSteps() int {
	return g.selectorSteps
}

// ComponentBits returns the current last bit of every component.
func (g *Geffe) ComponentBits() []gf2.Bit {
	out := make([]gf2.Bit, len(g.components))
	for i, r := range g.components {
		out[i] = r.Bit(-1)
	}
	return out
}

// ComponentState returns the concatenated contents of the components.
func (g *Geffe) ComponentState() gf2.State {
	return concatStates(g.components)
}

// SelectorState returns the current selector contents.
func (g *Geffe) SelectorState() gf2.State {
	return g.selector.State()
}

// State returns the components' contents followed by the selector's.
func (g *Geffe) State() gf2.State {
	return append(g.ComponentState(), g.selector.State()...)
}

// Sequence returns a copy of the output bits.
func (g *Geffe) Sequence() gf2.Sequence {
	return g.seq.Clone()
}

// Count returns the number of output bits produced.
func (g *Geffe) Count() int {
	return g.count
}

// OutputBit returns the last output bit; ok is false before the first cycle.
func (g *Geffe) OutputBit() (bit gf2.Bit, ok bool) {
	return g.outputBit, g.count > 0
}
