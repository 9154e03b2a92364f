package generators

import (
	"bytes"
	"testing"

	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/gf2"
	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/lfsr"
	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testA51Key = "1011000111010100101100110110001010101111000011110000111101011010"

func TestA51KnownOutput(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		output    string
		states    [3]string
		counts    [3]int
		clockBits [3]gf2.Bit
	}{
		{
			name:      "ones",
			key:       "ones",
			output:    "11111111111111111111101111111100",
			states:    [3]string{"1000000000101110000", "0000010000000000000000", "01000001111111100000000"},
			counts:    [3]int{29, 27, 23},
			clockBits: [3]gf2.Bit{0, 0, 1},
		},
		{
			name:      "explicit",
			key:       testA51Key,
			output:    "11010000011001001001010010100001",
			states:    [3]string{"1011000110001010111", "0001001010101101001111", "11011111011101000011111"},
			counts:    [3]int{18, 29, 24},
			clockBits: [3]gf2.Bit{1, 1, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ParseA51Key(tt.key)
			require.NoError(t, err)
			a, err := NewA51(key)
			require.NoError(t, err)
			require.Len(t, a.Key(), 64)
			require.Equal(t, 0, a.Count())
			_, ok := a.OutputBit()
			require.False(t, ok)

			out := a.Run(32)
			require.Equal(t, tt.output, out.String())
			require.Equal(t, out, a.Sequence())
			require.Equal(t, 32, a.Count())

			states := a.RegisterStates()
			for i := range states {
				assert.Equal(t, tt.states[i], states[i].String(), "R%d", i+1)
			}
			assert.Equal(t, tt.counts, a.RegisterCounts())
			assert.Equal(t, tt.clockBits, a.ClockBits())
			assert.Equal(t, tt.states[0]+tt.states[1]+tt.states[2], a.State().String())
		})
	}
}

func TestA51FirstCycleDoesNotClock(t *testing.T) {
	key, err := ParseA51Key(testA51Key)
	require.NoError(t, err)
	a, err := NewA51(key)
	require.NoError(t, err)

	before := a.State()
	last := a.LastBits()
	bit := a.Step()
	require.Equal(t, before, a.State())
	require.Equal(t, last[0]^last[1]^last[2], bit)
	require.Equal(t, [3]int{0, 0, 0}, a.RegisterCounts())
	require.Equal(t, testA51Key, a.Key())
}

func TestA51MajorityClocking(t *testing.T) {
	a, err := NewA51FromSecret([]byte("majority"))
	require.NoError(t, err)
	a.Step()

	for range 200 {
		clock := a.ClockBits()
		maj := a.Majority()
		before := a.RegisterCounts()
		a.Step()
		after := a.RegisterCounts()

		stepped := 0
		for i := range clock {
			if clock[i] == maj {
				require.Equal(t, before[i]+1, after[i])
				stepped++
			} else {
				require.Equal(t, before[i], after[i])
			}
		}
		require.GreaterOrEqual(t, stepped, 2)
	}
}

func TestA51Reset(t *testing.T) {
	key, err := ParseA51Key(testA51Key)
	require.NoError(t, err)
	a, err := NewA51(key)
	require.NoError(t, err)

	first := a.Run(50)
	a.Reset()
	require.Equal(t, 0, a.Count())
	require.Empty(t, a.Sequence())
	require.Equal(t, testA51Key, a.State().String())
	require.Equal(t, first, a.Run(50))
}

func TestA51Keys(t *testing.T) {
	a, err := NewA51(RandomA51Key(), WithSource(testutil.SeededSource(7)))
	require.NoError(t, err)
	b, err := NewA51(RandomA51Key(), WithSource(testutil.SeededSource(7)))
	require.NoError(t, err)
	require.Equal(t, a.Key(), b.Key())
	require.Equal(t, a.Run(64), b.Run(64))

	key, err := ParseA51RegisterKeys("ones", "random", "11111111111111111111110")
	require.NoError(t, err)
	c, err := NewA51(key, WithSource(testutil.SeededSource(1)))
	require.NoError(t, err)
	require.Equal(t, "1111111111111111111", c.RegisterStates()[0].String())
	require.Equal(t, "11111111111111111111110", c.RegisterStates()[2].String())

	_, err = ParseA51Key("1011")
	require.ErrorIs(t, err, ErrInvalidKey)
	_, err = ParseA51Key("xyz")
	require.ErrorIs(t, err, ErrInvalidKey)
	_, err = ParseA51RegisterKeys("ones", "maybe", "ones")
	require.ErrorIs(t, err, ErrInvalidKey)

	short, err := ParseA51RegisterKeys("ones", "1011", "ones")
	require.NoError(t, err)
	_, err = NewA51(short)
	require.ErrorIs(t, err, ErrInvalidKey)

	zero := A51Key{R1: lfsr.Ones(), R2: lfsr.Explicit(make(gf2.State, 22)), R3: lfsr.Ones()}
	_, err = NewA51(zero)
	require.ErrorIs(t, err, ErrInvalidKey)
}

func newComponents(t *testing.T) []*lfsr.Register {
	return []*lfsr.Register{
		testutil.NewTestRegister(t, testutil.WithInitState("ones")),
		testutil.NewTestRegister(t, testutil.WithTaps(5, 2), testutil.WithInitState("ones")),
		testutil.NewTestRegister(t, testutil.WithTaps(4, 3), testutil.WithInitState("1001")),
		testutil.NewTestRegister(t, testutil.WithTaps(3, 2), testutil.WithInitState("111")),
	}
}

func TestGeffeKnownOutput(t *testing.T) {
	selector := testutil.NewTestRegister(t, testutil.WithTaps(7, 6), testutil.WithInitState("ones"))
	g, err := NewGeffe(newComponents(t), selector)
	require.NoError(t, err)
	require.Equal(t, 4, g.K())
	require.Equal(t, 2, g.SelectorWidth())
	require.Equal(t, -1, g.Selected())

	selections := []int{3, 3, 3, 2, 0, 0, 1, 0, 0, 1, 2, 0, 1, 1, 0, 1, 3, 2, 1, 0, 1, 1, 2, 1}
	var out gf2.Sequence
	for i, want := range selections {
		bits := g.ComponentBits()
		bit := g.Step()
		if i == 0 {
			require.Equal(t, bits[want], bit)
		}
		require.Equal(t, want, g.Selected(), "cycle %d", i)
		require.Equal(t, g.ComponentBits()[want], bit)
		out = append(out, bit)
	}

	require.Equal(t, "111110001011010010101001", out.String())
	require.Equal(t, 48, g.SelectorSteps())
	require.Equal(t, 24, g.Count())
	require.Len(t, g.State(), 5+5+4+3+7)
}

func TestGeffeTwoComponents(t *testing.T) {
	comps := []*lfsr.Register{
		testutil.NewTestRegister(t),
		testutil.NewTestRegister(t, testutil.WithTaps(5, 2), testutil.WithInitState("ones")),
	}
	selector := testutil.NewTestRegister(t, testutil.WithTaps(3, 2), testutil.WithInitState("111"))
	g, err := NewGeffe(comps, selector)
	require.NoError(t, err)

	require.Equal(t, "1111100110100100", g.Run(16).String())
	require.Equal(t, 16, g.SelectorSteps())

	g.Reset()
	require.Equal(t, 0, g.SelectorSteps())
	require.Equal(t, -1, g.Selected())
	require.Equal(t, "111", g.SelectorState().String())
	require.Equal(t, "1111011111", g.ComponentState().String())
	require.Equal(t, "1111100110100100", g.Run(16).String())
}

func TestGeffeValidation(t *testing.T) {
	selector := testutil.NewTestRegister(t)
	for _, k := range []int{0, 1, 3, 5, 6} {
		comps := make([]*lfsr.Register, k)
		for i := range comps {
			comps[i] = testutil.NewTestRegister(t)
		}
		_, err := NewGeffe(comps, selector)
		require.ErrorIs(t, err, ErrInvalidSelectorWidth, "k=%d", k)
	}

	_, err := NewGeffe(newComponents(t), nil)
	require.ErrorIs(t, err, ErrMissingRegister)
	_, err = NewGeffe([]*lfsr.Register{testutil.NewTestRegister(t), nil}, selector)
	require.ErrorIs(t, err, ErrMissingRegister)

	wide := testutil.NewTestRegisters(t,
		[]int{5, 3}, []int{5, 2}, []int{4, 3}, []int{4, 1},
		[]int{3, 2}, []int{3, 1}, []int{6, 5}, []int{7, 6})
	g, err := NewGeffe(wide, selector)
	require.NoError(t, err)
	require.Equal(t, 3, g.SelectorWidth())
}

func newGeffe3Registers(t *testing.T) (*lfsr.Register, *lfsr.Register, *lfsr.Register) {
	return testutil.NewTestRegister(t),
		testutil.NewTestRegister(t, testutil.WithTaps(5, 2), testutil.WithInitState("ones")),
		testutil.NewTestRegister(t, testutil.WithTaps(3, 2), testutil.WithInitState("111"))
}

func TestGeffe3LiteralCombiner(t *testing.T) {
	r1, r2, r3 := newGeffe3Registers(t)
	g, err := NewGeffe3(r1, r2, r3)
	require.NoError(t, err)
	require.False(t, g.Classic())

	// the first bit is produced on construction
	require.Equal(t, 1, g.Count())
	require.Equal(t, "1", g.Sequence().String())

	g.Run(19)
	require.Equal(t, "11111001101001000010", g.Sequence().String())

	// output follows r2 alone
	ref := testutil.NewTestRegister(t, testutil.WithTaps(5, 2), testutil.WithInitState("ones"))
	require.Equal(t, ref.Run(20), g.Sequence())
}

func TestGeffe3ClassicCombiner(t *testing.T) {
	r1, r2, r3 := newGeffe3Registers(t)
	g, err := NewGeffe3(r1, r2, r3, WithClassicCombiner())
	require.NoError(t, err)
	require.True(t, g.Classic())

	g.Run(19)
	require.Equal(t, "11111001101001010011", g.Sequence().String())

	for range 50 {
		bit := g.Step()
		last := g.LastBits()
		if last[0] == 1 {
			require.Equal(t, last[1], bit)
		} else {
			require.Equal(t, last[2], bit)
		}
		require.Equal(t, bit, g.OutputBit())
	}

	g.Reset()
	require.Equal(t, 1, g.Count())
	require.Equal(t, "1111011111111", g.State().String())
}

func TestGeffe3Validation(t *testing.T) {
	r1, r2, _ := newGeffe3Registers(t)
	_, err := NewGeffe3(r1, r2, nil)
	require.ErrorIs(t, err, ErrMissingRegister)
}

func TestDeriveKey(t *testing.T) {
	states, err := DeriveKey([]byte("secret"), "test", 19, 22, 23, 1)
	require.NoError(t, err)
	require.Len(t, states, 4)
	for i, n := range []int{19, 22, 23, 1} {
		require.Len(t, states[i], n)
		require.False(t, states[i].IsZero())
		require.NoError(t, states[i].Validate())
	}
	// a single-bit register can only be 1
	require.Equal(t, gf2.State{1}, states[3])

	again, err := DeriveKey([]byte("secret"), "test", 19, 22, 23, 1)
	require.NoError(t, err)
	require.Equal(t, states, again)

	other, err := DeriveKey([]byte("secret"), "other", 19, 22, 23, 1)
	require.NoError(t, err)
	require.NotEqual(t, states[:3], other[:3])

	_, err = DeriveKey(nil, "test", 5)
	require.ErrorIs(t, err, ErrInvalidKey)
	_, err = DeriveKey([]byte("secret"), "test", 5, 0)
	require.ErrorIs(t, err, ErrInvalidKey)
	_, err = DeriveKey([]byte("secret"), "test", maxDerivedBits+1)
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestUnpackBits(t *testing.T) {
	require.Equal(t, "1000000011", unpackBits([]byte{0x80, 0xc0}, 10).String())
}

func TestStreamRoundTrip(t *testing.T) {
	plaintext := []byte("linear feedback shift registers")

	enc, err := NewA51FromSecret([]byte("k"))
	require.NoError(t, err)
	ciphertext := make([]byte, len(plaintext))
	NewStream(enc).XORKeyStream(ciphertext, plaintext)
	require.NotEqual(t, plaintext, ciphertext)
	require.Equal(t, 8*len(plaintext), enc.Count())

	dec, err := NewA51FromSecret([]byte("k"))
	require.NoError(t, err)
	decrypted := make([]byte, len(ciphertext))
	NewStream(dec).XORKeyStream(decrypted, ciphertext)
	require.True(t, bytes.Equal(plaintext, decrypted))
}

func TestKeystream(t *testing.T) {
	r := testutil.NewTestRegister(t, testutil.WithTaps(3, 2), testutil.WithInitState("111"))
	require.Equal(t, []byte{0xe5, 0xcb, 0x97}, Keystream(r, 3))

	require.Panics(t, func() {
		NewStream(r).XORKeyStream(make([]byte, 1), make([]byte, 2))
	})
}
