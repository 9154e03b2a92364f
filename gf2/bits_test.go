package gf2

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewState(t *testing.T) {
	s, err := NewState([]int{1, 1, 1, 1, 0})
	require.NoError(t, err)
	require.Equal(t, "11110", s.String())
	require.Equal(t, 5, s.Len())

	_, err = NewState([]int{0, 0, 0, 0, 0})
	require.ErrorIs(t, err, ErrInvalidState)

	_, err = NewState([]int{1, 2, 0})
	require.ErrorIs(t, err, ErrInvalidState)

	_, err = NewState(nil)
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestParseState(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain", input: "11110", want: "11110"},
		{name: "commas", input: "1,0,0,1", want: "1001"},
		{name: "brackets", input: "[1 1 0]", want: "110"},
		{name: "all zero", input: "0000", wantErr: true},
		{name: "not a bit", input: "1021", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseState(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidState)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, s.String())
		})
	}
}

func TestStateAt(t *testing.T) {
	s, err := ParseState("10011")
	require.NoError(t, err)

	require.Equal(t, One, s.At(0))
	require.Equal(t, Zero, s.At(1))
	require.Equal(t, One, s.At(-1))
	require.Equal(t, One, s.At(-5))
	require.Equal(t, Zero, s.At(-3))
}

func TestRandomStateNeverZero(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 1000; i++ {
		s := RandomState(rng, 2)
		require.Len(t, s, 2)
		require.False(t, s.IsZero())
		require.NoError(t, s.Validate())
	}
}

func TestDrawStateDeterministic(t *testing.T) {
	a := DrawState(rand.New(rand.NewPCG(7, 7)), 130)
	b := DrawState(rand.New(rand.NewPCG(7, 7)), 130)
	require.Len(t, a, 130)
	require.True(t, a.Equal(b))
}

func TestOnes(t *testing.T) {
	require.Equal(t, "11111", Ones(5).String())
	require.NoError(t, Ones(1).Validate())
}

func TestSequence(t *testing.T) {
	q, err := ParseSequence("0111110001")
	require.NoError(t, err)
	require.Equal(t, 6, q.Ones())
	require.Equal(t, 4, q.Zeros())

	require.Equal(t, "1011111000", q.Rotate(1).String())
	require.Equal(t, "1111100010", q.Rotate(-1).String())
	require.Equal(t, q.String(), q.Rotate(10).String())
	require.Equal(t, q.Rotate(3).String(), q.Rotate(13).String())

	zero := Sequence{0, 0, 0}
	require.Equal(t, 0, zero.Ones())
	require.Empty(t, Sequence{}.Rotate(4))
}

func TestSequenceBytes(t *testing.T) {
	q, err := ParseSequence("1000000011")
	require.NoError(t, err)
	require.Equal(t, []byte{0x80, 0xc0}, q.Bytes())
}

func TestXorAndParity(t *testing.T) {
	l := []Bit{1, 0, 1, 1}
	r := []Bit{1, 1, 0}
	XorInplace(l, r)
	require.Equal(t, []Bit{0, 1, 1, 1}, l)

	require.Equal(t, One, Parity([]Bit{1, 1, 1}))
	require.Equal(t, Zero, Parity([]Bit{1, 0, 1}))
	require.Equal(t, Zero, Parity(nil))

	require.Equal(t, One, Majority(1, 1, 0))
	require.Equal(t, Zero, Majority(1, 0, 0))
	require.Equal(t, One, Majority(1, 1, 1))
	require.Equal(t, Zero, Majority(0, 0, 0))
}
