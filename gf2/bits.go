package gf2

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
)

// Bit is a single element of GF(2). Only the values 0 and 1 are meaningful.
type Bit uint8

const (
	Zero Bit = 0
	One  Bit = 1
)

// Xor returns b + o over GF(2).
func (b Bit) Xor(o Bit) Bit {
	return (b ^ o) & 1
}

// Not returns the complement of b.
func (b Bit) Not() Bit {
	return b ^ 1
}

// Source supplies uniformly distributed random words.
// *math/rand/v2.Rand satisfies it, which lets tests inject seeded generators.
type Source interface {
	Uint64() uint64
}

type defaultSource struct{}

func (defaultSource) Uint64() uint64 { return rand.Uint64() }

// DefaultSource is the process-wide source used when no Source is supplied.
var DefaultSource Source = defaultSource{}

// State represents the contents of an M-bit shift register.
// Position 0 is the input end of a Fibonacci register.
type State []Bit

// NewState creates a State from integer values.
// This function makes a copy of the input and rejects non-binary or all-zero values.
func NewState(values []int) (State, error) {
	s := make(State, len(values))
	for i, v := range values {
		if v != 0 && v != 1 {
			return nil, fmt.Errorf("%w: value %d at position %d is not binary", ErrInvalidState, v, i)
		}
		s[i] = Bit(v)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// ParseState parses a bit string such as "11110" into a validated State.
// Spaces, commas and underscores are ignored so "1,1,1,1,0" is accepted too.
func ParseState(str string) (State, error) {
	bits, err := parseBits(str)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	s := State(bits)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Ones returns the all-ones state of length n.
func Ones(n int) State {
	s := make(State, n)
	for i := range s {
		s[i] = One
	}
	return s
}

// DrawState draws n uniformly random bits from src. The draw may be all-zero;
// callers that need a usable register should use RandomState instead.
func DrawState(src Source, n int) State {
	if src == nil {
		src = DefaultSource
	}
	s := make(State, n)
	var word uint64
	for i := range s {
		if i%64 == 0 {
			word = src.Uint64()
		}
		s[i] = Bit(word & 1)
		word >>= 1
	}
	return s
}

// RandomState draws n random bits from src, resampling until the draw is not all-zero.
// n must be positive.
func RandomState(src Source, n int) State {
	for {
		s := DrawState(src, n)
		if !s.IsZero() {
			return s
		}
	}
}

// Validate reports whether s is a usable register: non-empty, binary, not all-zero.
func (s State) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: state vector is empty", ErrInvalidState)
	}
	for i, b := range s {
		if b > One {
			return fmt.Errorf("%w: value %d at position %d is not binary", ErrInvalidState, b, i)
		}
	}
	if s.IsZero() {
		return fmt.Errorf("%w: state vector can not be all zeros", ErrInvalidState)
	}
	return nil
}

// Len returns the register length.
func (s State) Len() int {
	return len(s)
}

// At returns the bit at index i. Negative indexes count from the end,
// so At(-1) is the last position. i must lie in [-Len, Len-1].
func (s State) At(i int) Bit {
	if i < 0 {
		i += len(s)
	}
	return s[i]
}

// IsZero reports whether every bit of s is zero.
func (s State) IsZero() bool {
	for _, b := range s {
		if b != Zero {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of s.
func (s State) Clone() State {
	return slices.Clone(s)
}

// Equal reports whether two states hold exactly the same bits.
func (s State) Equal(other State) bool {
	return slices.Equal(s, other)
}

// String renders the state as a bit string, e.g. "11110".
func (s State) String() string {
	return bitString(s)
}

// Sequence is an ordered stream of output bits. Unlike State it may be all-zero.
type Sequence []Bit

// ParseSequence parses a bit string such as "0111110001" into a Sequence.
func ParseSequence(str string) (Sequence, error) {
	bits, err := parseBits(str)
	if err != nil {
		return nil, err
	}
	return Sequence(bits), nil
}

// Ones counts the 1-bits of q.
func (q Sequence) Ones() int {
	n := 0
	for _, b := range q {
		n += int(b & 1)
	}
	return n
}

// Zeros counts the 0-bits of q.
func (q Sequence) Zeros() int {
	return len(q) - q.Ones()
}

// Clone returns an independent copy of q.
func (q Sequence) Clone() Sequence {
	return slices.Clone(q)
}

// Equal reports whether two sequences are bit-for-bit identical.
func (q Sequence) Equal(other Sequence) bool {
	return slices.Equal(q, other)
}

// Rotate returns q cyclically shifted right by k positions, so that
// Rotate(k)[i] == q[i-k mod len(q)]. k may be negative or larger than len(q).
func (q Sequence) Rotate(k int) Sequence {
	n := len(q)
	res := make(Sequence, n)
	if n == 0 {
		return res
	}
	k = ((k % n) + n) % n
	copy(res[k:], q[:n-k])
	copy(res[:k], q[n-k:])
	return res
}

// Bytes packs q into bytes, most significant bit first. A trailing partial
// byte is padded with zeros.
func (q Sequence) Bytes() []byte {
	res := make([]byte, (len(q)+7)/8)
	for i, b := range q {
		res[i/8] |= byte(b&1) << (7 - uint(i%8))
	}
	return res
}

// String renders the sequence as a bit string.
func (q Sequence) String() string {
	return bitString(q)
}

// XorInplace performs l = l ^ r element-wise over the common prefix and returns l.
func XorInplace(l []Bit, r []Bit) []Bit {
	for i := range min(len(l), len(r)) {
		l[i] ^= r[i]
	}
	return l
}

// Parity returns the XOR of all bits of bs.
func Parity(bs []Bit) Bit {
	var p Bit
	for _, b := range bs {
		p ^= b
	}
	return p & 1
}

// Majority returns the value held by at least two of the three bits.
func Majority(a, b, c Bit) Bit {
	if int(a)+int(b)+int(c) > 1 {
		return One
	}
	return Zero
}

func bitString[T ~[]Bit](bs T) string {
	var sb strings.Builder
	sb.Grow(len(bs))
	for _, b := range bs {
		sb.WriteByte('0' + byte(b&1))
	}
	return sb.String()
}

func parseBits(str string) ([]Bit, error) {
	bits := make([]Bit, 0, len(str))
	for i, c := range str {
		switch c {
		case '0':
			bits = append(bits, Zero)
		case '1':
			bits = append(bits, One)
		case ' ', ',', '_', '[', ']':
		default:
			return nil, fmt.Errorf("character %q at offset %d is not a bit", c, i)
		}
	}
	return bits, nil
}
