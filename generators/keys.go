package generators

import (
	"fmt"
	"hash"
	"io"
	"strings"

	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/gf2"
	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/lfsr"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/sha3"
)

// maxDerivedBits bounds the total output of one DeriveKey call, leaving room
// under the HKDF limit of 255 hash blocks for resampled registers.
const maxDerivedBits = 4096

func newSHA3() hash.Hash {
	return sha3.New256()
}

// DeriveKey expands secret into one register state per requested length.
//
// The secret is expanded with HKDF over SHA3-256 using info as the context
// label, so distinct labels give independent keys for the same secret. Bits are
// read most significant first. A register that would come out all-zero is
// redrawn from the continuing HKDF stream.
//
// Returns ErrInvalidKey for an empty secret, a length below 1 or a total above
// 4096 bits.
func DeriveKey(secret []byte, info string, lengths ...int) ([]gf2.State, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("%w: empty secret", ErrInvalidKey)
	}
	total := 0
	for _, n := range lengths {
		if n < 1 {
			return nil, fmt.Errorf("%w: register length %d", ErrInvalidKey, n)
		}
		total += n
	}
	if total > maxDerivedBits {
		return nil, fmt.Errorf("%w: %d bits requested, at most %d can be derived", ErrInvalidKey, total, maxDerivedBits)
	}

	kdf := hkdf.New(newSHA3, secret, nil, []byte(info))

	states := make([]gf2.State, len(lengths))
	for i, n := range lengths {
		buf := make([]byte, (n+7)/8)
		for {
			if _, err := io.ReadFull(kdf, buf); err != nil {
				return nil, fmt.Errorf("%w: derive register %d: %w", ErrInvalidKey, i, err)
			}
			state := unpackBits(buf, n)
			if !state.IsZero() {
				states[i] = state
				break
			}
		}
	}
	return states, nil
}

// unpackBits returns the first n bits of buf, most significant bit first.
func unpackBits(buf []byte, n int) gf2.State {
	s := make(gf2.State, n)
	for i := range s {
		s[i] = gf2.Bit(buf[i/8]>>(7-i%8)) & 1
	}
	return s
}

// A51Key holds the initial contents of the three A5/1 registers.
type A51Key struct {
	R1, R2, R3 lfsr.InitialState
}

// RandomA51Key fills all three registers at random.
func RandomA51Key() A51Key {
	return A51Key{R1: lfsr.Random(), R2: lfsr.Random(), R3: lfsr.Random()}
}

// ParseA51Key parses "random", "ones" or a 64-bit string, which is split into
// 19, 22 and 23 bits for R1, R2 and R3.
func ParseA51Key(key string) (A51Key, error) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "random", "rand":
		return RandomA51Key(), nil
	case "ones":
		return A51Key{R1: lfsr.Ones(), R2: lfsr.Ones(), R3: lfsr.Ones()}, nil
	}

	bits, err := gf2.ParseSequence(key)
	if err != nil {
		return A51Key{}, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	if len(bits) != a51KeyBits {
		return A51Key{}, fmt.Errorf("%w: a5/1 key has %d bits, want %d", ErrInvalidKey, len(bits), a51KeyBits)
	}

	m1, m2 := a51Lengths[0], a51Lengths[1]
	return A51Key{
		R1: lfsr.Explicit(gf2.State(bits[:m1])),
		R2: lfsr.Explicit(gf2.State(bits[m1 : m1+m2])),
		R3: lfsr.Explicit(gf2.State(bits[m1+m2:])),
	}, nil
}

// ParseA51RegisterKeys builds a key from one key string per register, each
// "ones", "random" or a bit string of the register length.
func ParseA51RegisterKeys(k1, k2, k3 string) (A51Key, error) {
	var inits [3]lfsr.InitialState
	for i, k := range []string{k1, k2, k3} {
		init, err := lfsr.ParseInitialState(k)
		if err != nil {
			return A51Key{}, fmt.Errorf("%w: register R%d: %w", ErrInvalidKey, i+1, err)
		}
		inits[i] = init
	}
	return A51Key{R1: inits[0], R2: inits[1], R3: inits[2]}, nil
}

// resolveKey turns a register key into concrete bits of length n.
// Random keys are resampled until non-zero.
func resolveKey(init lfsr.InitialState, n int, src gf2.Source) (gf2.State, error) {
	switch init.Kind() {
	case lfsr.InitRandom:
		return gf2.RandomState(src, n), nil
	case lfsr.InitOnes:
		return gf2.Ones(n), nil
	}

	state, err := gf2.ParseState(init.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	if len(state) != n {
		return nil, fmt.Errorf("%w: register key has %d bits, want %d", ErrInvalidKey, len(state), n)
	}
	return state, nil
}
