// Package lfsr implements the linear feedback shift register state machine.
//
// A Register holds an M-bit state, a feedback polynomial and a configuration,
// and advances one transition per Step. Every step appends exactly one output
// bit to the register's accumulated sequence.
//
// # Configurations
//
// Two arrangements of the same recurrence are supported:
//
//   - Fibonacci: the feedback bit is the XOR of the bits at all tap positions.
//     The register shifts toward the output end and position 0 receives the feedback bit.
//   - Galois: the feedback bit is the bit leaving position 0. The register shifts
//     toward position 0, the feedback bit re-enters at the far end and is XORed
//     into every non-leading tap position.
//
// # Counter Start Policy
//
// With WithCounterStartZero(true) (the default) the output bit of a step is sampled
// before the shift, the counter starts at 0 and the sequence starts empty. With
// false, the bit is sampled after the shift, the counter starts at 1 and the sequence
// starts with the output bit of the initial state. Both produce the same stream
// content offset by one sample; they are not interchangeable mid-sequence.
//
// # Usage
//
//	r, err := lfsr.New([]int{5, 3}, lfsr.WithInitialState(lfsr.Ones()))
//	if err != nil {
//	    return err
//	}
//	bits := r.RunFullPeriod() // 31 bits
//
// # Errors
//
// Construction and mutation fail fast with errors matching one of ErrInvalidPolynomial,
// ErrInvalidState, ErrInvalidConfiguration, ErrInvalidOutputIndex or ErrIncompatibleMutation
// under errors.Is. A register that reaches the all-zero state through Step (possible only
// with a non-primitive polynomial) is not an error; it keeps emitting zeros.
package lfsr
