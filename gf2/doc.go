// Package gf2 provides the binary data types shared by every register in this module.
//
// This package implements the two values an LFSR is built from:
//
//   - State: a fixed-length register of bits over GF(2), never all-zero once validated
//   - Polynomial: the set of feedback tap positions defining the recurrence
//
// Along with the helpers the engine and the composite generators need:
//
//   - XOR and parity over bit slices (XorInplace, Parity)
//   - Parsing and rendering bit strings ("10110") and polynomials ("x^5 + x^2 + 1")
//   - Uniform random register draws from an injectable Source
//   - The image (reciprocal) of a feedback polynomial
//
// Note: none of the operations are constant-time.
//
// # States and Sequences
//
// A State is a register snapshot and is validated: it must be non-empty, binary
// and not all-zero. A Sequence is an output stream and carries no such invariant;
// an all-zero Sequence is legal (it is what a degenerate register emits).
//
// # Polynomials
//
// Taps are 1-indexed register positions and are always stored sorted in descending
// order, so the first tap is the degree M of the register:
//
//	p, _ := gf2.NewPolynomial(5, 2) // x^5 + x^2 + 1
//	p.Degree()                      // 5
//	p.Image()                       // [5 3]
package gf2
