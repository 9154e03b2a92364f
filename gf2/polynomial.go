package gf2

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// MaxDegree is the largest register degree whose period fits in a uint64.
const MaxDegree = 64

// Polynomial is a feedback polynomial over GF(2) given by its tap positions.
// The constant term is implicit. Taps are kept sorted in descending order,
// so the first tap is the degree of the polynomial.
type Polynomial []int

// NewPolynomial creates a Polynomial from tap positions.
// This function makes a copy of the taps, sorts them in descending order and
// rejects fewer than two taps, taps below 1 or above MaxDegree, and duplicates.
func NewPolynomial(taps ...int) (Polynomial, error) {
	if len(taps) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 taps, got %d", ErrInvalidPolynomial, len(taps))
	}
	p := Polynomial(slices.Clone(taps))
	slices.SortFunc(p, func(a, b int) int { return b - a })
	if p[len(p)-1] < 1 {
		return nil, fmt.Errorf("%w: powers must be positive, got %d", ErrInvalidPolynomial, p[len(p)-1])
	}
	if p[0] > MaxDegree {
		return nil, fmt.Errorf("%w: degree %d exceeds %d", ErrInvalidPolynomial, p[0], MaxDegree)
	}
	for i := 1; i < len(p); i++ {
		if p[i] == p[i-1] {
			return nil, fmt.Errorf("%w: power %d repeated", ErrInvalidPolynomial, p[i])
		}
	}
	return p, nil
}

// MustPolynomial is like NewPolynomial but panics on invalid taps.
// It is intended for package-level tables of known polynomials.
func MustPolynomial(taps ...int) Polynomial {
	p, err := NewPolynomial(taps...)
	if err != nil {
		panic(err.Error())
	}
	return p
}

// ParsePolynomial parses either a tap list ("5,2" or "[5, 2]") or a polynomial
// expression ("x^5 + x^2 + 1").
func ParsePolynomial(str string) (Polynomial, error) {
	str = strings.TrimSpace(str)
	var taps []int
	if strings.Contains(str, "x") {
		for _, term := range strings.Split(str, "+") {
			term = strings.TrimSpace(term)
			switch {
			case term == "1":
			case term == "x":
				taps = append(taps, 1)
			case strings.HasPrefix(term, "x^"):
				n, err := strconv.Atoi(term[2:])
				if err != nil {
					return nil, fmt.Errorf("%w: bad term %q", ErrInvalidPolynomial, term)
				}
				taps = append(taps, n)
			default:
				return nil, fmt.Errorf("%w: bad term %q", ErrInvalidPolynomial, term)
			}
		}
	} else {
		str = strings.Trim(str, "[]")
		for _, field := range strings.FieldsFunc(str, func(r rune) bool { return r == ',' || r == ' ' }) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%w: bad tap %q", ErrInvalidPolynomial, field)
			}
			taps = append(taps, n)
		}
	}
	return NewPolynomial(taps...)
}

// Degree returns M, the highest tap position.
func (p Polynomial) Degree() int {
	if len(p) == 0 {
		return 0
	}
	return p[0]
}

// ExpectedPeriod returns 2^M - 1, the period of the register if p is primitive.
func (p Polynomial) ExpectedPeriod() uint64 {
	m := p.Degree()
	if m == 0 {
		return 0
	}
	return ^uint64(0) >> (64 - uint(m))
}

// FitsRegister checks the polynomial against a register of length n.
func (p Polynomial) FitsRegister(n int) error {
	if p.Degree() > n {
		return fmt.Errorf("%w: degree %d is greater than state length %d", ErrInvalidPolynomial, p.Degree(), n)
	}
	return nil
}

// Taps returns a copy of the tap positions in descending order.
func (p Polynomial) Taps() []int {
	return slices.Clone(p)
}

// Equal reports whether two polynomials have the same taps.
func (p Polynomial) Equal(other Polynomial) bool {
	return slices.Equal(p, other)
}

// Image returns the image (reciprocal) polynomial: the degree is kept and every
// other tap t becomes M - t. The image of a primitive polynomial is primitive.
//
// The transform is not guaranteed to be an involution for arbitrary tap sets,
// a tap at M - t == 0 is not representable.
func (p Polynomial) Image() Polynomial {
	if len(p) == 0 {
		return nil
	}
	m := p[0]
	img := make(Polynomial, 0, len(p))
	img = append(img, m)
	for _, t := range p[1:] {
		img = append(img, m-t)
	}
	slices.SortFunc(img, func(a, b int) int { return b - a })
	return img
}

// String returns the polynomial expression, e.g. "x^5 + x^2 + 1".
func (p Polynomial) String() string {
	var sb strings.Builder
	for _, t := range p {
		sb.WriteString("x^")
		sb.WriteString(strconv.Itoa(t))
		sb.WriteString(" + ")
	}
	sb.WriteString("1")
	return sb.String()
}
