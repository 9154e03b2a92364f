// Package polytable is a reference table of primitive feedback polynomials for
// register degrees 2 through 31.
//
// The table is embedded in the binary and parsed once on first use. Only
// primary polynomials are listed; each one's image, obtained with
// gf2.Polynomial.Image, is primitive as well.
package polytable
