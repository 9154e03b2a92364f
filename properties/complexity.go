package properties

import "github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/gf2"

// LempelZivPatterns splits s into the distinct patterns of its Lempel-Ziv
// parsing, in the order they are discovered. Starting from a one bit window,
// a window that was already seen grows by one bit, a new one is recorded and
// the scan moves past it.
//
//	LempelZivPatterns("1001111011000010") = [1 0 01 11 10 110 00 010]
func LempelZivPatterns(s gf2.Sequence) []string {
	str := s.String()
	seen := make(map[string]struct{})
	patterns := []string{}

	i, k := 0, 1
	for i+k <= len(str) {
		pattern := str[i : i+k]
		if _, ok := seen[pattern]; ok {
			k++
			continue
		}
		seen[pattern] = struct{}{}
		patterns = append(patterns, pattern)
		i += k
		k = 1
	}
	return patterns
}

// LempelZivComplexity returns the number of distinct Lempel-Ziv patterns in s.
func LempelZivComplexity(s gf2.Sequence) int {
	return len(LempelZivPatterns(s))
}

// LinearComplexity returns the length of the shortest LFSR that generates s,
// computed with the Berlekamp-Massey algorithm over GF(2).
func LinearComplexity(s gf2.Sequence) int {
	n := len(s)
	c := make([]gf2.Bit, n+1)
	b := make([]gf2.Bit, n+1)
	c[0], b[0] = gf2.One, gf2.One

	l, m := 0, -1
	for i := range n {
		d := s[i]
		for j := 1; j <= l; j++ {
			d ^= c[j] & s[i-j]
		}
		if d == 0 {
			continue
		}

		prev := make([]gf2.Bit, n+1)
		copy(prev, c)
		shift := i - m
		for j := 0; j+shift <= n; j++ {
			c[j+shift] ^= b[j]
		}
		if 2*l <= i {
			l = i + 1 - l
			m = i
			b = prev
		}
	}
	return l
}
