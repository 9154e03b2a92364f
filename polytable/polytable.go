package polytable

import (
	_ "embed"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/gf2"
	"gopkg.in/yaml.v3"
)

const (
	// MinDegree is the smallest degree in the table.
	MinDegree = 2
	// MaxDegree is the largest degree in the table.
	MaxDegree = 31
	// CompleteDegree is the largest degree whose list is exhaustive.
	CompleteDegree = 12
)

// ErrUnknownDegree is returned for degrees outside [MinDegree, MaxDegree].
var ErrUnknownDegree = errors.New("no primitive polynomials listed for degree")

//go:embed primitive.yaml
var primitiveYAML []byte

var (
	loadOnce sync.Once
	table    map[int][]gf2.Polynomial
)

func load() {
	raw := map[int][][]int{}
	if err := yaml.Unmarshal(primitiveYAML, &raw); err != nil {
		panic(fmt.Sprintf("polytable: parse embedded table: %v", err))
	}

	table = make(map[int][]gf2.Polynomial, len(raw))
	for m, lists := range raw {
		for _, taps := range lists {
			p, err := gf2.NewPolynomial(taps...)
			if err != nil || p.Degree() != m {
				panic(fmt.Sprintf("polytable: bad entry %v for degree %d", taps, m))
			}
			table[m] = append(table[m], p)
		}
	}
}

// List returns the primary primitive polynomials of degree m. The list is
// complete up to CompleteDegree; above it the table holds a subset of at most
// 16 low-weight polynomials per degree.
func List(m int) ([]gf2.Polynomial, error) {
	loadOnce.Do(load)

	polys, ok := table[m]
	if !ok {
		return nil, fmt.Errorf("%w %d, m should be in [%d, %d]", ErrUnknownDegree, m, MinDegree, MaxDegree)
	}
	return clonePolys(polys), nil
}

// First returns the first listed primitive polynomial of degree m.
func First(m int) (gf2.Polynomial, error) {
	polys, err := List(m)
	if err != nil {
		return nil, err
	}
	return polys[0], nil
}

// All returns a copy of the whole table keyed by degree.
func All() map[int][]gf2.Polynomial {
	loadOnce.Do(load)

	out := make(map[int][]gf2.Polynomial, len(table))
	for m, polys := range table {
		out[m] = clonePolys(polys)
	}
	return out
}

// Degrees returns the listed degrees in ascending order.
func Degrees() []int {
	loadOnce.Do(load)
	return slices.Sorted(maps.Keys(table))
}

func clonePolys(polys []gf2.Polynomial) []gf2.Polynomial {
	out := make([]gf2.Polynomial, len(polys))
	for i, p := range polys {
		out[i] = gf2.Polynomial(p.Taps())
	}
	return out
}
