package properties

import (
	"math"
	"math/bits"

	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/gf2"
)

// Engine is a bit generator that can produce full periods from its current state.
// *lfsr.Register implements it.
type Engine interface {
	RunFullPeriod() gf2.Sequence
	ExpectedPeriod() uint64
}

// MaxCheckedPeriod is the longest period CheckPeriodicity will capture, the
// period of a degree 31 register.
const MaxCheckedPeriod = 1<<31 - 1

// PeriodicityResult holds the outcome of CheckPeriodicity.
type PeriodicityResult struct {
	Passed bool
	// ExpectedPeriod is 2^M - 1 for the engine under test.
	ExpectedPeriod uint64
	// TooLong is set when ExpectedPeriod exceeds MaxCheckedPeriod. The engine
	// was not run and the check fails.
	TooLong bool
	First   gf2.Sequence
	Second  gf2.Sequence
}

// CheckPeriodicity runs e for two consecutive full periods from its current
// state and passes iff both are bit-for-bit identical. The engine is advanced
// by two periods, or not at all when the period exceeds MaxCheckedPeriod.
func CheckPeriodicity(e Engine) PeriodicityResult {
	period := e.ExpectedPeriod()
	if period > MaxCheckedPeriod {
		return PeriodicityResult{ExpectedPeriod: period, TooLong: true}
	}

	first := e.RunFullPeriod()
	second := e.RunFullPeriod()
	return PeriodicityResult{
		Passed:         first.Equal(second),
		ExpectedPeriod: period,
		First:          first,
		Second:         second,
	}
}

// BalanceResult holds the outcome of CheckBalance.
type BalanceResult struct {
	Passed bool
	Ones   int
	Zeros  int
}

// CheckBalance passes iff p holds exactly one more 1 than 0.
func CheckBalance(p gf2.Sequence) BalanceResult {
	ones := p.Ones()
	zeros := len(p) - ones
	return BalanceResult{
		Passed: ones == zeros+1,
		Ones:   ones,
		Zeros:  zeros,
	}
}

// RunLengthResult holds the outcome of CheckRunLength.
type RunLengthResult struct {
	Passed bool
	// Runs[i] counts the runs of length i+1, trailing zero counts trimmed.
	Runs []int
}

// CheckRunLength decomposes the cyclic sequence p into maximal runs and checks
// that every run count is twice the next one, except the last two which must be
// equal. A histogram with fewer than two entries fails.
func CheckRunLength(p gf2.Sequence) RunLengthResult {
	runs := RunLengths(p)
	if len(runs) < 2 {
		return RunLengthResult{Runs: runs}
	}

	l := len(runs)
	hits := 0
	for k := 0; k < l-2; k++ {
		if runs[k] == 2*runs[k+1] {
			hits++
		}
	}
	if runs[l-2] == runs[l-1] {
		hits++
	}

	return RunLengthResult{
		Passed: hits == l-1,
		Runs:   runs,
	}
}

// RunLengths returns the run-length histogram of the cyclic sequence p:
// element i counts the maximal runs of length i+1. Runs are not split across
// the sequence boundary.
func RunLengths(p gf2.Sequence) []int {
	t := len(p)
	if t == 0 {
		return []int{}
	}

	seq := p.Clone()
	if seq.Ones() != 0 && seq.Ones() != t {
		for seq[0] == seq[t-1] {
			seq = seq.Rotate(1)
		}
	}
	seq = append(seq, seq[t-1].Not())

	runs := make([]int, t)
	i := 0
	for k := range t {
		if seq[k] == seq[k+1] {
			i++
			continue
		}
		runs[i]++
		i = 0
	}

	last := -1
	for k, n := range runs {
		if n != 0 {
			last = k
		}
	}
	return runs[:last+1]
}

// AutocorrelationResult holds the outcome of CheckAutocorrelation.
type AutocorrelationResult struct {
	Passed bool
	// Shifts is the display axis -T..T, one entry per value in Rxx.
	Shifts []int
	// Rxx[k] is the normalized autocorrelation of the sequence with itself
	// rotated by k, for k in [0, 2T].
	Rxx []float64
}

// CheckAutocorrelation computes Rxx(k) = (matches - mismatches) / T between p and
// p rotated by k, and passes iff Rxx(k) is close to -1/T for every k in [1, T-1].
// Values are compared with an absolute tolerance of 1e-8 plus a relative
// tolerance of 1e-5.
func CheckAutocorrelation(p gf2.Sequence) AutocorrelationResult {
	t := len(p)
	rxx := Autocorrelation(p)
	shifts := make([]int, 2*t+1)
	for i := range shifts {
		shifts[i] = i - t
	}

	if t == 0 {
		return AutocorrelationResult{Shifts: shifts, Rxx: rxx}
	}

	want := -1 / float64(t)
	passed := true
	for k := 1; k < t; k++ {
		if !isClose(rxx[k], want) {
			passed = false
			break
		}
	}

	return AutocorrelationResult{
		Passed: passed,
		Shifts: shifts,
		Rxx:    rxx,
	}
}

// Autocorrelation returns Rxx(k) for k in [0, 2T]. An empty sequence yields a
// single zero value.
//
// Rxx repeats every T shifts, so only the T distinct values are computed and
// then tiled. Each one compares 64 positions per word.
func Autocorrelation(p gf2.Sequence) []float64 {
	t := len(p)
	rxx := make([]float64, 2*t+1)
	if t == 0 {
		return rxx
	}

	packed := packWords(p, 1)
	// doubled holds p twice plus a zero guard word for unaligned reads.
	doubled := packWords(append(p.Clone(), p...), 2)

	words := (t + 63) / 64
	tail := ^uint64(0)
	if t%64 != 0 {
		tail = 1<<(t%64) - 1
	}

	base := make([]float64, t)
	for shift := range t {
		// p rotated by shift starts at offset t-shift of the doubled sequence.
		offset := t - shift
		mismatches := 0
		for j := range words {
			diff := packed[j] ^ wordAt(doubled, offset+64*j)
			if j == words-1 {
				diff &= tail
			}
			mismatches += bits.OnesCount64(diff)
		}
		base[shift] = float64(t-2*mismatches) / float64(t)
	}

	for k := range rxx {
		rxx[k] = base[k%t]
	}
	return rxx
}

// packWords packs bits least significant first, followed by guard zero words.
func packWords(p gf2.Sequence, guard int) []uint64 {
	w := make([]uint64, (len(p)+63)/64+guard)
	for i, b := range p {
		w[i/64] |= uint64(b&1) << (i % 64)
	}
	return w
}

// wordAt returns the 64 bits of w starting at bit offset off.
func wordAt(w []uint64, off int) uint64 {
	q, r := off/64, off%64
	if r == 0 {
		return w[q]
	}
	return w[q]>>r | w[q+1]<<(64-r)
}

func isClose(a, b float64) bool {
	const (
		rtol = 1e-5
		atol = 1e-8
	)
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}
