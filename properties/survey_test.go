package properties

import (
	"context"
	"sync"
	"testing"

	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/gf2"
	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/lfsr"
	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/polytable"
	"github.com/stretchr/testify/require"
)

func maximal(results []SurveyResult) []gf2.Polynomial {
	var out []gf2.Polynomial
	for _, r := range results {
		if r.Maximal() {
			out = append(out, r.Polynomial)
		}
	}
	return out
}

func TestCandidates(t *testing.T) {
	cands, err := Candidates(4)
	require.NoError(t, err)
	require.Len(t, cands, 7)
	require.Equal(t, gf2.Polynomial{4, 1}, cands[0])
	require.Equal(t, gf2.Polynomial{4, 3, 2, 1}, cands[6])

	_, err = Candidates(1)
	require.ErrorIs(t, err, gf2.ErrInvalidPolynomial)
	_, err = Candidates(MaxSurveyDegree + 1)
	require.ErrorIs(t, err, gf2.ErrInvalidPolynomial)
}

func TestSurveyFindsPrimitivePolynomials(t *testing.T) {
	tests := []struct {
		degree int
		conf   lfsr.Configuration
		want   []gf2.Polynomial
	}{
		{3, lfsr.Fibonacci, []gf2.Polynomial{{3, 1}, {3, 2}}},
		{4, lfsr.Galois, []gf2.Polynomial{{4, 1}, {4, 3}}},
		{5, "", []gf2.Polynomial{{5, 2}, {5, 3}, {5, 3, 2, 1}, {5, 4, 2, 1}, {5, 4, 3, 1}, {5, 4, 3, 2}}},
	}

	for _, tt := range tests {
		cands, err := Candidates(tt.degree)
		require.NoError(t, err)

		var mu sync.Mutex
		seen := 0
		s := &Survey{
			Workers:       3,
			Configuration: tt.conf,
			OnResult: func(SurveyResult) {
				mu.Lock()
				seen++
				mu.Unlock()
			},
		}

		results, stats, err := s.Run(context.Background(), cands)
		require.NoError(t, err)
		require.Len(t, results, len(cands))
		require.ElementsMatch(t, tt.want, maximal(results))
		require.Equal(t, SurveyStats{Candidates: len(cands), Passed: len(tt.want), Failed: len(cands) - len(tt.want)}, stats)
		require.Equal(t, len(cands), seen)
	}
}

func TestSurveyDegreeTen(t *testing.T) {
	cands, err := Candidates(10)
	require.NoError(t, err)
	require.Len(t, cands, 511)

	results, stats, err := (&Survey{}).Run(context.Background(), cands)
	require.NoError(t, err)
	// There are 60 primitive polynomials of degree 10.
	require.Equal(t, 60, stats.Passed)
	require.Equal(t, 451, stats.Failed)

	for _, r := range results {
		if !r.Maximal() {
			require.NotEmpty(t, r.Report.Skipped, "%s", r.Polynomial)
		}
	}
}

func TestSurveyAtMaxDegree(t *testing.T) {
	cands, err := Candidates(MaxSurveyDegree)
	require.NoError(t, err)
	require.Len(t, cands, 1<<(MaxSurveyDegree-1)-1)

	primitive, err := polytable.First(MaxSurveyDegree)
	require.NoError(t, err)

	batch := append([]gf2.Polynomial{primitive, primitive.Image()}, cands[:32]...)
	results, stats, err := (&Survey{Workers: 4}).Run(context.Background(), batch)
	require.NoError(t, err)
	require.True(t, results[0].Maximal())
	require.True(t, results[1].Maximal())
	require.Equal(t, len(batch), stats.Candidates)
	require.Equal(t, uint64(1<<MaxSurveyDegree-1), results[0].Report.Periodicity.ExpectedPeriod)
}

func TestSurveyCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cands, err := Candidates(6)
	require.NoError(t, err)

	s := &Survey{Workers: 1}
	results, _, err := s.Run(ctx, cands)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, results)
}

func TestSurveyInvalidCandidate(t *testing.T) {
	s := &Survey{}
	_, _, err := s.Run(context.Background(), []gf2.Polynomial{{5, 3}, {5}})
	require.ErrorIs(t, err, gf2.ErrInvalidPolynomial)
}
