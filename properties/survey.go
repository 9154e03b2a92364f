package properties

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/gf2"
	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/lfsr"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
)

// MaxSurveyDegree bounds Candidates. Both the candidate count and the period
// double with every degree; a degree 14 survey finishes in seconds.
const MaxSurveyDegree = 14

// Survey runs the property battery over many candidate polynomials concurrently.
// Each candidate gets its own register, so no state is shared between workers.
type Survey struct {
	// Workers bounds the number of concurrent batteries. Zero means GOMAXPROCS.
	Workers int

	// Configuration of the registers under test. Empty means Fibonacci.
	Configuration lfsr.Configuration

	// Log receives a debug record per candidate. Nil disables logging.
	Log *slog.Logger

	// OnResult, if set, is called once per finished candidate from the worker
	// goroutine that produced it.
	OnResult func(SurveyResult)
}

// SurveyResult is the outcome for one candidate polynomial.
type SurveyResult struct {
	Polynomial gf2.Polynomial
	Report     Report
}

// Maximal reports whether the candidate passed the whole battery.
func (r SurveyResult) Maximal() bool {
	return r.Report.Passed()
}

// SurveyStats summarizes a survey run.
type SurveyStats struct {
	Candidates int
	Passed     int
	Failed     int
}

// Run screens every candidate from the all-ones state and returns the results
// in candidate order. It stops early and returns ctx.Err() if ctx is canceled.
func (s *Survey) Run(ctx context.Context, candidates []gf2.Polynomial) ([]SurveyResult, SurveyStats, error) {
	log := s.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	conf := s.Configuration
	if conf == "" {
		conf = lfsr.Fibonacci
	}
	workers := s.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var passed, failed atomic.Int64
	results := make([]SurveyResult, len(candidates))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, poly := range candidates {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			r, err := lfsr.New(poly, lfsr.WithConfiguration(conf))
			if err != nil {
				return fmt.Errorf("candidate %s: %w", poly, err)
			}

			report := Screen(r)
			results[i] = SurveyResult{Polynomial: poly, Report: report}
			if report.Passed() {
				passed.Inc()
			} else {
				failed.Inc()
			}

			log.Debug("candidate checked",
				"polynomial", poly.String(),
				"passed", report.Passed(),
				"skipped", report.Skipped)

			if s.OnResult != nil {
				s.OnResult(results[i])
			}
			return nil
		})
	}

	stats := func() SurveyStats {
		return SurveyStats{
			Candidates: len(candidates),
			Passed:     int(passed.Load()),
			Failed:     int(failed.Load()),
		}
	}

	if err := g.Wait(); err != nil {
		log.Info("survey stopped", "err", err, "checked", passed.Load()+failed.Load())
		return nil, stats(), err
	}

	log.Info("survey finished", "candidates", len(candidates), "maximal", passed.Load())
	return results, stats(), nil
}

// Candidates enumerates every feedback polynomial of degree m: x^m together with
// each non-empty subset of the powers 1..m-1.
func Candidates(m int) ([]gf2.Polynomial, error) {
	if m < 2 || m > MaxSurveyDegree {
		return nil, fmt.Errorf("%w: survey degree must be in [2, %d], got %d", gf2.ErrInvalidPolynomial, MaxSurveyDegree, m)
	}

	var out []gf2.Polynomial
	for mask := uint64(1); mask < 1<<(m-1); mask++ {
		taps := []int{m}
		for p := m - 1; p >= 1; p-- {
			if mask&(1<<(p-1)) != 0 {
				taps = append(taps, p)
			}
		}
		out = append(out, gf2.Polynomial(taps))
	}
	return out, nil
}
