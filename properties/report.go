package properties

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/gf2"
)

// Report aggregates the results of the property battery.
type Report struct {
	// Periodicity is nil when the report was built from a bare sequence.
	Periodicity     *PeriodicityResult
	Balance         BalanceResult
	RunLength       RunLengthResult
	Autocorrelation AutocorrelationResult

	// Period is the sequence the balance, run-length and autocorrelation
	// checks were run on.
	Period gf2.Sequence

	// Skipped names the checks that were not run. Their results are zero.
	Skipped []string
}

// Property names used in Report.Skipped.
const (
	PropertyPeriodicity     = "periodicity"
	PropertyBalance         = "balance"
	PropertyRunLength       = "runlength"
	PropertyAutocorrelation = "autocorrelation"
)

var sequenceChecks = []string{PropertyBalance, PropertyRunLength, PropertyAutocorrelation}

// CheckAll runs the full battery against e. The periodicity check captures two
// full periods and the first one feeds the other three checks. The engine is
// advanced by two periods.
//
// If the period is longer than MaxCheckedPeriod nothing is captured and the
// sequence checks are skipped.
func CheckAll(e Engine) Report {
	periodicity := CheckPeriodicity(e)
	if periodicity.TooLong {
		return Report{Periodicity: &periodicity, Skipped: slices.Clone(sequenceChecks)}
	}
	report := CheckSequence(periodicity.First)
	report.Periodicity = &periodicity
	return report
}

// Screen runs the battery like CheckAll but stops at the first failed check,
// cheapest first: periodicity, balance, run-length, then autocorrelation. The
// checks after a failure are listed in Skipped. Passed gives the same answer as
// for CheckAll.
func Screen(e Engine) Report {
	periodicity := CheckPeriodicity(e)
	report := Report{Periodicity: &periodicity, Period: periodicity.First}
	if !periodicity.Passed {
		report.Skipped = slices.Clone(sequenceChecks)
		return report
	}

	if report.Balance = CheckBalance(report.Period); !report.Balance.Passed {
		report.Skipped = slices.Clone(sequenceChecks[1:])
		return report
	}
	if report.RunLength = CheckRunLength(report.Period); !report.RunLength.Passed {
		report.Skipped = slices.Clone(sequenceChecks[2:])
		return report
	}
	report.Autocorrelation = CheckAutocorrelation(report.Period)
	return report
}

// Ran reports whether the named check was run.
func (r Report) Ran(name string) bool {
	if name == PropertyPeriodicity {
		return r.Periodicity != nil
	}
	return !slices.Contains(r.Skipped, name)
}

// CheckSequence runs the balance, run-length and autocorrelation checks on p.
func CheckSequence(p gf2.Sequence) Report {
	return Report{
		Balance:         CheckBalance(p),
		RunLength:       CheckRunLength(p),
		Autocorrelation: CheckAutocorrelation(p),
		Period:          p.Clone(),
	}
}

// Passed reports whether every check that was run passed.
func (r Report) Passed() bool {
	if r.Periodicity != nil && !r.Periodicity.Passed {
		return false
	}
	return r.Balance.Passed && r.RunLength.Passed && r.Autocorrelation.Passed
}

// WriteTo writes a human readable summary of the report to w.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	section := 1

	if r.Periodicity != nil {
		fmt.Fprintf(&sb, "%d. Periodicity\n", section)
		sb.WriteString("------------------\n")
		fmt.Fprintf(&sb, " - Expected period = 2^M-1 = %d\n", r.Periodicity.ExpectedPeriod)
		if r.Periodicity.TooLong {
			fmt.Fprintf(&sb, " - Too long to capture, at most %d bits are checked\n", MaxCheckedPeriod)
		}
		fmt.Fprintf(&sb, " - Pass?: %t\n\n", r.Periodicity.Passed)
		section++
	}

	fmt.Fprintf(&sb, "%d. Balance Property\n", section)
	sb.WriteString("-------------------\n")
	sb.WriteString(" - Number of 1s = Number of 0s+1 (in a period)\n")
	if r.Ran(PropertyBalance) {
		fmt.Fprintf(&sb, " - #1s = %d\t#0s = %d\n", r.Balance.Ones, r.Balance.Zeros)
	}
	writePass(&sb, r, PropertyBalance, r.Balance.Passed)
	section++

	fmt.Fprintf(&sb, "%d. Runlength Property\n", section)
	sb.WriteString("-------------------\n")
	sb.WriteString(" - Number of runs of each length in a period should halve, e.g. [4 2 1 1]\n")
	if r.Ran(PropertyRunLength) {
		fmt.Fprintf(&sb, " - Runs: %v\n", r.RunLength.Runs)
	}
	writePass(&sb, r, PropertyRunLength, r.RunLength.Passed)
	section++

	fmt.Fprintf(&sb, "%d. Autocorrelation Property\n", section)
	sb.WriteString("-------------------\n")
	sb.WriteString(" - Autocorrelation of a period should be 1 at k=0 and -1/T everywhere else\n")
	writePass(&sb, r, PropertyAutocorrelation, r.Autocorrelation.Passed)

	sb.WriteString("==================\n")
	if r.Passed() {
		sb.WriteString("Passed all the tests\n")
	} else {
		sb.WriteString("Failed one or more tests, check if feedback polynomial is primitive polynomial\n")
	}
	sb.WriteString("==================\n")

	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

func writePass(sb *strings.Builder, r Report, name string, passed bool) {
	if !r.Ran(name) {
		sb.WriteString(" - Skipped\n\n")
		return
	}
	fmt.Fprintf(sb, " - Pass?: %t\n\n", passed)
}
