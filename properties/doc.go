/*
Package properties tests binary sequences for the statistical properties of
maximal-length LFSR output.

Four checks make up the battery:

  - Periodicity: two consecutive full periods from the same engine are identical.
  - Balance: one period holds exactly one more 1 than 0.
  - Run-length: runs of length 1, 2, 3... follow the halving distribution, with
    the two longest run counts equal.
  - Autocorrelation: the normalized autocorrelation is -1/T at every shift in
    [1, T-1].

The sequence checks are pure functions. They never fail with an error and
always return their diagnostic data, even for degenerate input. CheckAll runs
the full battery against an engine, CheckSequence runs the three sequence checks
against caller-supplied bits. Screen stops at the first failure, which is
what Survey uses to reject candidates quickly.

Periods longer than MaxCheckedPeriod (degree 32 and up) are not captured: the
periodicity check fails with TooLong set and the sequence checks are skipped.

	r, _ := lfsr.New([]int{5, 3}, lfsr.WithState(state))
	report := properties.CheckAll(r)
	if !report.Passed() {
	    report.WriteTo(os.Stdout)
	}

The package also measures sequence complexity (Lempel-Ziv and linear complexity)
and surveys many candidate polynomials concurrently with Survey.
*/
package properties
