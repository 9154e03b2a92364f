package lfsr

import (
	"fmt"
	"io"
	"strings"
)

// maxInfoSequence bounds the sequence length Info prints.
const maxInfoSequence = 1000

// String returns a multi-line dump of the register fields.
func (r *Register) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "LFSR (%s)\n", r.poly.String())
	sb.WriteString(strings.Repeat("=", 50))
	sb.WriteString("\n")

	outBit, feedBit := "-", "-"
	if r.hasOutput {
		outBit = fmt.Sprint(r.outputBit)
		feedBit = fmt.Sprint(r.feedbackBit)
	}

	fields := []struct {
		key   string
		value any
	}{
		{"initstate", r.initState},
		{"fpoly", []int(r.poly)},
		{"conf", r.conf},
		{"order", r.poly.Degree()},
		{"expectedPeriod", r.ExpectedPeriod()},
		{"seq_bit_index", r.outIndex},
		{"count", r.count},
		{"state", r.state},
		{"outbit", outBit},
		{"feedbackbit", feedBit},
		{"seq", r.seq},
		{"counter_start_zero", r.counterStartZero},
	}
	for _, f := range fields {
		fmt.Fprintf(&sb, "%-14s\t=\t%v\n", f.key, f.value)
	}
	return sb.String()
}

// Info writes a human readable summary of the register to w.
func (r *Register) Info(w io.Writer) error {
	m := r.poly.Degree()
	register := r.outIndex + 1
	if r.outIndex < 0 {
		register = (r.outIndex%m+m)%m + 1
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d-bit LFSR with feedback polynomial %s\n", m, r.poly.String())
	fmt.Fprintf(&sb, "Expected Period (if polynomial is primitive) = %d\n", r.ExpectedPeriod())
	fmt.Fprintf(&sb, "Computing configuration is set to %s with output sequence taken from register %d (index %d)\n",
		r.conf, register, r.outIndex)
	sb.WriteString("Current :\n")
	fmt.Fprintf(&sb, " State        : %s\n", r.state)
	fmt.Fprintf(&sb, " Count        : %d\n", r.count)
	if bit, ok := r.OutputBit(); ok {
		fmt.Fprintf(&sb, " Output bit   : %d\n", bit)
	} else {
		sb.WriteString(" Output bit   : -\n")
	}
	if bit, ok := r.FeedbackBit(); ok {
		fmt.Fprintf(&sb, " feedback bit : %d\n", bit)
	} else {
		sb.WriteString(" feedback bit : -\n")
	}
	if r.count > 0 && r.count < maxInfoSequence {
		fmt.Fprintf(&sb, " Output Sequence: %s\n", r.seq)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
