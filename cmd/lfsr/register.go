package main

import (
	"fmt"

	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/cmd/common"
	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/gf2"
	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/lfsr"
	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/properties"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// registerFlags binds the flags shared by run and test.
type registerFlags struct {
	taps         string
	state        string
	conf         string
	index        int
	countFromOne bool
	seed         uint64
}

func (f *registerFlags) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&f.taps, "taps", "t", "", `Feedback polynomial, e.g. "5,3" or "x^5 + x^3 + 1"`)
	fs.StringVarP(&f.state, "state", "s", "", `Initial state: "ones", "random" or a bit string`)
	fs.StringVar(&f.conf, "conf", "", "Configuration: fibonacci or galois")
	fs.IntVar(&f.index, "index", -1, "Register position the output bit is read from")
	fs.BoolVar(&f.countFromOne, "count-from-one", false, "Start the counter at one and sample after the shift")
	fs.Uint64Var(&f.seed, "seed", 0, "Seed for random initial states (0 for a random seed)")
}

func (f *registerFlags) build(a *app, cmd *cobra.Command) (*lfsr.Register, error) {
	flags := common.RegisterFlags{
		Taps:          f.taps,
		State:         f.state,
		Configuration: f.conf,
		CountFromOne:  f.countFromOne,
	}
	if cmd.Flags().Changed("index") {
		flags.OutputIndex = &f.index
	}
	return common.BuildRegister(a.cfg.Register, flags,
		lfsr.WithSource(a.source(f.seed)),
		lfsr.WithLogger(a.log))
}

func newRunCmd(a *app) *cobra.Command {
	var (
		rf     registerFlags
		cycles int
		info   bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Step a register and print its output sequence",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := rf.build(a, cmd)
			if err != nil {
				return err
			}

			var out gf2.Sequence
			if cmd.Flags().Changed("cycles") {
				if cycles < 0 {
					return fmt.Errorf("cycles must be non-negative, got %d", cycles)
				}
				out = r.Run(cycles)
			} else {
				out = r.RunFullPeriod()
			}
			a.metrics.ObserveSteps("lfsr", len(out))

			w := cmd.OutOrStdout()
			if info {
				return r.Info(w)
			}
			fmt.Fprintf(w, "polynomial: %s\n", r.Polynomial())
			fmt.Fprintf(w, "output:     %s\n", out)
			fmt.Fprintf(w, "state:      %s\n", r.State())
			fmt.Fprintf(w, "count:      %d\n", r.Count())
			return nil
		},
	}

	rf.bind(cmd.Flags())
	cmd.Flags().IntVarP(&cycles, "cycles", "n", 0, "Number of steps (default: one expected period)")
	cmd.Flags().BoolVar(&info, "info", false, "Print a register summary instead of the raw output")
	return cmd
}

func newTestCmd(a *app) *cobra.Command {
	var (
		rf       registerFlags
		sequence string
		strict   bool
	)

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Run the property battery on a register or a sequence",
		RunE: func(cmd *cobra.Command, args []string) error {
			var report properties.Report
			if sequence != "" {
				seq, err := gf2.ParseSequence(sequence)
				if err != nil {
					return fmt.Errorf("sequence: %w", err)
				}
				report = properties.CheckSequence(seq)
			} else {
				r, err := rf.build(a, cmd)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Testing %s\n\n", r.Polynomial())
				report = properties.CheckAll(r)
				a.metrics.ObserveSteps("lfsr", r.Count())
			}
			a.metrics.ObserveReport(report)

			if _, err := report.WriteTo(cmd.OutOrStdout()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Lempel-Ziv complexity: %d\n", properties.LempelZivComplexity(report.Period))
			fmt.Fprintf(cmd.OutOrStdout(), "Linear complexity:     %d\n", properties.LinearComplexity(report.Period))

			a.log.Debug("property battery finished", "passed", report.Passed())
			if strict && !report.Passed() {
				return fmt.Errorf("one or more properties failed")
			}
			return nil
		},
	}

	rf.bind(cmd.Flags())
	cmd.Flags().StringVar(&sequence, "sequence", "", "Test this bit string instead of a register")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with an error if any property fails")
	return cmd
}
