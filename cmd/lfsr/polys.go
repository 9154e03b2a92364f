package main

import (
	"fmt"
	"time"

	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/lfsr"
	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/polytable"
	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/properties"
	"github.com/spf13/cobra"
)

func newPolysCmd(a *app) *cobra.Command {
	var (
		degree int
		images bool
	)

	cmd := &cobra.Command{
		Use:   "polys",
		Short: "List primitive feedback polynomials",
		RunE: func(cmd *cobra.Command, args []string) error {
			degrees := polytable.Degrees()
			if degree != 0 {
				degrees = []int{degree}
			}

			w := cmd.OutOrStdout()
			for _, m := range degrees {
				polys, err := polytable.List(m)
				if err != nil {
					return err
				}
				for _, p := range polys {
					fmt.Fprintf(w, "%-3d %-24v %s\n", m, p.Taps(), p)
					if images {
						img := p.Image()
						fmt.Fprintf(w, "%-3d %-24v %s\n", m, img.Taps(), img)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&degree, "degree", "m", 0, fmt.Sprintf("Degree to list, %d to %d (default: all)", polytable.MinDegree, polytable.MaxDegree))
	cmd.Flags().BoolVar(&images, "images", false, "Also print the image of each polynomial")
	return cmd
}

func newSearchCmd(a *app) *cobra.Command {
	var (
		degree  int
		workers int
		galois  bool
		all     bool
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find maximal-length feedback polynomials of a degree by exhaustive testing",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("degree") {
				degree = a.cfg.Survey.Degree
			}
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Survey.Workers
			}
			conf := a.cfg.Survey.Configuration
			if galois {
				conf = lfsr.Galois
			}

			candidates, err := properties.Candidates(degree)
			if err != nil {
				return err
			}

			survey := &properties.Survey{
				Workers:       workers,
				Configuration: conf,
				Log:           a.log,
			}
			start := time.Now()
			results, stats, err := survey.Run(cmd.Context(), candidates)
			a.metrics.ObserveSurvey(stats, time.Since(start))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, r := range results {
				if !all && !r.Maximal() {
					continue
				}
				mark := "maximal"
				if !r.Maximal() {
					mark = "-"
				}
				fmt.Fprintf(w, "%-24v %-40s %s\n", r.Polynomial.Taps(), r.Polynomial, mark)
			}
			fmt.Fprintf(w, "%d of %d candidates of degree %d are maximal\n", stats.Passed, stats.Candidates, degree)
			return nil
		},
	}

	cmd.Flags().IntVarP(&degree, "degree", "m", 5, fmt.Sprintf("Degree to search, 2 to %d", properties.MaxSurveyDegree))
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Concurrent batteries (default GOMAXPROCS)")
	cmd.Flags().BoolVar(&galois, "galois", false, "Test registers in the Galois configuration")
	cmd.Flags().BoolVar(&all, "all", false, "Print rejected candidates too")
	return cmd
}
