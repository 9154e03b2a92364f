package main

import (
	"log/slog"
	"math/rand/v2"

	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/cmd/common"
	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/gf2"
	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/metrics"
	"github.com/spf13/cobra"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	configPath  string
	logLevel    string
	logJSON     bool
	metricsFile string

	cfg     *common.Config
	log     *slog.Logger
	metrics *metrics.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "lfsr",
		Short:         "Linear feedback shift registers over GF(2)",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return common.FlushMetrics(a.metrics, a.cfg.MetricsFile, a.log)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Path to YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	pf.BoolVar(&a.logJSON, "log-json", false, "Log in JSON format")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile on exit")

	root.AddCommand(
		newRunCmd(a),
		newTestCmd(a),
		newA51Cmd(a),
		newGeffeCmd(a),
		newGeffe3Cmd(a),
		newPolysCmd(a),
		newSearchCmd(a),
		newEncryptCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg := common.DefaultConfig()
	if a.configPath != "" {
		loaded, err := common.LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logJSON {
		cfg.Log.JSON = true
	}
	if a.metricsFile != "" {
		cfg.MetricsFile = a.metricsFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := common.NewLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	m, err := metrics.New(common.PackageName)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	a.metrics = m
	return nil
}

// source returns a seeded random source if seed is non-zero.
func (a *app) source(seed uint64) gf2.Source {
	if seed == 0 {
		return gf2.DefaultSource
	}
	return rand.New(rand.NewPCG(seed, seed))
}
