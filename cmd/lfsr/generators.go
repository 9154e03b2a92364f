package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/cmd/common"
	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/generators"
	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/lfsr"
	"github.com/spf13/cobra"
)

const defaultBits = 32

func newA51Cmd(a *app) *cobra.Command {
	var (
		key    string
		secret string
		nbits  int
		seed   uint64
		trace  bool
	)

	cmd := &cobra.Command{
		Use:   "a51",
		Short: "Run the A5/1 keystream generator",
		RunE: func(cmd *cobra.Command, args []string) error {
			if nbits < 0 {
				return fmt.Errorf("bits must be non-negative, got %d", nbits)
			}
			if !cmd.Flags().Changed("secret") {
				secret = a.cfg.Generator.Secret
			}
			if !cmd.Flags().Changed("key") && a.cfg.Generator.A51Key != "" {
				key = a.cfg.Generator.A51Key
			}
			if !cmd.Flags().Changed("seed") {
				seed = a.cfg.Generator.Seed
			}

			opts := []generators.Option{
				generators.WithSource(a.source(seed)),
				generators.WithLogger(a.log),
			}

			var (
				gen *generators.A51
				err error
			)
			if secret != "" {
				gen, err = generators.NewA51FromSecret([]byte(secret), opts...)
			} else {
				k, perr := generators.ParseA51Key(key)
				if perr != nil {
					return perr
				}
				gen, err = generators.NewA51(k, opts...)
			}
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "key: %s\n", gen.Key())
			if trace {
				fmt.Fprintln(w, "step  R1                   R2                      R3                       clock  out")
				for i := range nbits {
					out := gen.Step()
					st, cb := gen.RegisterStates(), gen.ClockBits()
					fmt.Fprintf(w, "%-5d %s  %s  %s  %d%d%d    %d\n", i, st[0], st[1], st[2], cb[0], cb[1], cb[2], out)
				}
			} else {
				gen.Run(nbits)
			}
			a.metrics.ObserveSteps("a51", nbits)

			fmt.Fprintf(w, "output: %s\n", gen.Sequence())
			return nil
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "random", `Key: "random", "ones" or 64 bits`)
	cmd.Flags().StringVar(&secret, "secret", "", "Derive the key from this secret")
	cmd.Flags().IntVarP(&nbits, "bits", "n", defaultBits, "Number of output bits")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for random keys (0 for a random seed)")
	cmd.Flags().BoolVar(&trace, "trace", false, "Print register states after every step")
	return cmd
}

func newGeffeCmd(a *app) *cobra.Command {
	var (
		components []string
		selector   string
		nbits      int
		seed       uint64
	)

	cmd := &cobra.Command{
		Use:   "geffe",
		Short: "Run the generalized Geffe generator",
		Long: `Run the generalized Geffe generator.

Each --component gives the feedback polynomial of one component register; the
number of components must be a power of two. The selector register picks which
component drives the output on every step. Register states are random unless
the config file sets them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if nbits < 0 {
				return fmt.Errorf("bits must be non-negative, got %d", nbits)
			}
			if !cmd.Flags().Changed("seed") {
				seed = a.cfg.Generator.Seed
			}
			src := a.source(seed)
			regOpts := []lfsr.Option{lfsr.WithSource(src), lfsr.WithLogger(a.log)}
			randomState := "random"

			var comps []*lfsr.Register
			if len(components) > 0 {
				for i, taps := range components {
					r, err := common.BuildRegister(nil, common.RegisterFlags{Taps: taps, State: randomState}, regOpts...)
					if err != nil {
						return fmt.Errorf("component %d: %w", i, err)
					}
					comps = append(comps, r)
				}
			} else {
				for i := range a.cfg.Generator.Components {
					r, err := a.cfg.Generator.Components[i].Build(regOpts...)
					if err != nil {
						return fmt.Errorf("component %d: %w", i, err)
					}
					comps = append(comps, r)
				}
			}

			var (
				sel *lfsr.Register
				err error
			)
			switch {
			case selector != "":
				sel, err = common.BuildRegister(nil, common.RegisterFlags{Taps: selector, State: randomState}, regOpts...)
			case a.cfg.Generator.Selector != nil:
				sel, err = a.cfg.Generator.Selector.Build(regOpts...)
			default:
				err = fmt.Errorf("a selector register is required (via --selector or the config file)")
			}
			if err != nil {
				return fmt.Errorf("selector: %w", err)
			}

			gen, err := generators.NewGeffe(comps, sel, generators.WithLogger(a.log))
			if err != nil {
				return err
			}
			gen.Run(nbits)
			a.metrics.ObserveSteps("geffe", nbits)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "components: %d (selector width %d)\n", gen.K(), gen.SelectorWidth())
			fmt.Fprintf(w, "output:     %s\n", gen.Sequence())
			fmt.Fprintf(w, "state:      %s | %s\n", gen.ComponentState(), gen.SelectorState())
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&components, "component", "c", nil, `Component polynomial, repeatable, e.g. -c "5,3" -c "4,3"`)
	cmd.Flags().StringVar(&selector, "selector", "", "Selector polynomial")
	cmd.Flags().IntVarP(&nbits, "bits", "n", defaultBits, "Number of output bits")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for random states (0 for a random seed)")
	return cmd
}

func newGeffe3Cmd(a *app) *cobra.Command {
	var (
		r1, r2, r3 string
		classic    bool
		nbits      int
		seed       uint64
	)

	cmd := &cobra.Command{
		Use:   "geffe3",
		Short: "Run the three-register Geffe combiner",
		RunE: func(cmd *cobra.Command, args []string) error {
			if nbits < 1 {
				return fmt.Errorf("bits must be at least 1, got %d", nbits)
			}
			regOpts := []lfsr.Option{lfsr.WithSource(a.source(seed)), lfsr.WithLogger(a.log)}

			var regs [3]*lfsr.Register
			for i, taps := range []string{r1, r2, r3} {
				r, err := common.BuildRegister(nil, common.RegisterFlags{Taps: taps, State: "ones"}, regOpts...)
				if err != nil {
					return fmt.Errorf("register R%d: %w", i+1, err)
				}
				regs[i] = r
			}

			var opts []generators.Option
			opts = append(opts, generators.WithLogger(a.log))
			if classic {
				opts = append(opts, generators.WithClassicCombiner())
			}
			gen, err := generators.NewGeffe3(regs[0], regs[1], regs[2], opts...)
			if err != nil {
				return err
			}
			// The constructor already produced the first bit.
			gen.Run(nbits - 1)
			a.metrics.ObserveSteps("geffe3", nbits)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "output: %s\n", gen.Sequence())
			fmt.Fprintf(w, "state:  %s\n", gen.State())
			return nil
		},
	}

	cmd.Flags().StringVar(&r1, "r1", "5,3", "Polynomial of R1")
	cmd.Flags().StringVar(&r2, "r2", "4,3", "Polynomial of R2")
	cmd.Flags().StringVar(&r3, "r3", "4,1", "Polynomial of R3")
	cmd.Flags().BoolVar(&classic, "classic", false, "Use r1 to select between r2 and r3")
	cmd.Flags().IntVarP(&nbits, "bits", "n", defaultBits, "Number of output bits")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for random states (0 for a random seed)")
	return cmd
}

func newEncryptCmd(a *app) *cobra.Command {
	var (
		secret string
		in     string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "XOR a file with an A5/1 keystream derived from a secret",
		Long: `XOR a file with an A5/1 keystream derived from a secret.

The operation is its own inverse: running it again with the same secret
restores the input. Reads stdin and writes stdout by default.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				secret = a.cfg.Generator.Secret
			}
			if secret == "" {
				return fmt.Errorf("a secret is required (via --secret or the config file)")
			}

			var r io.Reader = cmd.InOrStdin()
			if in != "" && in != "-" {
				data, err := os.ReadFile(in)
				if err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				r = bytes.NewReader(data)
			}
			plain, err := io.ReadAll(r)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			gen, err := generators.NewA51FromSecret([]byte(secret), generators.WithLogger(a.log))
			if err != nil {
				return err
			}
			buf := make([]byte, len(plain))
			generators.NewStream(gen).XORKeyStream(buf, plain)
			a.metrics.ObserveSteps("a51", 8*len(plain))

			if out != "" && out != "-" {
				if err := os.WriteFile(out, buf, 0o600); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
				a.log.Info("encrypted", "bytes", len(buf), "out", out)
				return nil
			}
			_, err = cmd.OutOrStdout().Write(buf)
			return err
		},
	}

	cmd.Flags().StringVar(&secret, "secret", "", "Secret the keystream is derived from")
	cmd.Flags().StringVarP(&in, "in", "i", "", "Input file (default stdin)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	return cmd
}
