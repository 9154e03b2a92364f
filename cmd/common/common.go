// Package common provides shared utilities for the lfsr command:
//
//   - YAML configuration loading and struct validation
//   - slog logger construction from configuration
//   - register construction from flags layered over the configuration file
//   - metrics textfile export
package common

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/gf2"
	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/lfsr"
	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/metrics"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// PackageName is used as the metrics namespace.
const PackageName = "lfsr"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config is the file format read by --config.
type Config struct {
	Log LogConfig `yaml:"log"`

	// Register is the default register for the run and test commands.
	Register *lfsr.Config `yaml:"register,omitempty" validate:"omitempty"`

	Generator GeneratorConfig `yaml:"generator"`
	Survey    SurveyConfig    `yaml:"survey"`

	// MetricsFile, if set, receives a Prometheus textfile when a command ends.
	MetricsFile string `yaml:"metrics_file,omitempty"`
}

// LogConfig selects the log level and handler.
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	JSON  bool   `yaml:"json"`
}

// GeneratorConfig holds defaults for the composite generator commands.
type GeneratorConfig struct {
	// A51Key is "random", "ones" or a 64-bit string.
	A51Key string `yaml:"a51_key,omitempty"`

	// Secret, if set, derives generator keys instead of A51Key.
	Secret string `yaml:"secret,omitempty"`

	// Components are the Geffe component registers.
	Components []lfsr.Config `yaml:"components,omitempty" validate:"omitempty,dive"`

	// Selector is the Geffe selector register.
	Selector *lfsr.Config `yaml:"selector,omitempty" validate:"omitempty"`

	// Seed makes random register states reproducible. Zero draws from the
	// process random source.
	Seed uint64 `yaml:"seed,omitempty"`
}

// SurveyConfig holds defaults for the search command.
type SurveyConfig struct {
	Degree        int                `yaml:"degree,omitempty" validate:"omitempty,min=2,max=14"`
	Workers       int                `yaml:"workers,omitempty" validate:"gte=0"`
	Configuration lfsr.Configuration `yaml:"configuration,omitempty" validate:"omitempty,oneof=fibonacci galois"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
		Generator: GeneratorConfig{
			A51Key: "random",
		},
		Survey: SurveyConfig{
			Degree:        5,
			Configuration: lfsr.Fibonacci,
		},
	}
}

// LoadConfig reads and validates a YAML configuration file. Fields missing
// from the file keep their DefaultConfig values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes and validates YAML configuration.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tags of cfg and its nested register configs.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, len(verrs))
			for i, fe := range verrs {
				fields[i] = fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag())
			}
			return fmt.Errorf("invalid config: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// NewLogger builds a text or JSON logger writing to w.
func NewLogger(cfg LogConfig, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.JSON {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// RegisterFlags are register settings given on the command line. Empty fields
// leave the base configuration unchanged.
type RegisterFlags struct {
	Taps          string
	State         string
	Configuration string
	OutputIndex   *int
	CountFromOne  bool
}

// BuildRegister layers flags over base and builds the register.
func BuildRegister(base *lfsr.Config, flags RegisterFlags, opts ...lfsr.Option) (*lfsr.Register, error) {
	cfg := lfsr.Config{}
	if base != nil {
		cfg = *base
	}

	if flags.Taps != "" {
		poly, err := gf2.ParsePolynomial(flags.Taps)
		if err != nil {
			return nil, fmt.Errorf("taps: %w", err)
		}
		cfg.Taps = poly.Taps()
	}
	if flags.State != "" {
		cfg.InitState = flags.State
	}
	if flags.Configuration != "" {
		cfg.Configuration = lfsr.Configuration(flags.Configuration)
	}
	if flags.OutputIndex != nil {
		cfg.OutputIndex = flags.OutputIndex
	}
	if flags.CountFromOne {
		zero := false
		cfg.CounterStartZero = &zero
	}

	if len(cfg.Taps) == 0 {
		return nil, fmt.Errorf("taps are required (via --taps or the register section of the config file)")
	}
	return cfg.Build(opts...)
}

// FlushMetrics writes m to path if path is set.
func FlushMetrics(m *metrics.Metrics, path string, log *slog.Logger) error {
	if path == "" || m == nil {
		return nil
	}
	if err := m.WriteTextfile(path); err != nil {
		return err
	}
	log.Debug("metrics written", "path", path)
	return nil
}
