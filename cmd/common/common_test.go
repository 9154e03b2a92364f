package common

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/lfsr"
	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/metrics"
	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/properties"
	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/testutil"
	"github.com/stretchr/testify/require"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("log:\n  json: true\n"))
	require.NoError(t, err)
	require.True(t, cfg.Log.JSON)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "random", cfg.Generator.A51Key)
	require.Equal(t, 5, cfg.Survey.Degree)
	require.Equal(t, lfsr.Fibonacci, cfg.Survey.Configuration)
	require.Nil(t, cfg.Register)
}

func TestParseConfigRegisters(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
register:
  taps: [5, 3]
  init_state: "11110"
  configuration: galois
generator:
  seed: 9
  components:
    - taps: [5, 3]
    - taps: [5, 2]
  selector:
    taps: [7, 6]
survey:
  degree: 8
  workers: 4
`))
	require.NoError(t, err)
	require.Equal(t, []int{5, 3}, cfg.Register.Taps)
	require.Equal(t, lfsr.Galois, cfg.Register.Configuration)
	require.Len(t, cfg.Generator.Components, 2)
	require.Equal(t, []int{7, 6}, cfg.Generator.Selector.Taps)
	require.Equal(t, uint64(9), cfg.Generator.Seed)
	require.Equal(t, 8, cfg.Survey.Degree)

	cfg, err = ParseConfig([]byte("survey:\n  degree: 14\n"))
	require.NoError(t, err)
	require.Equal(t, properties.MaxSurveyDegree, cfg.Survey.Degree)
}

func TestParseConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad log level", "log:\n  level: loud\n"},
		{"survey degree too large", "survey:\n  degree: 40\n"},
		{"survey degree above search bound", "survey:\n  degree: 15\n"},
		{"survey degree too small", "survey:\n  degree: 1\n"},
		{"negative workers", "survey:\n  workers: -1\n"},
		{"bad survey configuration", "survey:\n  configuration: ring\n"},
		{"register without taps", "register:\n  init_state: ones\n"},
		{"bad register configuration", "register:\n  taps: [5, 3]\n  configuration: ring\n"},
		{"tap out of range", "register:\n  taps: [65, 3]\n"},
		{"component without taps", "generator:\n  components:\n    - init_state: ones\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			require.ErrorContains(t, err, "invalid config")
		})
	}

	_, err := ParseConfig([]byte("log: [not, a, map]"))
	require.ErrorContains(t, err, "parse config")
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lfsr.yaml")
	require.NoError(t, os.WriteFile(path, []byte("survey:\n  degree: 7\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Survey.Degree)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "read config")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger(LogConfig{Level: "warn", JSON: true}, &buf)
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown", "taps", "5,3")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	log, err = NewLogger(LogConfig{}, &buf)
	require.NoError(t, err)
	log.Info("text")
	require.Contains(t, buf.String(), "msg=text")
	require.False(t, log.Enabled(t.Context(), slog.LevelDebug))

	_, err = NewLogger(LogConfig{Level: "loud"}, &buf)
	require.Error(t, err)
}

func TestBuildRegister(t *testing.T) {
	r, err := BuildRegister(nil, RegisterFlags{Taps: "5,3", State: "11110"})
	require.NoError(t, err)
	require.Equal(t, testutil.Period53, r.RunFullPeriod().String())
	require.Equal(t, testutil.MustState(t, "11110"), r.InitialState())

	// flags override the base configuration
	base := testutil.NewTestConfig(testutil.WithTaps(5, 2), testutil.WithInitState("ones"))
	r, err = BuildRegister(base, RegisterFlags{Configuration: "galois"})
	require.NoError(t, err)
	require.Equal(t, lfsr.Galois, r.Configuration())
	require.Equal(t, testutil.Period52Galois, r.RunFullPeriod().String())
	require.Equal(t, lfsr.Fibonacci, base.Configuration, "base config must not be modified")

	index := 0
	r, err = BuildRegister(base, RegisterFlags{Taps: "x^3 + x^2 + 1", State: "111", OutputIndex: &index, CountFromOne: true})
	require.NoError(t, err)
	require.Equal(t, 0, r.OutputIndex())
	require.False(t, r.CounterStartZero())
	require.Equal(t, 1, r.Count())

	_, err = BuildRegister(nil, RegisterFlags{Taps: "5,3", State: "random"}, lfsr.WithSource(testutil.ZeroSource{}))
	require.ErrorIs(t, err, lfsr.ErrInvalidState)

	_, err = BuildRegister(nil, RegisterFlags{State: "ones"})
	require.ErrorContains(t, err, "taps are required")

	_, err = BuildRegister(nil, RegisterFlags{Taps: "5,a"})
	require.ErrorContains(t, err, "taps")
}

func TestFlushMetrics(t *testing.T) {
	log := slog.New(slog.DiscardHandler)
	m, err := metrics.New(PackageName)
	require.NoError(t, err)
	m.ObserveSteps("a51", 64)

	require.NoError(t, FlushMetrics(m, "", log))
	require.NoError(t, FlushMetrics(nil, "ignored.prom", log))

	path := filepath.Join(t.TempDir(), "lfsr.prom")
	require.NoError(t, FlushMetrics(m, path, log))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `lfsr_generator_bits_total{generator="a51"} 64`)
}
