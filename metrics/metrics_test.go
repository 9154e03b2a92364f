package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/properties"
	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/testutil"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestObserveSteps(t *testing.T) {
	m, err := New("")
	require.NoError(t, err)

	m.ObserveSteps("lfsr", 31)
	m.ObserveSteps("lfsr", 1)
	m.ObserveSteps("a51", 64)

	require.Equal(t, 32.0, promtestutil.ToFloat64(m.steps.WithLabelValues("lfsr")))
	require.Equal(t, 64.0, promtestutil.ToFloat64(m.steps.WithLabelValues("a51")))
}

func TestObserveReport(t *testing.T) {
	m, err := New("test")
	require.NoError(t, err)

	m.ObserveReport(properties.CheckAll(testutil.NewTestRegister(t)))
	m.ObserveReport(properties.CheckSequence(testutil.MustSequence(t, testutil.Period51)))

	require.Equal(t, 1.0, promtestutil.ToFloat64(m.checks.WithLabelValues("periodicity", "pass")))
	require.Equal(t, 1.0, promtestutil.ToFloat64(m.checks.WithLabelValues("balance", "pass")))
	require.Equal(t, 1.0, promtestutil.ToFloat64(m.checks.WithLabelValues("balance", "fail")))
	require.Equal(t, 1.0, promtestutil.ToFloat64(m.checks.WithLabelValues("autocorrelation", "fail")))
	require.Equal(t, 0.0, promtestutil.ToFloat64(m.checks.WithLabelValues("periodicity", "fail")))
}

func TestObserveReportSkipsUnrunChecks(t *testing.T) {
	m, err := New("")
	require.NoError(t, err)

	m.ObserveReport(properties.Screen(testutil.NewTestRegister(t, testutil.WithTaps(5, 1))))

	require.Equal(t, 1.0, promtestutil.ToFloat64(m.checks.WithLabelValues(properties.PropertyPeriodicity, "fail")))
	require.Equal(t, 1, promtestutil.CollectAndCount(m.checks))
}

func TestWriteTextfile(t *testing.T) {
	m, err := New("")
	require.NoError(t, err)
	m.ObserveSteps("geffe", 10)
	m.ObserveSurvey(properties.SurveyStats{Candidates: 7, Passed: 2, Failed: 5}, 20*time.Millisecond)

	path := filepath.Join(t.TempDir(), "lfsr.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	require.Contains(t, out, `lfsr_generator_bits_total{generator="geffe"} 10`)
	require.Contains(t, out, `lfsr_survey_candidates_total{result="maximal"} 2`)
	require.Contains(t, out, `lfsr_survey_candidates_total{result="rejected"} 5`)
	require.Contains(t, out, "lfsr_survey_duration_seconds_count 1")

	require.Error(t, m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "lfsr.prom")))
}
