// Package metrics exposes Prometheus counters for register steps, property
// checks and polynomial surveys, and writes them in the node-exporter textfile
// format.
package metrics

import (
	"fmt"
	"time"

	"github.com/Nikeshbajaj/Linear-Feedback-Shift-Register/properties"
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes every metric name unless New is given another one.
const DefaultNamespace = "lfsr"

// Metrics holds a private registry with the collectors used by the commands.
type Metrics struct {
	registry *prometheus.Registry

	steps          *prometheus.CounterVec
	checks         *prometheus.CounterVec
	surveyed       *prometheus.CounterVec
	surveyDuration prometheus.Histogram
}

// New creates the collectors under namespace and registers them.
func New(namespace string) (*Metrics, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generator_bits_total",
			Help:      "Output bits produced, by generator",
		}, []string{"generator"}),
		checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "property_checks_total",
			Help:      "Property checks run, by property and result",
		}, []string{"property", "result"}),
		surveyed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "survey_candidates_total",
			Help:      "Candidate polynomials surveyed, by result",
		}, []string{"result"}),
		surveyDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "survey_duration_seconds",
			Help:      "Wall time of a polynomial survey",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}

	for _, c := range []prometheus.Collector{m.steps, m.checks, m.surveyed, m.surveyDuration} {
		if err := m.registry.Register(c); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}
	return m, nil
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveSteps records n output bits from the named generator.
func (m *Metrics) ObserveSteps(generator string, n int) {
	m.steps.WithLabelValues(generator).Add(float64(n))
}

// ObserveReport records the outcome of every check that was run in r.
func (m *Metrics) ObserveReport(r properties.Report) {
	if r.Periodicity != nil {
		m.observeCheck(properties.PropertyPeriodicity, r.Periodicity.Passed)
	}
	for name, passed := range map[string]bool{
		properties.PropertyBalance:         r.Balance.Passed,
		properties.PropertyRunLength:       r.RunLength.Passed,
		properties.PropertyAutocorrelation: r.Autocorrelation.Passed,
	} {
		if r.Ran(name) {
			m.observeCheck(name, passed)
		}
	}
}

// ObserveSurvey records a finished survey.
func (m *Metrics) ObserveSurvey(stats properties.SurveyStats, took time.Duration) {
	m.surveyed.WithLabelValues("maximal").Add(float64(stats.Passed))
	m.surveyed.WithLabelValues("rejected").Add(float64(stats.Failed))
	m.surveyDuration.Observe(took.Seconds())
}

func (m *Metrics) observeCheck(property string, passed bool) {
	result := "fail"
	if passed {
		result = "pass"
	}
	m.checks.WithLabelValues(property, result).Inc()
}

// WriteTextfile writes the current metric values to path in the text format
// read by the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
