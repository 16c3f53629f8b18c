// Package metrics records validation outcomes as Prometheus metrics on a
// private registry. The tool is a batch process, so the registry is exported
// as a node-exporter textfile rather than served over HTTP.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	iso "github.com/reoring/isoskema"
)

// Outcome labels.
const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Collector holds the isoskema metrics.
type Collector struct {
	registry *prometheus.Registry

	messages *prometheus.CounterVec
	issues   *prometheus.CounterVec
	duration *prometheus.HistogramVec
	lastRun  prometheus.Gauge
}

// NewCollector registers the metrics on registry, or on a new registry when
// registry is nil.
func NewCollector(registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	c := &Collector{
		registry: registry,
		messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "isoskema",
			Name:      "messages_total",
			Help:      "Messages processed, by message identifier and outcome.",
		}, []string{"message", "outcome"}),
		issues: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "isoskema",
			Name:      "issues_total",
			Help:      "Validation failures, by issue code.",
		}, []string{"code"}),
		// Decoding and validating one message takes microseconds to a few
		// milliseconds.
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "isoskema",
			Name:      "validation_duration_seconds",
			Help:      "Time spent decoding and validating one message.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"message"}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "isoskema",
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time of the last completed batch.",
		}),
	}
	registry.MustRegister(c.messages, c.issues, c.duration, c.lastRun)
	return c
}

// Registry returns the registry the metrics live on.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Observe records one processed message. message may be empty when the
// payload could not be identified; err is the validation or decode result.
func (c *Collector) Observe(message string, err error, elapsed time.Duration) {
	if message == "" {
		message = "unknown"
	}
	outcome := OutcomeValid
	if err != nil {
		if iss, ok := iso.AsIssue(err); ok {
			outcome = OutcomeInvalid
			c.issues.WithLabelValues(fmt.Sprintf("%d", int(iss.Code))).Inc()
		} else {
			outcome = OutcomeError
		}
	}
	c.messages.WithLabelValues(message, outcome).Inc()
	c.duration.WithLabelValues(message).Observe(elapsed.Seconds())
}

// MarkRun sets the last-run gauge to t.
func (c *Collector) MarkRun(t time.Time) { c.lastRun.Set(float64(t.Unix())) }

// WriteTextfile writes the registry to path atomically in the Prometheus
// text exposition format.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
