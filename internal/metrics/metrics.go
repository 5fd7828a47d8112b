// Package metrics keeps in-process counters for dispatched commands and
// cache cleanup. The registry is private; nothing is served over HTTP. It is
// read back through Snapshot and WriteText.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "filedesk"

// Outcome labels
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics holds the application's collectors.
type Metrics struct {
	Registry *prometheus.Registry

	CommandsTotal   *prometheus.CounterVec
	CommandDuration *prometheus.HistogramVec
	RemovedEntries  prometheus.Counter
}

// New creates collectors registered on a fresh registry
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		CommandsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Commands dispatched over the bridge, by command and outcome.",
		}, []string{"command", "outcome"}),
		CommandDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "command_duration_seconds",
			Help:      "Time spent in command handlers.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"command"}),
		RemovedEntries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_entries_removed_total",
			Help:      "Cache entries removed by clear_cache.",
		}),
	}

	m.Registry.MustRegister(m.CommandsTotal, m.CommandDuration, m.RemovedEntries)
	return m
}

// ObserveCommand records one finished command
func (m *Metrics) ObserveCommand(command string, seconds float64, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	m.CommandsTotal.WithLabelValues(command, outcome).Inc()
	m.CommandDuration.WithLabelValues(command).Observe(seconds)
}

// CacheEntriesRemoved adds n removed cache entries
func (m *Metrics) CacheEntriesRemoved(n int) {
	if n > 0 {
		m.RemovedEntries.Add(float64(n))
	}
}

// Stats is a summary of the counters gathered from the registry
type Stats struct {
	Succeeded      int
	Failed         int
	RemovedEntries int
}

// Commands returns the number of dispatched commands
func (s Stats) Commands() int {
	return s.Succeeded + s.Failed
}

// Snapshot gathers the registry and sums the counters
func (m *Metrics) Snapshot() (Stats, error) {
	families, err := m.Registry.Gather()
	if err != nil {
		return Stats{}, fmt.Errorf("failed to gather metrics: %w", err)
	}

	var stats Stats
	for _, mf := range families {
		switch mf.GetName() {
		case namespace + "_commands_total":
			for _, metric := range mf.GetMetric() {
				n := int(metric.GetCounter().GetValue())
				for _, label := range metric.GetLabel() {
					if label.GetName() != "outcome" {
						continue
					}
					if label.GetValue() == OutcomeFailure {
						stats.Failed += n
					} else {
						stats.Succeeded += n
					}
				}
			}
		case namespace + "_cache_entries_removed_total":
			for _, metric := range mf.GetMetric() {
				stats.RemovedEntries += int(metric.GetCounter().GetValue())
			}
		}
	}
	return stats, nil
}

// WriteText writes every gathered family in the Prometheus text format
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.Registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
