// Package metrics records run statistics in a Prometheus registry that can
// be written to a node-exporter textfile at the end of a run.
package metrics

import (
	"fmt"

	"github.com/bianoble/chart-uploader/internal/engine"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector is an engine.Observer that counts attempts, retries and final
// file states. Each Collector owns its registry so runs never share state.
type Collector struct {
	engine.NopObserver

	registry *prometheus.Registry
	attempts *prometheus.CounterVec
	files    *prometheus.CounterVec
	retries  prometheus.Counter
	duration prometheus.Gauge
}

// NewCollector creates a Collector with all series registered.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chart_uploader_attempts_total",
			Help: "Upload attempts by result (ok, failed)",
		}, []string{"result"}),
		files: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chart_uploader_files_total",
			Help: "Processed files by final state",
		}, []string{"state"}),
		retries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chart_uploader_retries_total",
			Help: "Retries scheduled after a failed attempt",
		}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "chart_uploader_run_duration_seconds",
			Help: "Wall-clock duration of the last run",
		}),
	}
	c.registry.MustRegister(c.attempts, c.files, c.retries, c.duration)
	return c
}

// Registry exposes the underlying registry, e.g. for Gather in tests.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) Retrying(string, int, int, error) {
	c.retries.Inc()
}

func (c *Collector) FileFinished(_, _ int, fr engine.FileReport) {
	c.files.WithLabelValues(string(fr.State)).Inc()

	switch {
	case fr.Attempts == 0:
	case fr.State == engine.StateFailed:
		c.attempts.WithLabelValues("failed").Add(float64(fr.Attempts))
	default:
		// Only the last attempt produced an outcome.
		c.attempts.WithLabelValues("ok").Inc()
		if fr.Attempts > 1 {
			c.attempts.WithLabelValues("failed").Add(float64(fr.Attempts - 1))
		}
	}
}

func (c *Collector) RunFinished(report *engine.RunReport) {
	c.duration.Set(report.Elapsed.Seconds())
}

// WriteTextfile writes the registry in the text exposition format. The
// file is written to a temporary name and renamed into place.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}
