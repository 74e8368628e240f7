package infrastructure

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "salesreport"

// RunMetrics collects the figures of one pipeline run in a private registry
// so they can be dumped to a node_exporter textfile at exit.
type RunMetrics struct {
	registry *prometheus.Registry

	RowsLoaded       prometheus.Gauge
	ColumnsDetected  prometheus.Gauge
	SummariesBuilt   prometheus.Gauge
	SummariesSkipped *prometheus.CounterVec
	StageDuration    *prometheus.GaugeVec
	StageFailures    *prometheus.CounterVec
	LastSuccess      prometheus.Gauge
}

// NewRunMetrics creates and registers the run collectors
func NewRunMetrics() *RunMetrics {
	m := &RunMetrics{
		registry: prometheus.NewRegistry(),
		RowsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "rows_loaded",
			Help:      "Number of records read from the workbook.",
		}),
		ColumnsDetected: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "columns_detected",
			Help:      "Number of columns in the record table, derived columns included.",
		}),
		SummariesBuilt: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "summary_tables_built",
			Help:      "Number of summary tables built.",
		}),
		SummariesSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "summary_tables_skipped_total",
			Help:      "Summary tables skipped because required columns were missing.",
		}, []string{"key"}),
		StageDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "stage_duration_seconds",
			Help:      "Wall time of each pipeline stage.",
		}, []string{"stage"}),
		StageFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "stage_failures_total",
			Help:      "Pipeline stages that returned an error.",
		}, []string{"stage"}),
		LastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last run that wrote the report.",
		}),
	}

	m.registry.MustRegister(
		m.RowsLoaded,
		m.ColumnsDetected,
		m.SummariesBuilt,
		m.SummariesSkipped,
		m.StageDuration,
		m.StageFailures,
		m.LastSuccess,
	)
	return m
}

// ObserveStage records the outcome of one stage
func (m *RunMetrics) ObserveStage(stage string, elapsed time.Duration, err error) {
	m.StageDuration.WithLabelValues(stage).Set(elapsed.Seconds())
	if err != nil {
		m.StageFailures.WithLabelValues(stage).Inc()
	}
}

// MarkSuccess stamps the last-success gauge
func (m *RunMetrics) MarkSuccess(now time.Time) {
	m.LastSuccess.Set(float64(now.Unix()))
}

// WriteTextfile writes all collected metrics in the text exposition format
func (m *RunMetrics) WriteTextfile(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create metrics directory %s: %w", dir, err)
		}
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics file %s: %w", path, err)
	}
	return nil
}
