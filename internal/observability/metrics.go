package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "dronereg"

// Metrics holds the Prometheus counters and gauges for a report run.
type Metrics struct {
	RowsRead        *prometheus.CounterVec // labels: table
	RowsSkipped     *prometheus.CounterVec // labels: table, reason={malformed,not_drone,no_model}
	RecordsWritten  *prometheus.CounterVec // labels: source={active,deregistered}
	ModelReferences prometheus.Gauge
	RunDuration     prometheus.Gauge

	// Download metrics.
	DownloadAttempts *prometheus.CounterVec // labels: outcome={success,error}
	DownloadBytes    prometheus.Gauge

	registry *prometheus.Registry
}

// NewMetrics creates all metrics and registers them on a dedicated registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	m.registry.MustRegister(
		m.RowsRead,
		m.RowsSkipped,
		m.RecordsWritten,
		m.ModelReferences,
		m.RunDuration,
		m.DownloadAttempts,
		m.DownloadBytes,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RowsRead: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_read_total",
			Help:      "Well-formed rows read per archive member.",
		}, []string{"table"}),
		RowsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_skipped_total",
			Help:      "Rows left out of the report, by member and reason.",
		}, []string{"table", "reason"}),
		RecordsWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_written_total",
			Help:      "Drone report rows written, by source table.",
		}, []string{"source"}),
		ModelReferences: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "model_references",
			Help:      "Drone model references loaded from ACFTREF.txt.",
		}),
		RunDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of the last report run.",
		}),
		DownloadAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "download_attempts_total",
			Help:      "Archive download attempts by outcome.",
		}, []string{"outcome"}),
		DownloadBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "download_bytes",
			Help:      "Size of the last downloaded archive.",
		}),
		registry: prometheus.NewRegistry(),
	}
}

// WriteTextfile writes the registered metrics in the node_exporter textfile
// collector format. Metrics built with NewMetricsForTesting write nothing.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
