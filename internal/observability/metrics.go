package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the ETL
// pipeline and the report server.
type Metrics struct {
	RecordsExtracted  prometheus.Counter
	RecordsNormalized prometheus.Counter
	RecordsPublished  prometheus.Counter
	MissingValues     prometheus.Counter
	IngestErrors      prometheus.Counter
	PipelineRunning   prometheus.Gauge

	RunDuration prometheus.Histogram
	DatasetSize prometheus.Gauge
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RecordsExtracted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "race_etl",
			Name:      "records_extracted_total",
			Help:      "Total raw records read from the input source.",
		}),
		RecordsNormalized: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "race_etl",
			Name:      "records_normalized_total",
			Help:      "Total records written in canonical form.",
		}),
		RecordsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "race_etl",
			Name:      "records_published_total",
			Help:      "Total records published to the Kafka sink.",
		}),
		MissingValues: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "race_etl",
			Name:      "missing_values_total",
			Help:      "Total empty cells observed across normalized records.",
		}),
		IngestErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "race_etl",
			Name:      "ingest_errors_total",
			Help:      "Total fatal ingestion failures.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "race_etl",
			Name:      "pipeline_running",
			Help:      "1 while an ETL run is in progress, 0 otherwise.",
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "race_etl",
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete extract-normalize-load run.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		DatasetSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "race_etl",
			Name:      "dataset_size",
			Help:      "Number of records in the loaded dataset.",
		}),
	}

	prometheus.MustRegister(
		m.RecordsExtracted,
		m.RecordsNormalized,
		m.RecordsPublished,
		m.MissingValues,
		m.IngestErrors,
		m.PipelineRunning,
		m.RunDuration,
		m.DatasetSize,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RecordsExtracted:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "race_etl", Name: "records_extracted_total"}),
		RecordsNormalized: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "race_etl", Name: "records_normalized_total"}),
		RecordsPublished:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "race_etl", Name: "records_published_total"}),
		MissingValues:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "race_etl", Name: "missing_values_total"}),
		IngestErrors:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "race_etl", Name: "ingest_errors_total"}),
		PipelineRunning:   prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "race_etl", Name: "pipeline_running"}),
		RunDuration:       prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "race_etl", Name: "run_duration_seconds"}),
		DatasetSize:       prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "race_etl", Name: "dataset_size"}),
	}
}
