// Package metrics holds the Prometheus collectors of the actorgraph tools.
// The tools are one-shot processes, so the registry is dumped to a textfile
// (node_exporter textfile collector format) instead of being scraped.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Query outcomes used as the "outcome" label.
const (
	OutcomeFound   = "found"
	OutcomeEmpty   = "empty"
	OutcomeUnknown = "unknown_actor"
	OutcomeError   = "error"
)

var (
	QueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "actorgraph_queries_total",
		Help: "Total number of queries answered, labelled by kind and outcome.",
	}, []string{"kind", "outcome"})

	QueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "actorgraph_query_duration_seconds",
		Help:    "Query latency in seconds, labelled by kind.",
		Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5},
	}, []string{"kind"})

	GraphActors = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "actorgraph_graph_actors",
		Help: "Number of distinct actors in the loaded graph.",
	})

	GraphCredits = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "actorgraph_graph_credits",
		Help: "Number of credit rows ingested into the loaded graph.",
	})

	GraphLinks = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "actorgraph_graph_links",
		Help: "Number of actor pairs sharing at least one credit.",
	})

	RowsSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "actorgraph_rows_skipped_total",
		Help: "Input rows rejected for shape, labelled by input kind.",
	}, []string{"input"})

	ForestWeight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "actorgraph_forest_weight",
		Help: "Total weight of the last computed spanning forest.",
	})

	ForestEdges = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "actorgraph_forest_edges",
		Help: "Edge count of the last computed spanning forest.",
	})

	PredictorHalts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "actorgraph_predictor_halts_total",
		Help: "Prediction batches stopped early by an unknown actor.",
	})
)

// ObserveQuery records one query outcome and its latency.
func ObserveQuery(kind, outcome string, d time.Duration) {
	QueriesTotal.WithLabelValues(kind, outcome).Inc()
	QueryDuration.WithLabelValues(kind).Observe(d.Seconds())
}

// WriteTextfile writes every registered metric to path.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
