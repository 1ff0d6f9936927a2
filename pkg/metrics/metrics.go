package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	MetadataLinesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "product_map_metadata_lines_total",
			Help: "Metadata log lines processed, by outcome.",
		},
		[]string{"outcome"}, // parsed, skipped, malformed, non_image, bad_timestamp
	)

	BuildsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "product_map_builds_total",
			Help: "Total number of product map builds.",
		},
		[]string{"source"}, // computed, cache
	)

	BuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "product_map_build_duration_seconds",
			Help:    "Duration of product map pipeline runs.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	GraphSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "product_map_graph_size",
			Help: "Size of the last built product map.",
		},
		[]string{"kind"}, // pages, edges, journeys
	)
)
