// Package metrics exposes Prometheus collectors for the aggregation pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts API requests by path and status code.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hotnews_http_requests_total",
		Help: "HTTP requests processed, by path and status code.",
	}, []string{"path", "code"})

	// HTTPDuration observes request latency by path.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hotnews_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})

	// SourceFetches counts topic fetches by platform and outcome (ok/fallback).
	SourceFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hotnews_source_fetches_total",
		Help: "Topic list fetches, by platform and outcome.",
	}, []string{"platform", "result"})

	// ImageExtractions counts extraction outcomes (real/placeholder).
	ImageExtractions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hotnews_image_extractions_total",
		Help: "Representative-image resolutions, by outcome.",
	}, []string{"result"})

	// Generations counts content generations by strategy
	// (model, model_fallback, passthrough).
	Generations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hotnews_generations_total",
		Help: "Content generations, by strategy used.",
	}, []string{"strategy"})
)
