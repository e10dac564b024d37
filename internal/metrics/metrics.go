package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ExplainRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "explainer_requests_total",
		Help: "Total number of explain_event requests, labelled by outcome.",
	}, []string{"outcome"})

	AnalysisFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "explainer_analysis_fallbacks_total",
		Help: "Total number of upstream replies downgraded to the fallback analysis.",
	})

	UpstreamDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "explainer_upstream_duration_seconds",
		Help:    "Latency of upstream completion calls in seconds.",
		Buckets: prometheus.DefBuckets,
	})
)
