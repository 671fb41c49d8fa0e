// Package metrics declares the pipeline collectors. They are registered on
// the default prometheus registry, which ginprom serves on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "msgdesk"

var (
	LLMRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "llm",
		Name:      "requests_total",
		Help:      "Chat completion requests by operation and outcome.",
	}, []string{"operation", "outcome"})

	LLMLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "llm",
		Name:      "request_duration_seconds",
		Help:      "Chat completion round-trip time.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"operation"})

	ClassificationFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "classification",
		Name:      "fallbacks_total",
		Help:      "Model replies that could not be decoded and were replaced by the default classification.",
	})

	TagsApplied = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "classification",
		Name:      "tags_applied_total",
		Help:      "Automatic tag associations written (including no-op repeats).",
	})

	MessagesIngested = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "messages",
		Name:      "ingested_total",
		Help:      "Messages stored, by source.",
	}, []string{"source"})

	SuggestionsServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "suggestions",
		Name:      "served_total",
		Help:      "Suggestions returned, by type.",
	}, []string{"type"})
)
