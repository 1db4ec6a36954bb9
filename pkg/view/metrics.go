package view

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the view layer. Registered once on the default
// registerer at package init.
var (
	metricRecomputes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "glint",
		Subsystem: "view",
		Name:      "recomputes_total",
		Help:      "Total state recomputes, by trigger.",
	}, []string{"trigger"})

	metricStaleDiscarded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "glint",
		Subsystem: "view",
		Name:      "stale_results_discarded_total",
		Help:      "Compute results discarded because a newer compute superseded them or the view was torn down.",
	})

	metricValueRenders = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "glint",
		Subsystem: "view",
		Name:      "value_renders_total",
		Help:      "Total values rendered, including recursive children.",
	})

	metricDepthTruncations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "glint",
		Subsystem: "view",
		Name:      "depth_truncations_total",
		Help:      "Renders cut short by the recursion depth bound.",
	})
)
