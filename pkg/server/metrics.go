package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "glint_server_active_sessions",
		Help: "Number of currently connected sessions.",
	})

	metricSessionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glint_server_sessions_total",
		Help: "Total sessions created since start.",
	})

	metricPushesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glint_server_pushes_total",
		Help: "Total rendered-HTML pushes sent over WebSocket.",
	})

	metricPushBytes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glint_server_push_bytes_total",
		Help: "Total bytes of rendered HTML pushed.",
	})

	metricPushErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glint_server_push_errors_total",
		Help: "WebSocket write failures during push.",
	})

	metricDispatchDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glint_server_dispatch_dropped_total",
		Help: "Dispatched functions dropped because the session queue was full.",
	})
)
