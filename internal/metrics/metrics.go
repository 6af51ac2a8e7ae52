package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_requests_latency_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
	HTTPInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Requests currently being served.",
		},
	)
	RequestsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_rejected_total",
			Help: "Requests answered before reaching the executor",
		},
		[]string{"reason"}, // rate_limited|panic
	)

	// Operations
	OperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "operations_total",
			Help: "Resolved API operations by outcome",
		},
		[]string{"operation", "outcome"}, // ok|error
	)
	OperationLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "operation_latency_seconds",
			Help:    "Time from connection acquire to release per operation.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
	TransactionsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "transactions_created_total",
			Help: "Total transactions recorded",
		},
	)

	// Store connections
	ConnectionsInUse = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_in_use",
			Help: "Connections currently held by in-flight operations",
		},
	)
	ConnectionErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "db_connection_errors_total",
			Help: "Failed connection acquisitions",
		},
	)

	initOnce sync.Once
)

// Handler serves the default registry.
var Handler = promhttp.Handler

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(HTTPLatency)
		prometheus.MustRegister(HTTPInFlight)
		prometheus.MustRegister(RequestsRejected)
		prometheus.MustRegister(OperationsTotal)
		prometheus.MustRegister(OperationLatency)
		prometheus.MustRegister(TransactionsCreated)
		prometheus.MustRegister(ConnectionsInUse)
		prometheus.MustRegister(ConnectionErrors)
	})
}
