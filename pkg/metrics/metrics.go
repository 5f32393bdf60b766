package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "klowq_dashboard"

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	StoreOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "store_operations_total", Help: "Collection operations by store, operation and result."},
		[]string{"store", "op", "result"},
	)
	LoginAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "login_attempts_total", Help: "Admin login attempts by result."},
		[]string{"result"},
	)
	HTTPRequests = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: namespace, Name: "http_request_duration_seconds", Help: "HTTP request latency by route and status.", Buckets: prometheus.DefBuckets},
		[]string{"method", "route", "status"},
	)
)

// ObserveStore records the outcome of one store call. Not-found and
// validation failures count as "rejected", anything else non-nil as "error".
func ObserveStore(store, op string, err error, rejected func(error) bool) {
	result := "ok"
	switch {
	case err == nil:
	case rejected != nil && rejected(err):
		result = "rejected"
	default:
		result = "error"
	}
	StoreOperations.WithLabelValues(store, op, result).Inc()
}

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(StoreOperations)
	reg.MustRegister(LoginAttempts)
	reg.MustRegister(HTTPRequests)
}
