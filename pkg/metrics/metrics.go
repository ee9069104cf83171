package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "campuslink", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "campuslink", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	StoreOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "campuslink", Name: "store_operations_total", Help: "Document store calls by operation, collection and result kind."},
		[]string{"op", "collection", "result"},
	)
	StoreOperationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: "campuslink", Name: "store_operation_seconds", Help: "Document store call latency.", Buckets: prometheus.DefBuckets},
		[]string{"op"},
	)
	QueryResultSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: "campuslink", Name: "store_query_documents", Help: "Documents returned per query.", Buckets: []float64{0, 1, 5, 10, 50, 100, 200, 500}},
		[]string{"collection"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(StoreOperations)
	reg.MustRegister(StoreOperationSeconds)
	reg.MustRegister(QueryResultSize)
}
