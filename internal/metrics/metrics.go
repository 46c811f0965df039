package metrics

import (
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finance_http_requests_total",
			Help: "Total number of HTTP requests by operation and status",
		},
		[]string{"operation", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "finance_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2, 5},
		},
		[]string{"operation"},
	)

	ReportsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "finance_reports_generated_total",
			Help: "Total number of persisted reports",
		},
	)

	ChangesPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finance_changes_published_total",
			Help: "Total number of change notifications by kind",
		},
		[]string{"kind"},
	)
)

// Middleware records the count and latency of every Huma operation.
func Middleware(ctx huma.Context, next func(huma.Context)) {
	operation := ctx.Operation().OperationID
	start := time.Now()

	next(ctx)

	httpRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	httpRequestsTotal.WithLabelValues(operation, strconv.Itoa(ctx.Status())).Inc()
}
