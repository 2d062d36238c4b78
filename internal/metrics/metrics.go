package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "courses_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "courses_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	BlobOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "courses_blob_operations_total",
			Help: "Blob store operations performed by the image lifecycle manager",
		},
		[]string{"op", "status"},
	)

	RejectedSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "courses_rejected_submissions_total",
			Help: "Section and material submissions rejected by validation",
		},
		[]string{"kind", "code"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		BlobOperations,
		RejectedSubmissions,
	)
}

func RecordRequest(method, route, status string, d time.Duration) {
	RequestsTotal.WithLabelValues(method, route, status).Inc()
	RequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func RecordBlob(op string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	BlobOperations.WithLabelValues(op, status).Inc()
}

func RecordRejected(kind, code string) {
	RejectedSubmissions.WithLabelValues(kind, code).Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}
