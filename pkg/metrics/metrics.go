package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "reelfetch",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by method, path and status code.",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "reelfetch",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration in seconds.",
		Buckets:   []float64{0.05, 0.1, 0.3, 0.5, 1, 2, 5, 10, 30},
	}, []string{"method", "path"})

	AcquisitionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "reelfetch",
		Name:      "acquisitions_total",
		Help:      "Acquisition requests by outcome (created, existing, failed).",
	}, []string{"result"})

	ProgressCallbacksTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "reelfetch",
		Name:      "progress_callbacks_total",
		Help:      "Worker progress callbacks by reported status.",
	}, []string{"status"})

	StreamBytesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "reelfetch",
		Name:      "stream_bytes_total",
		Help:      "Total video bytes served to clients.",
	})
)

func Register(reg prometheus.Registerer) {
	reg.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		AcquisitionsTotal,
		ProgressCallbacksTotal,
		StreamBytesTotal,
	)
}
