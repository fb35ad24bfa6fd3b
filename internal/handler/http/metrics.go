package http

import "github.com/prometheus/client_golang/prometheus"

const (
	metricControllerDuration = "ticket_controller_duration_seconds"

	outcomeSuccess   = "success"
	outcomeRejected  = "rejected"
	outcomeAppError  = "app_error"
	outcomeUnhandled = "unhandled"
	outcomeTimeout   = "timeout"
)

func newControllerDuration(registry prometheus.Registerer) *prometheus.HistogramVec {
	histogram := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    metricControllerDuration,
		Help:    "Execution time of managed REST controllers.",
		Buckets: prometheus.DefBuckets,
	}, []string{"controller", "outcome"})

	registry.MustRegister(histogram)
	return histogram
}
