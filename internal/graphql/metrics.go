package graphql

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK          = "ok"
	outcomeApplication = "application_error"
	outcomeNotFound    = "not_found"
	outcomeTransport   = "transport_error"
)

var (
	requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "schooladmin",
		Subsystem: "graphql",
		Name:      "requests_total",
		Help:      "GraphQL requests by operation and outcome.",
	}, []string{"operation", "outcome"})

	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "schooladmin",
		Subsystem: "graphql",
		Name:      "request_duration_seconds",
		Help:      "GraphQL round-trip latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})
)

// Register adds the transport collectors to reg. Safe to call once per registry.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{requestsTotal, requestDuration} {
		if err := reg.Register(c); err != nil {
			if _, dup := err.(prometheus.AlreadyRegisteredError); dup {
				continue
			}
			return err
		}
	}
	return nil
}

func observe(operation, outcome string, start time.Time) {
	requestsTotal.WithLabelValues(operation, outcome).Inc()
	requestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
