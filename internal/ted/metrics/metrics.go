package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for calls to the TED API.
type Metrics struct {
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// New registers the TED client metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gpp_ted_requests_total",
			Help: "Total number of TED API calls by operation, outcome and status class",
		}, []string{"operation", "outcome", "status_class"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gpp_ted_request_duration_seconds",
			Help:    "Duration of TED API calls, body read included",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}

// ObserveRequest records one finished call. outcome is "success" or
// "failure"; status is the status carried by the call's result.
func (m *Metrics) ObserveRequest(operation string, ok bool, status int, start time.Time) {
	outcome := "failure"
	if ok {
		outcome = "success"
	}
	m.Requests.WithLabelValues(operation, outcome, statusClass(status)).Inc()
	m.RequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func statusClass(status int) string {
	if status < 100 || status > 599 {
		return "unknown"
	}
	return strconv.Itoa(status/100) + "xx"
}
