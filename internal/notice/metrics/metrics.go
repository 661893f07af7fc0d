package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the patch lifecycle.
type Metrics struct {
	Operations        *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	PatchesSuggested  prometheus.Counter
	PatchesApplied    prometheus.Counter
	ManualNoticeLoads prometheus.Counter
}

// New registers the notice metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gpp_notice_operations_total",
			Help: "Total number of notice operations by operation and result",
		}, []string{"operation", "result"}),
		OperationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gpp_notice_operation_duration_seconds",
			Help:    "Duration of notice operations, collaborator time included",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),
		PatchesSuggested: factory.NewCounter(prometheus.CounterOpts{
			Name: "gpp_patches_suggested_total",
			Help: "Total number of patches returned by suggest-patches",
		}),
		PatchesApplied: factory.NewCounter(prometheus.CounterOpts{
			Name: "gpp_patches_applied_total",
			Help: "Total number of patches applied successfully",
		}),
		ManualNoticeLoads: factory.NewCounter(prometheus.CounterOpts{
			Name: "gpp_manual_notice_loads_total",
			Help: "Total number of notices written to the manual-testing store",
		}),
	}
}

// ObserveOperation records the outcome and duration of one operation.
// Call with time.Now() taken at the start of the operation.
func (m *Metrics) ObserveOperation(operation string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.Operations.WithLabelValues(operation, result).Inc()
	m.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func (m *Metrics) AddPatchesSuggested(n int) {
	m.PatchesSuggested.Add(float64(n))
}

func (m *Metrics) AddPatchesApplied(n int) {
	m.PatchesApplied.Add(float64(n))
}

func (m *Metrics) IncrementManualNoticeLoads() {
	m.ManualNoticeLoads.Inc()
}
