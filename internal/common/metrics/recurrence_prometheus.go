package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	MaterializeCreated = "created"
	MaterializeSkipped = "skipped"
	MaterializeFailed  = "failed"
)

type RecurrencePrometheusMetrics struct {
	materializations *prometheus.CounterVec
}

func newRecurrencePrometheusMetrics(reg prometheus.Registerer) *RecurrencePrometheusMetrics {
	mtc := &RecurrencePrometheusMetrics{
		materializations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_recurrence_materializations_total",
				Help: "Number of recurrence materializations by result",
			},
			[]string{"result"},
		),
	}

	reg.MustRegister(mtc.materializations)

	return mtc
}

func (m *RecurrencePrometheusMetrics) Record(result string) {
	if m == nil {
		return
	}
	m.materializations.WithLabelValues(result).Inc()
}
