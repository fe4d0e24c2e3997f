package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/budhip/go-fp-ledger/internal/models"
)

type BalancePrometheusMetrics struct {
	balanceComputations *prometheus.CounterVec
	journalsStored      *prometheus.CounterVec
	journalMovements    *prometheus.CounterVec
}

func newBalancePrometheusMetrics(reg prometheus.Registerer) *BalancePrometheusMetrics {
	mtc := &BalancePrometheusMetrics{
		balanceComputations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_balance_computations_total",
				Help: "Number of balance computations that missed the cache, by operation",
			},
			[]string{"operation"},
		),
		journalsStored: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_journals_stored_total",
				Help: "Number of journals stored by transaction type",
			},
			[]string{"transaction_type"},
		),
		journalMovements: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_journal_movements_total",
				Help: "Sum of stored journal amounts by transaction type",
			},
			[]string{"transaction_type"},
		),
	}

	reg.MustRegister(mtc.balanceComputations)
	reg.MustRegister(mtc.journalsStored)
	reg.MustRegister(mtc.journalMovements)

	return mtc
}

// RecordComputation counts a balance computed from storage instead of cache.
func (m *BalancePrometheusMetrics) RecordComputation(operation string) {
	if m == nil {
		return
	}
	m.balanceComputations.WithLabelValues(operation).Inc()
}

func (m *BalancePrometheusMetrics) RecordJournals(journals []models.TransactionJournal) {
	if m == nil {
		return
	}

	for _, journal := range journals {
		m.journalsStored.WithLabelValues(journal.Type.String()).Inc()
		for _, leg := range journal.Transactions {
			if !leg.Amount.IsPositive() {
				continue
			}
			amount, _ := leg.Amount.Float64()
			m.journalMovements.WithLabelValues(journal.Type.String()).Add(amount)
		}
	}
}
