package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OutstandingBalanceTotal is the sum of positive balances across all
	// customers, refreshed by the receivables snapshot job.
	OutstandingBalanceTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ledger_outstanding_balance_total",
		Help: "Sum of positive customer balances.",
	})

	CustomersWithBalanceDue = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ledger_customers_with_balance_due",
		Help: "Number of customers whose balance is positive.",
	})

	ReceivablesSnapshotRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_receivables_snapshot_runs_total",
		Help: "Receivables snapshot job executions by outcome.",
	}, []string{"outcome"})
)
