// Package batch holds the scheduled jobs run by the cron scheduler.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"consultancy-ledger/internal/domain/billing"
	"consultancy-ledger/internal/domain/customer"
	"consultancy-ledger/internal/domain/ledger"
	"consultancy-ledger/internal/infrastructure/monitoring"

	"github.com/shopspring/decimal"
)

// ReceivablesSnapshotJob walks every customer ledger and refreshes the
// outstanding-receivables gauges. It runs on the daily schedule in
// batch.receivablesSnapshotSchedule.
type ReceivablesSnapshotJob struct {
	customers customer.CustomerRepository
	entries   ledger.LedgerRepository
	logger    *slog.Logger
}

func NewReceivablesSnapshotJob(
	customers customer.CustomerRepository,
	entries ledger.LedgerRepository,
	logger *slog.Logger,
) *ReceivablesSnapshotJob {
	if customers == nil || entries == nil || logger == nil {
		panic("ReceivablesSnapshotJob dependencies cannot be nil")
	}
	return &ReceivablesSnapshotJob{
		customers: customers,
		entries:   entries,
		logger:    logger.With("job", "ReceivablesSnapshot"),
	}
}

func (j *ReceivablesSnapshotJob) Run(ctx context.Context) error {
	startTime := time.Now()
	j.logger.InfoContext(ctx, "Starting receivables snapshot job.")

	allCustomers, err := j.customers.FindAll(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to list customers, aborting job.", slog.Any("error", err))
		monitoring.ReceivablesSnapshotRuns.WithLabelValues("error").Inc()
		return fmt.Errorf("cannot run job, failed to list customers: %w", err)
	}
	j.logger.InfoContext(ctx, "Fetched customers.", slog.Int("count", len(allCustomers)))

	outstandingTotal := decimal.Zero
	customersWithDue := 0
	errorCount := 0

	for _, cust := range allCustomers {
		if ctx.Err() != nil {
			monitoring.ReceivablesSnapshotRuns.WithLabelValues("error").Inc()
			return fmt.Errorf("receivables snapshot interrupted: %w", ctx.Err())
		}

		logCtx := j.logger.With(slog.Int64("customerID", cust.CustomerID))

		lines, err := j.entries.FindServiceLines(ctx, cust.CustomerID)
		if err != nil {
			logCtx.ErrorContext(ctx, "Failed to load service lines", slog.Any("error", err))
			errorCount++
			continue
		}
		payments, err := j.entries.FindPayments(ctx, cust.CustomerID)
		if err != nil {
			logCtx.ErrorContext(ctx, "Failed to load payments", slog.Any("error", err))
			errorCount++
			continue
		}

		totals := billing.ComputeTotals(lines, payments)
		if totals.Balance.IsPositive() {
			outstandingTotal = outstandingTotal.Add(totals.Balance)
			customersWithDue++
		}
	}

	balance, _ := outstandingTotal.Float64()
	monitoring.OutstandingBalanceTotal.Set(balance)
	monitoring.CustomersWithBalanceDue.Set(float64(customersWithDue))

	outcome := "success"
	if errorCount > 0 {
		outcome = "partial"
	}
	monitoring.ReceivablesSnapshotRuns.WithLabelValues(outcome).Inc()

	j.logger.InfoContext(ctx, "Receivables snapshot job finished.",
		slog.Int("customers", len(allCustomers)),
		slog.Int("customers_with_balance_due", customersWithDue),
		slog.String("outstanding_total", outstandingTotal.StringFixed(2)),
		slog.Int("errors", errorCount),
		slog.Duration("duration", time.Since(startTime)),
	)

	if errorCount > 0 {
		return fmt.Errorf("receivables snapshot completed with %d ledger read errors", errorCount)
	}
	return nil
}
