package billing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"consultancy-ledger/internal/domain/customer"
	"consultancy-ledger/internal/domain/ledger"
	"consultancy-ledger/internal/pkg/apperrors"
)

// Statement is the presentation-ready bill snapshot: the customer profile,
// the itemized ledger, and the derived totals at generation time. It is
// assembled from current storage state on every call, never cached.
type Statement struct {
	Customer    *customer.Customer   `json:"customer"`
	Services    []ledger.ServiceLine `json:"services"`
	Payments    []ledger.Payment     `json:"payments"`
	Totals      Totals               `json:"totals"`
	GeneratedAt time.Time            `json:"generatedAt"`
}

type BillingService interface {
	GetStatement(ctx context.Context, customerID int64) (*Statement, error)
}

var _ BillingService = (*billingService)(nil)

type billingService struct {
	customers customer.CustomerRepository
	entries   ledger.LedgerRepository
	logger    *slog.Logger
}

func NewBillingService(customers customer.CustomerRepository, entries ledger.LedgerRepository, logger *slog.Logger) BillingService {
	if customers == nil {
		panic("customer repository cannot be nil")
	}
	if entries == nil {
		panic("ledger repository cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewBillingService, using default stderr handler")
	}
	return &billingService{
		customers: customers,
		entries:   entries,
		logger:    logger.With(slog.String("component", "billingService")),
	}
}

func (s *billingService) GetStatement(ctx context.Context, customerID int64) (*Statement, error) {
	s.logger.InfoContext(ctx, "Assembling statement", slog.Int64("customerID", customerID))

	cust, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.WarnContext(ctx, "Customer not found for statement", slog.Int64("customerID", customerID))
			return nil, apperrors.ErrNotFound
		}
		s.logger.ErrorContext(ctx, "Repository error finding customer for statement", slog.Any("error", err))
		return nil, fmt.Errorf("failed to get customer %d for statement: %w", customerID, err)
	}

	lines, err := s.entries.FindServiceLines(ctx, customerID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error loading service lines for statement", slog.Any("error", err))
		return nil, fmt.Errorf("failed to load service lines for customer %d: %w", customerID, err)
	}

	payments, err := s.entries.FindPayments(ctx, customerID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error loading payments for statement", slog.Any("error", err))
		return nil, fmt.Errorf("failed to load payments for customer %d: %w", customerID, err)
	}

	stmt := &Statement{
		Customer:    cust,
		Services:    lines,
		Payments:    payments,
		Totals:      ComputeTotals(lines, payments),
		GeneratedAt: time.Now(),
	}

	s.logger.InfoContext(ctx, "Statement assembled",
		slog.Int64("customerID", customerID),
		slog.Int("services", len(lines)),
		slog.Int("payments", len(payments)),
		slog.String("balance", stmt.Totals.Balance.StringFixed(2)))
	return stmt, nil
}
