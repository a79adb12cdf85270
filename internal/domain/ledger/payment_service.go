package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"consultancy-ledger/internal/pkg/apperrors"

	"github.com/shopspring/decimal"
)

// PaymentService is the manager for installments received from customers.
type PaymentService interface {
	AddPayment(ctx context.Context, customerID int64, date time.Time, amount decimal.Decimal) (*Payment, error)
	ListPayments(ctx context.Context, customerID int64) ([]Payment, error)
}

var _ PaymentService = (*paymentService)(nil)

type paymentService struct {
	repo      LedgerRepository
	customers CustomerDirectory
	logger    *slog.Logger
}

func NewPaymentService(repo LedgerRepository, customers CustomerDirectory, logger *slog.Logger) PaymentService {
	if repo == nil {
		panic("ledger repository cannot be nil")
	}
	if customers == nil {
		panic("customer directory cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewPaymentService, using default stderr handler")
	}
	return &paymentService{
		repo:      repo,
		customers: customers,
		logger:    logger.With(slog.String("component", "paymentService")),
	}
}

func (s *paymentService) AddPayment(ctx context.Context, customerID int64, date time.Time, amount decimal.Decimal) (*Payment, error) {
	s.logger.InfoContext(ctx, "Attempting to add payment", slog.Int64("customerID", customerID))

	if date.IsZero() {
		s.logger.WarnContext(ctx, "Validation failed: payment date is zero")
		return nil, apperrors.NewValidationError("date", "payment date is required")
	}
	if amount.IsNegative() {
		s.logger.WarnContext(ctx, "Validation failed: negative payment amount")
		return nil, apperrors.NewValidationError("amount", "payment amount cannot be negative")
	}

	if err := s.customers.EnsureExists(ctx, customerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.WarnContext(ctx, "Referenced customer does not exist", slog.Int64("customerID", customerID))
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to verify customer %d: %w", customerID, err)
	}

	payment := &Payment{
		CustomerID: customerID,
		Date:       date,
		Amount:     amount,
	}
	if err := s.repo.AddPayment(ctx, payment); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.logger.ErrorContext(ctx, "Repository failed to add payment", slog.Any("error", err))
		return nil, fmt.Errorf("failed to add payment for customer %d: %w", customerID, err)
	}

	s.logger.InfoContext(ctx, "Successfully added payment",
		slog.Int64("customerID", customerID), slog.Int64("paymentID", payment.PaymentID))
	return payment, nil
}

func (s *paymentService) ListPayments(ctx context.Context, customerID int64) ([]Payment, error) {
	if err := s.customers.EnsureExists(ctx, customerID); err != nil {
		return nil, err
	}
	payments, err := s.repo.FindPayments(ctx, customerID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error listing payments", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list payments for customer %d: %w", customerID, err)
	}
	return payments, nil
}
