package customer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"consultancy-ledger/internal/pkg/apperrors"

	"github.com/shopspring/decimal"
)

const customerNotFound = "Customer not found by repository"

// CreateCustomerParams carries the registration form fields. Name and Mobile
// are required; the rest may be empty. A zero CustomerDate means today.
type CreateCustomerParams struct {
	Name         string
	Mobile       string
	Village      string
	BankName     string
	LoanAmount   decimal.Decimal
	CustomerDate time.Time
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, params CreateCustomerParams) (*Customer, error)
	GetCustomer(ctx context.Context, customerID int64) (*Customer, error)
	ListCustomers(ctx context.Context) ([]*Customer, error)
	DeleteCustomer(ctx context.Context, customerID int64) error
	EnsureExists(ctx context.Context, customerID int64) error
}

var _ CustomerService = (*customerService)(nil)

type customerService struct {
	repo   CustomerRepository
	logger *slog.Logger
}

func NewCustomerService(repo CustomerRepository, logger *slog.Logger) CustomerService {
	if repo == nil {
		panic("customer repository cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerService, using default stderr handler")
	}
	return &customerService{
		repo:   repo,
		logger: logger.With(slog.String("component", "customerService")),
	}
}

func (s *customerService) CreateCustomer(ctx context.Context, params CreateCustomerParams) (*Customer, error) {
	s.logger.InfoContext(ctx, "Attempting to create new customer")

	params.Name = strings.TrimSpace(params.Name)
	params.Mobile = strings.TrimSpace(params.Mobile)
	if params.Name == "" {
		s.logger.WarnContext(ctx, "Validation failed: name is empty")
		return nil, apperrors.NewValidationError("name", "customer name cannot be empty")
	}
	if params.Mobile == "" {
		s.logger.WarnContext(ctx, "Validation failed: mobile is empty", slog.String("name", params.Name))
		return nil, apperrors.NewValidationError("mobile", "customer mobile cannot be empty")
	}
	if params.LoanAmount.IsNegative() {
		s.logger.WarnContext(ctx, "Validation failed: negative loan amount", slog.String("name", params.Name))
		return nil, apperrors.NewValidationError("loanAmount", "loan amount cannot be negative")
	}

	cust := NewCustomer(
		params.Name,
		params.Mobile,
		strings.TrimSpace(params.Village),
		strings.TrimSpace(params.BankName),
		params.LoanAmount,
		params.CustomerDate,
	)

	if err := s.repo.Save(ctx, cust); err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to save new customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save new customer: %w", err)
	}

	s.logger.InfoContext(ctx, "Successfully created new customer", slog.Int64("customerID", cust.CustomerID))
	return cust, nil
}

func (s *customerService) GetCustomer(ctx context.Context, customerID int64) (*Customer, error) {
	cust, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.WarnContext(ctx, customerNotFound, slog.Int64("customerID", customerID))
			return nil, apperrors.ErrNotFound
		}
		s.logger.ErrorContext(ctx, "Repository error finding customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to get customer %d: %w", customerID, err)
	}
	return cust, nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]*Customer, error) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error listing customers", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	s.logger.InfoContext(ctx, "Successfully retrieved customers", slog.Int("count", len(customers)))
	return customers, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID int64) error {
	s.logger.InfoContext(ctx, "Attempting to delete customer", slog.Int64("customerID", customerID))

	if err := s.repo.Delete(ctx, customerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.WarnContext(ctx, customerNotFound, slog.Int64("customerID", customerID))
			return apperrors.ErrNotFound
		}
		s.logger.ErrorContext(ctx, "Repository error deleting customer", slog.Any("error", err))
		return fmt.Errorf("failed to delete customer %d: %w", customerID, err)
	}

	s.logger.InfoContext(ctx, "Successfully deleted customer and owned records", slog.Int64("customerID", customerID))
	return nil
}

// EnsureExists lets other managers verify the referenced customer before
// recording service lines or payments against it.
func (s *customerService) EnsureExists(ctx context.Context, customerID int64) error {
	exists, err := s.repo.Exists(ctx, customerID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error checking customer existence", slog.Any("error", err))
		return fmt.Errorf("failed to check customer %d: %w", customerID, err)
	}
	if !exists {
		s.logger.WarnContext(ctx, customerNotFound, slog.Int64("customerID", customerID))
		return apperrors.ErrNotFound
	}
	return nil
}
