package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"consultancy-ledger/internal/pkg/apperrors"

	"github.com/shopspring/decimal"
)

// ServiceEntryService is the manager for recorded service lines.
type ServiceEntryService interface {
	AddServiceLine(ctx context.Context, customerID int64, name string, charge decimal.Decimal) (*ServiceLine, error)
	ListServiceLines(ctx context.Context, customerID int64) ([]ServiceLine, error)
	RemoveServiceLine(ctx context.Context, lineID int64) error
	RemoveServiceLines(ctx context.Context, customerID int64, lineIDs []int64) error
}

var _ ServiceEntryService = (*serviceEntryService)(nil)

type serviceEntryService struct {
	repo      LedgerRepository
	customers CustomerDirectory
	logger    *slog.Logger
}

func NewServiceEntryService(repo LedgerRepository, customers CustomerDirectory, logger *slog.Logger) ServiceEntryService {
	if repo == nil {
		panic("ledger repository cannot be nil")
	}
	if customers == nil {
		panic("customer directory cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewServiceEntryService, using default stderr handler")
	}
	return &serviceEntryService{
		repo:      repo,
		customers: customers,
		logger:    logger.With(slog.String("component", "serviceEntryService")),
	}
}

func (s *serviceEntryService) AddServiceLine(ctx context.Context, customerID int64, name string, charge decimal.Decimal) (*ServiceLine, error) {
	s.logger.InfoContext(ctx, "Attempting to add service line", slog.Int64("customerID", customerID))

	name = strings.TrimSpace(name)
	if name == "" {
		s.logger.WarnContext(ctx, "Validation failed: service name is empty")
		return nil, apperrors.NewValidationError("serviceName", "service name cannot be empty")
	}
	if charge.IsNegative() {
		s.logger.WarnContext(ctx, "Validation failed: negative charge", slog.String("serviceName", name))
		return nil, apperrors.NewValidationError("charge", "charge cannot be negative")
	}

	if err := s.customers.EnsureExists(ctx, customerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.WarnContext(ctx, "Referenced customer does not exist", slog.Int64("customerID", customerID))
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to verify customer %d: %w", customerID, err)
	}

	line := &ServiceLine{
		CustomerID: customerID,
		Name:       name,
		Charge:     charge,
	}
	if err := s.repo.AddServiceLine(ctx, line); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Customer vanished between the check and the insert.
			return nil, apperrors.ErrNotFound
		}
		s.logger.ErrorContext(ctx, "Repository failed to add service line", slog.Any("error", err))
		return nil, fmt.Errorf("failed to add service line for customer %d: %w", customerID, err)
	}

	s.logger.InfoContext(ctx, "Successfully added service line",
		slog.Int64("customerID", customerID), slog.Int64("lineID", line.LineID))
	return line, nil
}

func (s *serviceEntryService) ListServiceLines(ctx context.Context, customerID int64) ([]ServiceLine, error) {
	if err := s.customers.EnsureExists(ctx, customerID); err != nil {
		return nil, err
	}
	lines, err := s.repo.FindServiceLines(ctx, customerID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error listing service lines", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list service lines for customer %d: %w", customerID, err)
	}
	return lines, nil
}

func (s *serviceEntryService) RemoveServiceLine(ctx context.Context, lineID int64) error {
	s.logger.InfoContext(ctx, "Attempting to remove service line", slog.Int64("lineID", lineID))

	if err := s.repo.DeleteServiceLine(ctx, lineID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.WarnContext(ctx, "Service line not found by repository", slog.Int64("lineID", lineID))
			return apperrors.ErrNotFound
		}
		s.logger.ErrorContext(ctx, "Repository error removing service line", slog.Any("error", err))
		return fmt.Errorf("failed to remove service line %d: %w", lineID, err)
	}
	return nil
}

func (s *serviceEntryService) RemoveServiceLines(ctx context.Context, customerID int64, lineIDs []int64) error {
	s.logger.InfoContext(ctx, "Attempting to remove service lines",
		slog.Int64("customerID", customerID), slog.Int("count", len(lineIDs)))

	if len(lineIDs) == 0 {
		return apperrors.NewValidationError("lineIds", "at least one service line id is required")
	}
	if err := s.customers.EnsureExists(ctx, customerID); err != nil {
		return err
	}

	removed, err := s.repo.DeleteServiceLines(ctx, customerID, lineIDs)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error removing service lines", slog.Any("error", err))
		return fmt.Errorf("failed to remove service lines for customer %d: %w", customerID, err)
	}

	s.logger.InfoContext(ctx, "Removed service lines",
		slog.Int64("customerID", customerID), slog.Int64("removed", removed))
	return nil
}
