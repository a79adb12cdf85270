package catalog

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

type CatalogService interface {
	ListActive(ctx context.Context) ([]Entry, error)
	ListAll(ctx context.Context) ([]Entry, error)
	AddEntry(ctx context.Context, serviceName string, defaultCharge decimal.Decimal) (*Entry, error)
	UpdateEntry(ctx context.Context, entryID int64, defaultCharge decimal.Decimal, active bool) error
}

var _ CatalogService = (*catalogService)(nil)

type catalogService struct {
	repo   CatalogRepository
	logger *slog.Logger
}

func NewCatalogService(repo CatalogRepository, logger *slog.Logger) CatalogService {
	if repo == nil {
		panic("catalog repository cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCatalogService, using default stderr handler")
	}
	return &catalogService{
		repo:   repo,
		logger: logger.With(slog.String("component", "catalogService")),
	}
}

func (s *catalogService) ListActive(ctx context.Context) ([]Entry, error) {
	entries, err := s.repo.FindActive(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error listing active catalog entries", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list active catalog entries: %w", err)
	}
	return entries, nil
}

func (s *catalogService) ListAll(ctx context.Context) ([]Entry, error) {
	entries, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error listing catalog entries", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list catalog entries: %w", err)
	}
	return entries, nil
}

func (s *catalogService) AddEntry(ctx context.Context, serviceName string, defaultCharge decimal.Decimal) (*Entry, error) {
	s.logger.InfoContext(ctx, "Attempting to add catalog entry")

	serviceName = strings.TrimSpace(serviceName)
	if serviceName == "" {
		s.logger.WarnContext(ctx, "Validation failed: service name is empty")
		return nil, apperrors.NewValidationError("serviceName", "service name cannot be empty")
	}
	if defaultCharge.IsNegative() {
		s.logger.WarnContext(ctx, "Validation failed: negative default charge", slog.String("serviceName", serviceName))
		return nil, apperrors.NewValidationError("defaultCharge", "default charge cannot be negative")
	}

	entry := &Entry{
		ServiceName:   serviceName,
		DefaultCharge: defaultCharge,
		Active:        true,
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			s.logger.WarnContext(ctx, "Catalog entry already exists", slog.String("serviceName", serviceName))
			return nil, apperrors.ErrAlreadyExists
		}
		s.logger.ErrorContext(ctx, "Repository failed to insert catalog entry", slog.Any("error", err))
		return nil, fmt.Errorf("failed to add catalog entry %q: %w", serviceName, err)
	}

	s.logger.InfoContext(ctx, "Successfully added catalog entry",
		slog.String("serviceName", serviceName), slog.Int64("entryID", entry.EntryID))
	return entry, nil
}

func (s *catalogService) UpdateEntry(ctx context.Context, entryID int64, defaultCharge decimal.Decimal, active bool) error {
	s.logger.InfoContext(ctx, "Attempting to update catalog entry", slog.Int64("entryID", entryID))

	if defaultCharge.IsNegative() {
		s.logger.WarnContext(ctx, "Validation failed: negative default charge", slog.Int64("entryID", entryID))
		return apperrors.NewValidationError("defaultCharge", "default charge cannot be negative")
	}

	if err := s.repo.Update(ctx, entryID, defaultCharge, active); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.WarnContext(ctx, "Catalog entry not found by repository", slog.Int64("entryID", entryID))
			return apperrors.ErrNotFound
		}
		s.logger.ErrorContext(ctx, "Repository error updating catalog entry", slog.Any("error", err))
		return fmt.Errorf("failed to update catalog entry %d: %w", entryID, err)
	}

	return nil
}
