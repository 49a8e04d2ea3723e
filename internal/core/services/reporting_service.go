package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/bilalcinal/WhereDoUSpend/internal/core/domain"
	portsrepo "github.com/bilalcinal/WhereDoUSpend/internal/core/ports/repositories"
	portssvc "github.com/bilalcinal/WhereDoUSpend/internal/core/ports/services"
	"github.com/bilalcinal/WhereDoUSpend/internal/platform/cache"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	reportCache   cache.ReportCache
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportCache enables caching of monthly summaries.
func WithReportCache(c cache.ReportCache) ReportingServiceOption {
	return func(s *reportingService) {
		s.reportCache = c
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.ReportingRepository, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{reportingRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// MonthlySummary totals the user's transactions by category and type for a
// month. Results are cached per user and month when a cache is configured;
// a cache failure falls through to the database.
func (s *reportingService) MonthlySummary(ctx context.Context, userID string, year, month int) ([]domain.SummaryRow, error) {
	cacheKey := fmt.Sprintf("report:summary:%s:%04d-%02d", userID, year, month)
	if s.reportCache != nil {
		if payload, ok, err := s.reportCache.Get(ctx, cacheKey); err == nil && ok {
			var rows []domain.SummaryRow
			if err := json.Unmarshal(payload, &rows); err == nil {
				s.LogDebug(ctx, "Monthly summary served from cache", slog.String("key", cacheKey))
				return rows, nil
			}
		}
	}

	rows, err := s.reportingRepo.GetMonthlySummary(ctx, userID, year, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve monthly summary",
			slog.Int("year", year),
			slog.Int("month", month))
		return nil, fmt.Errorf("failed to retrieve monthly summary: %w", err)
	}

	if s.reportCache != nil {
		if payload, err := json.Marshal(rows); err == nil {
			if err := s.reportCache.Set(ctx, cacheKey, payload); err != nil {
				s.LogDebug(ctx, "Failed to cache monthly summary", slog.String("error", err.Error()))
			}
		}
	}

	return rows, nil
}

// Cashflow computes net income minus expense per day or per month over a range
func (s *reportingService) Cashflow(ctx context.Context, userID string, from, to time.Time, byMonth bool) ([]domain.CashflowPoint, error) {
	points, err := s.reportingRepo.GetCashflow(ctx, userID, from, to, byMonth)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve cashflow",
			slog.String("from", from.Format(time.RFC3339)),
			slog.String("to", to.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve cashflow: %w", err)
	}
	return points, nil
}

// AccountTotals computes the net amount per account over a range
func (s *reportingService) AccountTotals(ctx context.Context, userID string, from, to time.Time) ([]domain.AccountTotal, error) {
	totals, err := s.reportingRepo.GetAccountTotals(ctx, userID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve account totals",
			slog.String("from", from.Format(time.RFC3339)),
			slog.String("to", to.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve account totals: %w", err)
	}
	return totals, nil
}

// BudgetVsActual compares each budgeted category's budget to its expense total for a month
func (s *reportingService) BudgetVsActual(ctx context.Context, userID string, year, month int) ([]domain.BudgetVsActualRow, error) {
	rows, err := s.reportingRepo.GetBudgetVsActual(ctx, userID, year, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve budget vs actual",
			slog.Int("year", year),
			slog.Int("month", month))
		return nil, fmt.Errorf("failed to retrieve budget vs actual: %w", err)
	}
	return rows, nil
}
