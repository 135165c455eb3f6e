package app

import (
	"context"
	"log/slog"
	"slices"

	"github.com/example/airops/internal/core/validate"
	"github.com/example/airops/internal/logging"
	"github.com/example/airops/internal/ports/primary"
	"github.com/example/airops/internal/ports/secondary"
)

// ReportServiceImpl implements the ReportService interface.
type ReportServiceImpl struct {
	reportRepo secondary.ReportRepository
	logger     *slog.Logger
}

// NewReportService creates a new ReportService with injected dependencies.
func NewReportService(reportRepo secondary.ReportRepository, logger *slog.Logger) *ReportServiceImpl {
	return &ReportServiceImpl{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// RepairsPerPlane counts repairs per plane, most repaired first.
func (s *ReportServiceImpl) RepairsPerPlane(ctx context.Context) (*primary.Table, error) {
	return s.read(ctx, "repairs per plane", s.reportRepo.RepairsPerPlane)
}

// RepairsPerYear counts repairs per calendar year, fewest first.
func (s *ReportServiceImpl) RepairsPerYear(ctx context.Context) (*primary.Table, error) {
	return s.read(ctx, "repairs per year", s.reportRepo.RepairsPerYear)
}

// BrowseTable returns every row of a browsable table.
func (s *ReportServiceImpl) BrowseTable(ctx context.Context, table string) (*primary.Table, error) {
	if !slices.Contains(primary.BrowsableTables, table) {
		return nil, invalid("table", validate.GuardResult{Reason: "is not browsable"})
	}

	return s.read(ctx, "browse "+table, func(ctx context.Context) (*secondary.ResultSet, error) {
		return s.reportRepo.Browse(ctx, table)
	})
}

func (s *ReportServiceImpl) read(ctx context.Context, report string, query func(context.Context) (*secondary.ResultSet, error)) (*primary.Table, error) {
	set, err := query(ctx)
	if err != nil {
		logging.FromContext(ctx, s.logger).Error("report failed", "report", report, "error", err)
		return nil, storeError(err, primary.ErrReadFailed)
	}
	return toTable(set), nil
}

// Ensure ReportServiceImpl implements the interface.
var _ primary.ReportService = (*ReportServiceImpl)(nil)
