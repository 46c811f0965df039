package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/finance-tracker/internal/events"
	"github.com/carson-networks/finance-tracker/internal/metrics"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/report"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// maxTrendBuckets bounds the window a single trend request may fetch.
const maxTrendBuckets = 366

// ReportRecord is a persisted report snapshot.
type ReportRecord struct {
	ID           uuid.UUID
	Window       report.Window
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
	CreatedAt    time.Time
}

// ReportService aggregates an owner's incomes and expenses.
type ReportService struct {
	storage *storage.Storage
	op      processor
	changes notifier
}

func NewReportService(store *storage.Storage, op processor, changes notifier) *ReportService {
	return &ReportService{storage: store, op: op, changes: changes}
}

// GenerateReport aggregates the window and records one report snapshot of it.
// Nothing is recorded when the fetch or the aggregation input is incomplete.
func (s *ReportService) GenerateReport(ctx context.Context, ownerID uuid.UUID, start, end time.Time) (*ReportRecord, report.Summary, error) {
	summary, err := s.Summarize(ctx, ownerID, start, end)
	if err != nil {
		return nil, report.Summary{}, err
	}

	action := &actions.RecordReport{OwnerID: ownerID, Summary: summary}
	if err := s.op.Process(ctx, action); err != nil {
		return nil, report.Summary{}, err
	}

	metrics.ReportsGenerated.Inc()
	s.changes.Notify(events.KindReport, events.ActionCreated, ownerID, action.Recorded.ID)

	record := reportFromStorage(action.Recorded)
	return &record, summary, nil
}

// Summarize aggregates the window without recording anything.
func (s *ReportService) Summarize(ctx context.Context, ownerID uuid.UUID, start, end time.Time) (report.Summary, error) {
	window, err := report.NewWindow(start, end)
	if err != nil {
		return report.Summary{}, err
	}

	incomes, expenses, err := s.fetch(ctx, ownerID, window)
	if err != nil {
		return report.Summary{}, err
	}

	return report.Aggregate(incomes, expenses, window), nil
}

// Transactions returns every income and expense in the window, oldest first,
// with source and category names resolved.
func (s *ReportService) Transactions(ctx context.Context, ownerID uuid.UUID, start, end time.Time) ([]report.Transaction, error) {
	window, err := report.NewWindow(start, end)
	if err != nil {
		return nil, err
	}

	incomes, expenses, err := s.fetch(ctx, ownerID, window)
	if err != nil {
		return nil, err
	}

	txs := append(incomes, expenses...)
	sort.SliceStable(txs, func(i, j int) bool {
		if !txs[i].OccurredOn.Equal(txs[j].OccurredOn) {
			return txs[i].OccurredOn.Before(txs[j].OccurredOn)
		}
		return txs[i].Kind < txs[j].Kind
	})
	return txs, nil
}

// Trend returns bucketCount net points ending with the bucket containing now.
func (s *ReportService) Trend(ctx context.Context, ownerID uuid.UUID, bucketCount int, granularity report.Granularity, now time.Time) ([]report.TrendPoint, error) {
	if bucketCount <= 0 {
		return []report.TrendPoint{}, nil
	}
	if bucketCount > maxTrendBuckets {
		return nil, fmt.Errorf("%w: at most %d buckets", ErrInvalidInput, maxTrendBuckets)
	}

	window := report.TrendWindow(bucketCount, granularity, now)
	incomes, expenses, err := s.fetch(ctx, ownerID, window)
	if err != nil {
		return nil, err
	}

	return report.BuildTrend(append(incomes, expenses...), bucketCount, granularity, now), nil
}

func (s *ReportService) ListReports(ctx context.Context, ownerID uuid.UUID, cursor *Cursor) ([]ReportRecord, *Cursor, error) {
	limit, offset := cursor.bounds()

	rows, err := s.storage.Reports.List(ctx, ownerID, &sqlconfig.ReportFilter{Limit: limit, Offset: offset})
	if err != nil {
		return nil, nil, err
	}

	rows, next := page(rows, limit, offset)
	records := make([]ReportRecord, len(rows))
	for i, row := range rows {
		records[i] = reportFromStorage(row)
	}
	return records, next, nil
}

func (s *ReportService) GetReport(ctx context.Context, ownerID, id uuid.UUID) (*ReportRecord, error) {
	row, err := s.storage.Reports.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	record := reportFromStorage(row)
	return &record, nil
}

// fetch loads the owner's incomes and expenses inside the window concurrently,
// each side resolving its reference names in one query. Any failure fails the
// whole fetch.
func (s *ReportService) fetch(ctx context.Context, ownerID uuid.UUID, window report.Window) (incomes, expenses []report.Transaction, err error) {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		incomes, err = s.fetchKind(gctx, ownerID, window, report.KindIncome, s.storage.Incomes, s.storage.Sources)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = s.fetchKind(gctx, ownerID, window, report.KindExpense, s.storage.Expenses, s.storage.Categories)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", report.ErrStoreUnavailable, err)
	}
	return incomes, expenses, nil
}

func (s *ReportService) fetchKind(ctx context.Context, ownerID uuid.UUID, window report.Window, kind report.Kind, table sqlconfig.ITransactionTable, refs sqlconfig.INamedTable) ([]report.Transaction, error) {
	rows, err := table.List(ctx, ownerID, &sqlconfig.TransactionFilter{Start: &window.Start, End: &window.End})
	if err != nil {
		return nil, fmt.Errorf("list %ss: %w", kind, err)
	}

	names, err := refs.ResolveNames(ctx, ownerID, refIDs(rows))
	if err != nil {
		return nil, fmt.Errorf("resolve %s names: %w", kind, err)
	}

	txs := make([]report.Transaction, len(rows))
	for i, row := range rows {
		txs[i] = toReport(kind, row, names)
	}
	return txs, nil
}

func reportFromStorage(row *sqlconfig.Report) ReportRecord {
	return ReportRecord{
		ID:           row.ID,
		Window:       report.Window{Start: report.Day(row.StartDate), End: report.Day(row.EndDate)},
		TotalIncome:  row.TotalIncome,
		TotalExpense: row.TotalExpense,
		Balance:      row.Balance,
		CreatedAt:    row.CreatedAt,
	}
}
