package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/events"
	"github.com/carson-networks/finance-tracker/internal/metrics"
	"github.com/carson-networks/finance-tracker/internal/report"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func stored(amount string, on time.Time, ref uuid.UUID) *sqlconfig.Transaction {
	return &sqlconfig.Transaction{
		ID:         newID(),
		Amount:     decimal.RequireFromString(amount),
		OccurredOn: on,
		RefID:      uuid.NullUUID{UUID: ref, Valid: ref != uuid.Nil},
	}
}

func inWindow(start, end time.Time) any {
	return mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.Start != nil && f.End != nil && f.Start.Equal(start) && f.End.Equal(end) && f.Limit == 0
	})
}

func TestGenerateReport_PersistsSummary(t *testing.T) {
	svc, m, changes := newTestService(t)
	owner, food, rent, salary := newID(), newID(), newID(), newID()
	start, end := date(2025, 3, 1), date(2025, 3, 31)
	deleted := newID()

	m.incomes.EXPECT().List(mock.Anything, owner, inWindow(start, end)).Return([]*sqlconfig.Transaction{
		stored("2500.00", date(2025, 3, 1), salary),
		stored("0.10", date(2025, 3, 31), uuid.Nil),
	}, nil)
	m.sources.EXPECT().ResolveNames(mock.Anything, owner, []uuid.UUID{salary}).Return(map[uuid.UUID]string{salary: "Salary"}, nil)
	m.expenses.EXPECT().List(mock.Anything, owner, inWindow(start, end)).Return([]*sqlconfig.Transaction{
		stored("100", date(2025, 3, 2), food),
		stored("50", date(2025, 3, 3), food),
		stored("120", date(2025, 3, 4), rent),
		stored("20", date(2025, 3, 5), deleted),
		stored("20", date(2025, 3, 6), uuid.Nil),
	}, nil)
	m.categories.EXPECT().ResolveNames(mock.Anything, owner, []uuid.UUID{food, rent, deleted}).
		Return(map[uuid.UUID]string{food: "Food", rent: "Rent"}, nil)

	recordID := newID()
	m.reports.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.ReportCreate) bool {
		return c.OwnerID == owner && c.StartDate.Equal(start) && c.EndDate.Equal(end) &&
			c.TotalIncome.Equal(decimal.RequireFromString("2500.10")) &&
			c.TotalExpense.Equal(decimal.NewFromInt(310))
	})).RunAndReturn(func(_ context.Context, c *sqlconfig.ReportCreate) (*sqlconfig.Report, error) {
		return &sqlconfig.Report{
			ID:           recordID,
			OwnerID:      c.OwnerID,
			StartDate:    c.StartDate,
			EndDate:      c.EndDate,
			TotalIncome:  c.TotalIncome,
			TotalExpense: c.TotalExpense,
			Balance:      c.TotalIncome.Sub(c.TotalExpense),
		}, nil
	})

	before := testutil.ToFloat64(metrics.ReportsGenerated)
	record, summary, err := svc.Reports.GenerateReport(context.Background(), owner, start, end)
	require.NoError(t, err)

	top := "Food"
	want := report.Summary{
		Window:       report.Window{Start: start, End: end},
		TotalIncome:  decimal.RequireFromString("2500.10"),
		TotalExpense: decimal.NewFromInt(310),
		Balance:      decimal.RequireFromString("2190.10"),
		CategoryTotals: map[string]decimal.Decimal{
			"Food":               decimal.NewFromInt(150),
			"Rent":               decimal.NewFromInt(120),
			report.Uncategorized: decimal.NewFromInt(40),
		},
		TopCategory:  &top,
		IncomeCount:  2,
		ExpenseCount: 5,
	}
	if diff := cmp.Diff(want, summary, decimalEqual); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, recordID, record.ID)
	assert.True(t, record.Balance.Equal(summary.Balance))
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ReportsGenerated))
	assert.Equal(t, []events.Change{{Kind: events.KindReport, Action: events.ActionCreated, OwnerID: owner, ID: recordID}}, changes.all())
}

func TestGenerateReport_InvalidRange(t *testing.T) {
	svc, _, changes := newTestService(t)

	_, _, err := svc.Reports.GenerateReport(context.Background(), newID(), date(2025, 3, 2), date(2025, 3, 1))
	assert.ErrorIs(t, err, report.ErrInvalidRange)

	_, _, err = svc.Reports.GenerateReport(context.Background(), newID(), time.Time{}, date(2025, 3, 1))
	assert.ErrorIs(t, err, report.ErrInvalidRange)

	assert.Empty(t, changes.all())
}

func TestGenerateReport_StoreFailureRecordsNothing(t *testing.T) {
	svc, m, changes := newTestService(t)
	cause := errors.New("connection reset")

	m.incomes.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).Return(nil, cause)
	m.expenses.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).Return([]*sqlconfig.Transaction{}, nil).Maybe()
	m.categories.EXPECT().ResolveNames(mock.Anything, mock.Anything, mock.Anything).Return(map[uuid.UUID]string{}, nil).Maybe()

	_, _, err := svc.Reports.GenerateReport(context.Background(), newID(), date(2025, 3, 1), date(2025, 3, 31))

	assert.ErrorIs(t, err, report.ErrStoreUnavailable)
	assert.ErrorIs(t, err, cause)
	m.reports.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	assert.Empty(t, changes.all())
}

func TestGenerateReport_ResolveFailure(t *testing.T) {
	svc, m, _ := newTestService(t)
	food := newID()

	m.incomes.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).Return([]*sqlconfig.Transaction{}, nil).Maybe()
	m.sources.EXPECT().ResolveNames(mock.Anything, mock.Anything, mock.Anything).Return(map[uuid.UUID]string{}, nil).Maybe()
	m.expenses.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).
		Return([]*sqlconfig.Transaction{stored("10", date(2025, 3, 2), food)}, nil)
	m.categories.EXPECT().ResolveNames(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	_, _, err := svc.Reports.GenerateReport(context.Background(), newID(), date(2025, 3, 1), date(2025, 3, 31))

	assert.ErrorIs(t, err, report.ErrStoreUnavailable)
}

func TestSummarize_DoesNotPersist(t *testing.T) {
	svc, m, changes := newTestService(t)

	m.incomes.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).Return([]*sqlconfig.Transaction{}, nil)
	m.sources.EXPECT().ResolveNames(mock.Anything, mock.Anything, mock.Anything).Return(map[uuid.UUID]string{}, nil)
	m.expenses.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).Return([]*sqlconfig.Transaction{}, nil)
	m.categories.EXPECT().ResolveNames(mock.Anything, mock.Anything, mock.Anything).Return(map[uuid.UUID]string{}, nil)

	summary, err := svc.Reports.Summarize(context.Background(), newID(), date(2025, 3, 1), date(2025, 3, 1))

	require.NoError(t, err)
	assert.True(t, summary.Balance.IsZero())
	assert.Nil(t, summary.TopCategory)
	assert.Empty(t, summary.CategoryTotals)
	assert.Empty(t, changes.all())
}

func TestTrend_FetchesCoveringWindow(t *testing.T) {
	svc, m, _ := newTestService(t)
	owner := newID()
	now := time.Date(2025, 3, 14, 22, 0, 0, 0, time.UTC)

	m.incomes.EXPECT().List(mock.Anything, owner, inWindow(date(2025, 3, 1), date(2025, 3, 14))).
		Return([]*sqlconfig.Transaction{stored("100", date(2025, 3, 14), uuid.Nil)}, nil)
	m.sources.EXPECT().ResolveNames(mock.Anything, owner, mock.Anything).Return(map[uuid.UUID]string{}, nil)
	m.expenses.EXPECT().List(mock.Anything, owner, inWindow(date(2025, 3, 1), date(2025, 3, 14))).
		Return([]*sqlconfig.Transaction{stored("30", date(2025, 3, 14), uuid.Nil)}, nil)
	m.categories.EXPECT().ResolveNames(mock.Anything, owner, mock.Anything).Return(map[uuid.UUID]string{}, nil)

	points, err := svc.Reports.Trend(context.Background(), owner, 14, report.GranularityDay, now)

	require.NoError(t, err)
	require.Len(t, points, 14)
	assert.Equal(t, "2025-03-01", points[0].PeriodKey)
	assert.Equal(t, "2025-03-14", points[13].PeriodKey)
	assert.Equal(t, "70", points[13].Net.String())
}

func TestTrend_Bounds(t *testing.T) {
	svc, _, _ := newTestService(t)

	points, err := svc.Reports.Trend(context.Background(), newID(), 0, report.GranularityDay, time.Now())
	require.NoError(t, err)
	assert.Empty(t, points)

	_, err = svc.Reports.Trend(context.Background(), newID(), maxTrendBuckets+1, report.GranularityDay, time.Now())
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTransactions_OrderedByDate(t *testing.T) {
	svc, m, _ := newTestService(t)
	salary := newID()

	m.incomes.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).
		Return([]*sqlconfig.Transaction{stored("5", date(2025, 3, 9), salary), stored("7", date(2025, 3, 2), salary)}, nil)
	m.sources.EXPECT().ResolveNames(mock.Anything, mock.Anything, []uuid.UUID{salary}).Return(map[uuid.UUID]string{salary: "Salary"}, nil)
	m.expenses.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).
		Return([]*sqlconfig.Transaction{stored("3", date(2025, 3, 2), uuid.Nil)}, nil)
	m.categories.EXPECT().ResolveNames(mock.Anything, mock.Anything, mock.Anything).Return(map[uuid.UUID]string{}, nil)

	txs, err := svc.Reports.Transactions(context.Background(), newID(), date(2025, 3, 1), date(2025, 3, 31))

	require.NoError(t, err)
	require.Len(t, txs, 3)
	assert.Equal(t, report.KindIncome, txs[0].Kind)
	assert.Equal(t, "Salary", txs[0].Category)
	assert.Equal(t, report.KindExpense, txs[1].Kind)
	assert.Equal(t, date(2025, 3, 9), txs[2].OccurredOn)
}

func TestListReports(t *testing.T) {
	svc, m, _ := newTestService(t)
	owner := newID()

	m.reports.EXPECT().List(mock.Anything, owner, &sqlconfig.ReportFilter{Limit: 1}).Return([]*sqlconfig.Report{
		{ID: newID(), StartDate: date(2025, 3, 1), EndDate: date(2025, 3, 31)},
		{ID: newID()},
	}, nil)

	records, next, err := svc.Reports.ListReports(context.Background(), owner, &Cursor{Limit: 1})

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, date(2025, 3, 31), records[0].Window.End)
	assert.Equal(t, &Cursor{Position: 1, Limit: 1}, next)
}
