package reports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/report"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type mockReportService struct {
	mock.Mock
}

func (m *mockReportService) GenerateReport(ctx context.Context, ownerID uuid.UUID, start, end time.Time) (*service.ReportRecord, report.Summary, error) {
	args := m.Called(ctx, ownerID, start, end)
	record, _ := args.Get(0).(*service.ReportRecord)
	summary, _ := args.Get(1).(report.Summary)
	return record, summary, args.Error(2)
}

func (m *mockReportService) Summarize(ctx context.Context, ownerID uuid.UUID, start, end time.Time) (report.Summary, error) {
	args := m.Called(ctx, ownerID, start, end)
	summary, _ := args.Get(0).(report.Summary)
	return summary, args.Error(1)
}

func (m *mockReportService) Transactions(ctx context.Context, ownerID uuid.UUID, start, end time.Time) ([]report.Transaction, error) {
	args := m.Called(ctx, ownerID, start, end)
	txs, _ := args.Get(0).([]report.Transaction)
	return txs, args.Error(1)
}

func (m *mockReportService) Trend(ctx context.Context, ownerID uuid.UUID, bucketCount int, granularity report.Granularity, now time.Time) ([]report.TrendPoint, error) {
	args := m.Called(ctx, ownerID, bucketCount, granularity, now)
	points, _ := args.Get(0).([]report.TrendPoint)
	return points, args.Error(1)
}

func (m *mockReportService) ListReports(ctx context.Context, ownerID uuid.UUID, cursor *service.Cursor) ([]service.ReportRecord, *service.Cursor, error) {
	args := m.Called(ctx, ownerID, cursor)
	records, _ := args.Get(0).([]service.ReportRecord)
	next, _ := args.Get(1).(*service.Cursor)
	return records, next, args.Error(2)
}

func (m *mockReportService) GetReport(ctx context.Context, ownerID, id uuid.UUID) (*service.ReportRecord, error) {
	args := m.Called(ctx, ownerID, id)
	record, _ := args.Get(0).(*service.ReportRecord)
	return record, args.Error(1)
}

var (
	owner = uuid.Must(uuid.NewV4())
	now   = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
)

func newTestAPI(t *testing.T, svc *mockReportService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, auth.WithIdentity(ctx.Context(), auth.Identity{UserID: owner})))
	})
	NewGenerateReportHandler(svc).Register(api)
	NewChartHandler(svc).Register(api)
	NewExportHandler(svc).Register(api)
	trend := NewTrendHandler(svc)
	trend.Now = func() time.Time { return now }
	trend.Register(api)
	NewRecordsHandler(svc).Register(api)
	return api
}

func march() report.Window {
	return report.Window{
		Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
	}
}

func marchSummary() report.Summary {
	food := "Food"
	return report.Summary{
		Window:       march(),
		TotalIncome:  decimal.RequireFromString("1000.00"),
		TotalExpense: decimal.RequireFromString("350.50"),
		Balance:      decimal.RequireFromString("649.50"),
		CategoryTotals: map[string]decimal.Decimal{
			"Food":          decimal.RequireFromString("300.50"),
			"Uncategorized": decimal.RequireFromString("50"),
		},
		TopCategory:  &food,
		IncomeCount:  1,
		ExpenseCount: 3,
	}
}

// -- summary JSON --

func TestSummaryFromReport(t *testing.T) {
	got := summaryFromReport(marchSummary())

	food := "Food"
	want := Summary{
		StartDate:      "2025-03-01",
		EndDate:        "2025-03-31",
		TotalIncome:    "1000",
		TotalExpense:   "350.5",
		Balance:        "649.5",
		TopCategory:    &food,
		CategoryTotals: map[string]string{"Food": "300.5", "Uncategorized": "50"},
		IncomesCount:   1,
		ExpensesCount:  3,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestSummaryJSON_NullTopCategory(t *testing.T) {
	raw, err := json.Marshal(summaryFromReport(report.Summary{Window: march(), CategoryTotals: map[string]decimal.Decimal{}}))
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Contains(t, fields, "top_category")
	assert.Nil(t, fields["top_category"])
	assert.Equal(t, "0", fields["balance"])
	assert.Equal(t, map[string]any{}, fields["category_totals"])
	for _, key := range []string{"total_income", "total_expense", "incomes_count", "expenses_count"} {
		assert.Contains(t, fields, key)
	}
}

// -- generate --

func TestHTTP_GenerateReport(t *testing.T) {
	svc := new(mockReportService)
	id := uuid.Must(uuid.NewV4())
	w := march()
	svc.On("GenerateReport", mock.Anything, owner, w.Start, w.End).Return(&service.ReportRecord{
		ID:           id,
		Window:       w,
		TotalIncome:  decimal.RequireFromString("1000.00"),
		TotalExpense: decimal.RequireFromString("350.50"),
		Balance:      decimal.RequireFromString("649.50"),
		CreatedAt:    now,
	}, marchSummary(), nil)

	resp := newTestAPI(t, svc).Post("/v1/reports/generate", GenerateReportBody{StartDate: "2025-03-01", EndDate: "2025-03-31"})

	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	var body GenerateReportResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, id.String(), body.Report.ID)
	assert.Equal(t, "649.5", body.Report.Balance)
	assert.Equal(t, "Food", *body.Summary.TopCategory)
	assert.Equal(t, 3, body.Summary.ExpensesCount)
}

func TestHTTP_GenerateReport_InvalidRange(t *testing.T) {
	cases := []GenerateReportBody{
		{StartDate: "2025-04-01", EndDate: "2025-03-01"},
		{EndDate: "2025-03-01"},
		{StartDate: "01/03/2025", EndDate: "2025-03-31"},
	}
	for i, body := range cases {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			svc := new(mockReportService)

			resp := newTestAPI(t, svc).Post("/v1/reports/generate", body)

			assert.Equal(t, http.StatusBadRequest, resp.Code)
			svc.AssertNotCalled(t, "GenerateReport", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestHTTP_GenerateReport_StoreUnavailable(t *testing.T) {
	svc := new(mockReportService)
	svc.On("GenerateReport", mock.Anything, owner, mock.Anything, mock.Anything).
		Return(nil, report.Summary{}, fmt.Errorf("%w: %w", report.ErrStoreUnavailable, errors.New("connection reset")))

	resp := newTestAPI(t, svc).Post("/v1/reports/generate", GenerateReportBody{StartDate: "2025-03-01", EndDate: "2025-03-31"})

	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

// -- chart / trend / export --

func TestHTTP_Chart(t *testing.T) {
	svc := new(mockReportService)
	svc.On("Summarize", mock.Anything, owner, march().Start, march().End).Return(marchSummary(), nil)

	resp := newTestAPI(t, svc).Get("/v1/reports/chart?start_date=2025-03-01&end_date=2025-03-31")

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body ChartResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []ChartSlice{{Name: "Food", Total: "300.5"}, {Name: "Uncategorized", Total: "50"}}, body.Categories)
	svc.AssertNotCalled(t, "GenerateReport", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHTTP_Trend(t *testing.T) {
	svc := new(mockReportService)
	svc.On("Trend", mock.Anything, owner, 3, report.GranularityMonth, now).Return([]report.TrendPoint{
		{PeriodKey: "2025-01", Net: decimal.Zero},
		{PeriodKey: "2025-02", Net: decimal.NewFromInt(-20)},
		{PeriodKey: "2025-03", Net: decimal.RequireFromString("100.25")},
	}, nil)

	resp := newTestAPI(t, svc).Get("/v1/reports/trend?buckets=3&granularity=month")

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body TrendResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	want := TrendResponse{Granularity: "month", Points: []TrendPoint{
		{Period: "2025-01", Net: "0"},
		{Period: "2025-02", Net: "-20"},
		{Period: "2025-03", Net: "100.25"},
	}}
	if diff := cmp.Diff(want, body); diff != "" {
		t.Errorf("trend mismatch (-want +got):\n%s", diff)
	}
}

func TestHTTP_Trend_DefaultsToFourteenDays(t *testing.T) {
	svc := new(mockReportService)
	svc.On("Trend", mock.Anything, owner, 14, report.GranularityDay, now).Return([]report.TrendPoint{}, nil)

	resp := newTestAPI(t, svc).Get("/v1/reports/trend")

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body TrendResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "day", body.Granularity)
	svc.AssertExpectations(t)
}

func TestHTTP_Trend_UnknownGranularity(t *testing.T) {
	svc := new(mockReportService)

	resp := newTestAPI(t, svc).Get("/v1/reports/trend?granularity=week")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestHTTP_Export(t *testing.T) {
	svc := new(mockReportService)
	svc.On("Transactions", mock.Anything, owner, march().Start, march().End).Return([]report.Transaction{
		{Kind: report.KindIncome, Amount: decimal.NewFromInt(1000), OccurredOn: march().Start, Category: "Salary"},
	}, nil)

	resp := newTestAPI(t, svc).Get("/v1/reports/export?start_date=2025-03-01&end_date=2025-03-31")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header().Get("Content-Type"))
	assert.Contains(t, resp.Header().Get("Content-Disposition"), "report_2025-03-01_to_2025-03-31.csv")
	assert.Equal(t, "type,date,amount,category/source,description\nincome,2025-03-01,1000,Salary,\n", resp.Body.String())
}

// -- records --

func TestHTTP_ListReports(t *testing.T) {
	svc := new(mockReportService)
	svc.On("ListReports", mock.Anything, owner, (*service.Cursor)(nil)).
		Return([]service.ReportRecord{{ID: uuid.Must(uuid.NewV4()), Window: march(), CreatedAt: now}}, nil, nil)

	resp := newTestAPI(t, svc).Get("/v1/reports")

	require.Equal(t, http.StatusOK, resp.Code)
	var body ListReportsBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Reports, 1)
	assert.Equal(t, "2025-03-31", body.Reports[0].EndDate)
}

func TestHTTP_GetReport_OtherOwner(t *testing.T) {
	svc := new(mockReportService)
	id := uuid.Must(uuid.NewV4())
	svc.On("GetReport", mock.Anything, owner, id).Return(nil, service.ErrNotFound)

	resp := newTestAPI(t, svc).Get("/v1/reports/" + id.String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
