// Package reports serves report generation, the recorded report log and the
// read-only views computed from a date range.
package reports

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/report"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// Summary is the aggregation of a window as the client sees it. Amounts are
// decimal strings.
type Summary struct {
	StartDate      string            `json:"start_date" doc:"Inclusive first day"`
	EndDate        string            `json:"end_date" doc:"Inclusive last day"`
	TotalIncome    string            `json:"total_income"`
	TotalExpense   string            `json:"total_expense"`
	Balance        string            `json:"balance" doc:"total_income minus total_expense"`
	TopCategory    *string           `json:"top_category" doc:"Category with the largest expense total, null when there are no expenses"`
	CategoryTotals map[string]string `json:"category_totals" doc:"Expense total per category name"`
	IncomesCount   int               `json:"incomes_count"`
	ExpensesCount  int               `json:"expenses_count"`
}

// Record is a persisted report snapshot.
type Record struct {
	ID           string `json:"id" doc:"Report UUID"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	TotalIncome  string `json:"total_income"`
	TotalExpense string `json:"total_expense"`
	Balance      string `json:"balance"`
	CreatedAt    string `json:"created_at" doc:"RFC3339 creation time"`
}

// WindowInput is the inclusive date range query of the read-only report endpoints.
type WindowInput struct {
	StartDate string `query:"start_date" doc:"Inclusive first day (YYYY-MM-DD)"`
	EndDate   string `query:"end_date" doc:"Inclusive last day (YYYY-MM-DD)"`
}

func (in WindowInput) window() (report.Window, error) {
	return report.ParseWindow(in.StartDate, in.EndDate)
}

type reportService interface {
	GenerateReport(ctx context.Context, ownerID uuid.UUID, start, end time.Time) (*service.ReportRecord, report.Summary, error)
	Summarize(ctx context.Context, ownerID uuid.UUID, start, end time.Time) (report.Summary, error)
	Transactions(ctx context.Context, ownerID uuid.UUID, start, end time.Time) ([]report.Transaction, error)
	Trend(ctx context.Context, ownerID uuid.UUID, bucketCount int, granularity report.Granularity, now time.Time) ([]report.TrendPoint, error)
	ListReports(ctx context.Context, ownerID uuid.UUID, cursor *service.Cursor) ([]service.ReportRecord, *service.Cursor, error)
	GetReport(ctx context.Context, ownerID, id uuid.UUID) (*service.ReportRecord, error)
}

func summaryFromReport(s report.Summary) Summary {
	totals := make(map[string]string, len(s.CategoryTotals))
	for name, total := range s.CategoryTotals {
		totals[name] = total.String()
	}
	return Summary{
		StartDate:      s.Window.StartString(),
		EndDate:        s.Window.EndString(),
		TotalIncome:    s.TotalIncome.String(),
		TotalExpense:   s.TotalExpense.String(),
		Balance:        s.Balance.String(),
		TopCategory:    s.TopCategory,
		CategoryTotals: totals,
		IncomesCount:   s.IncomeCount,
		ExpensesCount:  s.ExpenseCount,
	}
}

func recordFromService(r service.ReportRecord) Record {
	return Record{
		ID:           r.ID.String(),
		StartDate:    r.Window.StartString(),
		EndDate:      r.Window.EndString(),
		TotalIncome:  r.TotalIncome.String(),
		TotalExpense: r.TotalExpense.String(),
		Balance:      r.Balance.String(),
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
	}
}
