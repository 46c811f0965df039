package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/report"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
	"github.com/gofrs/uuid/v5"
)

// RecordReport persists the snapshot of a summary. Reports are append-only:
// every call inserts a new row.
type RecordReport struct {
	OwnerID uuid.UUID
	Summary report.Summary

	Recorded *sqlconfig.Report
}

func (r *RecordReport) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Reports.Insert(ctx, &sqlconfig.ReportCreate{
		OwnerID:      r.OwnerID,
		StartDate:    r.Summary.Window.Start,
		EndDate:      r.Summary.Window.End,
		TotalIncome:  r.Summary.TotalIncome,
		TotalExpense: r.Summary.TotalExpense,
	})
	if err != nil {
		return err
	}

	r.Recorded = row
	return nil
}
