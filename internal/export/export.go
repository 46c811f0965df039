// Package export renders an owner's incomes and expenses as CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/carson-networks/finance-tracker/internal/report"
)

// Header is the first CSV row.
var Header = []string{"type", "date", "amount", "category/source", "description"}

// FileName is the download name of a report window's CSV.
func FileName(window report.Window) string {
	return fmt.Sprintf("report_%s_to_%s.csv", window.StartString(), window.EndString())
}

// WriteCSV writes the header and one row per transaction in the given order.
// Unresolved sources and categories are written as an empty cell.
func WriteCSV(w io.Writer, txs []report.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, tx := range txs {
		row := []string{
			tx.Kind.String(),
			tx.OccurredOn.UTC().Format("2006-01-02"),
			tx.Amount.String(),
			tx.Category,
			tx.Description,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write %s %s: %w", tx.Kind, tx.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
