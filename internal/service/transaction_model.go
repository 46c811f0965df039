package service

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/report"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// Transaction is an income or an expense. RefID is the income's source or the
// expense's category and RefName its resolved name, empty when unresolved.
type Transaction struct {
	ID          uuid.UUID
	Kind        report.Kind
	Amount      decimal.Decimal
	OccurredOn  time.Time
	RefID       uuid.NullUUID
	RefName     string
	AccountID   uuid.NullUUID
	Description string
	CreatedAt   time.Time
}

// TransactionInput is what a caller supplies to create an income or expense.
type TransactionInput struct {
	Amount      decimal.Decimal
	OccurredOn  time.Time
	RefID       uuid.UUID
	AccountID   uuid.NullUUID
	Description string
}

// TransactionUpdate holds the fields to change. Nil fields are left alone.
type TransactionUpdate struct {
	Amount      *decimal.Decimal
	OccurredOn  *time.Time
	RefID       *uuid.UUID
	AccountID   *uuid.NullUUID
	Description *string
}

// TransactionQuery narrows a transaction listing. Start and End are inclusive days.
type TransactionQuery struct {
	Start *time.Time
	End   *time.Time
	RefID *uuid.UUID
}

func transactionFromStorage(kind report.Kind, row *sqlconfig.Transaction, names map[uuid.UUID]string) Transaction {
	tx := Transaction{
		ID:          row.ID,
		Kind:        kind,
		Amount:      row.Amount,
		OccurredOn:  row.OccurredOn,
		RefID:       row.RefID,
		AccountID:   row.AccountID,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
	}
	if row.RefID.Valid {
		tx.RefName = names[row.RefID.UUID]
	}
	return tx
}

// toReport is the aggregation view of a stored transaction.
func toReport(kind report.Kind, row *sqlconfig.Transaction, names map[uuid.UUID]string) report.Transaction {
	tx := report.Transaction{
		ID:          row.ID,
		Kind:        kind,
		Amount:      row.Amount,
		OccurredOn:  row.OccurredOn,
		Description: row.Description,
	}
	if row.RefID.Valid {
		tx.Category = names[row.RefID.UUID]
	}
	return tx
}

func (u TransactionUpdate) toStorage() sqlconfig.TransactionUpdate {
	update := sqlconfig.TransactionUpdate{
		Amount:      omit.FromPtr(u.Amount),
		RefID:       omit.FromPtr(u.RefID),
		AccountID:   omit.FromPtr(u.AccountID),
		Description: omit.FromPtr(u.Description),
	}
	if u.OccurredOn != nil {
		update.OccurredOn = omit.From(report.Day(*u.OccurredOn))
	}
	return update
}

// refIDs returns the distinct non-null references of rows.
func refIDs(rows []*sqlconfig.Transaction) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(rows))
	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		if !row.RefID.Valid {
			continue
		}
		if _, ok := seen[row.RefID.UUID]; ok {
			continue
		}
		seen[row.RefID.UUID] = struct{}{}
		ids = append(ids, row.RefID.UUID)
	}
	return ids
}
