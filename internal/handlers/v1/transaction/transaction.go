// Package transaction serves incomes and expenses. Both share one handler set;
// the Resource decides the path and whether the reference is a source or a
// category.
package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-tracker/internal/report"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// Resource describes one of the two transaction collections.
type Resource struct {
	Kind     report.Kind
	Path     string
	Singular string
	Plural   string
	Tag      string
	RefField string
}

var (
	Incomes  = Resource{Kind: report.KindIncome, Path: "/v1/incomes", Singular: "income", Plural: "incomes", Tag: "Incomes", RefField: "source_id"}
	Expenses = Resource{Kind: report.KindExpense, Path: "/v1/expenses", Singular: "expense", Plural: "expenses", Tag: "Expenses", RefField: "category_id"}
)

// Transaction is the API response model for an income or expense. Incomes
// carry source fields, expenses category fields.
type Transaction struct {
	ID          string  `json:"id" doc:"UUID"`
	Type        string  `json:"type" enum:"income,expense" doc:"income or expense"`
	Amount      string  `json:"amount" doc:"Decimal amount"`
	Date        string  `json:"date" doc:"Day the transaction happened (YYYY-MM-DD)"`
	SourceID    *string `json:"source_id,omitempty" doc:"Income source UUID"`
	Source      string  `json:"source,omitempty" doc:"Income source name"`
	CategoryID  *string `json:"category_id,omitempty" doc:"Expense category UUID"`
	Category    string  `json:"category,omitempty" doc:"Expense category name"`
	AccountID   *string `json:"account_id" doc:"Account UUID, null when unset"`
	Description string  `json:"description" doc:"Free-form description"`
	CreatedAt   string  `json:"created_at" doc:"RFC3339 creation time"`
}

type transactionService interface {
	CreateTransaction(ctx context.Context, ownerID uuid.UUID, input service.TransactionInput) (*service.Transaction, error)
	GetTransaction(ctx context.Context, ownerID, id uuid.UUID) (*service.Transaction, error)
	ListTransactions(ctx context.Context, ownerID uuid.UUID, query service.TransactionQuery, cursor *service.Cursor) ([]service.Transaction, *service.Cursor, error)
	UpdateTransaction(ctx context.Context, ownerID, id uuid.UUID, update service.TransactionUpdate) (*service.Transaction, error)
	DeleteTransaction(ctx context.Context, ownerID, id uuid.UUID) error
}

func fromService(tx service.Transaction) Transaction {
	out := Transaction{
		ID:          tx.ID.String(),
		Type:        tx.Kind.String(),
		Amount:      tx.Amount.String(),
		Date:        apiutil.FormatDate(tx.OccurredOn),
		AccountID:   apiutil.NullableID(tx.AccountID),
		Description: tx.Description,
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
	if tx.Kind == report.KindIncome {
		out.SourceID, out.Source = apiutil.NullableID(tx.RefID), tx.RefName
	} else {
		out.CategoryID, out.Category = apiutil.NullableID(tx.RefID), tx.RefName
	}
	return out
}

// refValue picks the reference field that belongs to the resource and rejects
// the one that does not.
func (r Resource) refValue(sourceID, categoryID string) (string, error) {
	own, other := categoryID, sourceID
	if r.Kind == report.KindIncome {
		own, other = sourceID, categoryID
	}
	if other != "" {
		return "", huma.NewError(http.StatusBadRequest, r.Plural+" take "+r.RefField)
	}
	return own, nil
}
