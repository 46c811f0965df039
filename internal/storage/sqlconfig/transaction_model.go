package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents an income or expense record. RefID is the income's
// source or the expense's category; it is null once the referenced row is deleted.
type Transaction struct {
	ID          uuid.UUID       `db:"id"`
	OwnerID     uuid.UUID       `db:"owner_id"`
	Amount      decimal.Decimal `db:"amount"`
	OccurredOn  time.Time       `db:"occurred_on"`
	RefID       uuid.NullUUID   `db:"ref_id"`
	AccountID   uuid.NullUUID   `db:"account_id"`
	Description string          `db:"description"`
	CreatedAt   time.Time       `db:"created_at"`
}

// TransactionCreate is the input for creating a new income or expense.
type TransactionCreate struct {
	OwnerID     uuid.UUID
	Amount      decimal.Decimal
	OccurredOn  time.Time
	RefID       uuid.UUID
	AccountID   uuid.NullUUID
	Description string
}

// TransactionUpdate carries the fields to change.
type TransactionUpdate struct {
	Amount      omit.Val[decimal.Decimal]
	OccurredOn  omit.Val[time.Time]
	RefID       omit.Val[uuid.UUID]
	AccountID   omit.Val[uuid.NullUUID]
	Description omit.Val[string]
}

// TransactionFilter specifies filters for listing transactions. Start and End
// are inclusive calendar days. A zero Limit returns every matching row.
type TransactionFilter struct {
	Start  *time.Time
	End    *time.Time
	RefID  *uuid.UUID
	Limit  int
	Offset int
}

// ITransactionTable defines the interface for income and expense storage operations.
//
//go:generate mockery --name ITransactionTable --inpackage --with-expecter --filename mock_ITransactionTable.go
type ITransactionTable interface {
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	List(ctx context.Context, ownerID uuid.UUID, filter *TransactionFilter) ([]*Transaction, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, update *TransactionUpdate) (*Transaction, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
