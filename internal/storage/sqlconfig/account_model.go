package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Account represents an account record.
type Account struct {
	ID          uuid.UUID       `db:"id"`
	OwnerID     uuid.UUID       `db:"owner_id"`
	Name        string          `db:"name"`
	Type        AccountType     `db:"type"`
	SubType     string          `db:"sub_type"`
	Balance     decimal.Decimal `db:"balance"`
	Description string          `db:"description"`
	CreatedAt   time.Time       `db:"created_at"`
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	OwnerID     uuid.UUID
	Name        string
	Type        AccountType
	SubType     string
	Balance     decimal.Decimal
	Description string
}

// AccountUpdate carries the fields to change; unset fields are left alone.
type AccountUpdate struct {
	Name        omit.Val[string]
	Type        omit.Val[AccountType]
	SubType     omit.Val[string]
	Balance     omit.Val[decimal.Decimal]
	Description omit.Val[string]
}

// AccountFilter specifies filters for listing accounts.
type AccountFilter struct {
	Limit  int
	Offset int
}

// IAccountTable defines the interface for account storage operations.
// Every method is scoped to the owning user; rows of other owners are reported as ErrNotFound.
//
//go:generate mockery --name IAccountTable --inpackage --with-expecter --filename mock_IAccountTable.go
type IAccountTable interface {
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Account, error)
	Insert(ctx context.Context, create *AccountCreate) (*Account, error)
	List(ctx context.Context, ownerID uuid.UUID, filter *AccountFilter) ([]*Account, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, update *AccountUpdate) (*Account, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
