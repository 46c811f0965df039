package service

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// AccountType represents an account type in the service layer.
type AccountType int8

const (
	AccountTypeCash AccountType = iota
	AccountTypeCreditCards
	AccountTypeInvestments
	AccountTypeLoans
	AccountTypeAssets
)

// Account represents an account in the service layer.
type Account struct {
	ID          uuid.UUID
	Name        string
	Type        AccountType
	SubType     string
	Balance     decimal.Decimal
	Description string
	CreatedAt   time.Time
}

// AccountUpdate holds the fields to change. Nil fields are left alone.
type AccountUpdate struct {
	Name        *string
	Type        *AccountType
	SubType     *string
	Balance     *decimal.Decimal
	Description *string
}

func accountTypeToStorage(t AccountType) sqlconfig.AccountType {
	return sqlconfig.AccountType(t)
}

func accountTypeFromStorage(t sqlconfig.AccountType) AccountType {
	return AccountType(t)
}

func accountFromStorage(row *sqlconfig.Account) Account {
	return Account{
		ID:          row.ID,
		Name:        row.Name,
		Type:        accountTypeFromStorage(row.Type),
		SubType:     row.SubType,
		Balance:     row.Balance,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
	}
}

func (u AccountUpdate) toStorage() *sqlconfig.AccountUpdate {
	update := &sqlconfig.AccountUpdate{
		Name:        omit.FromPtr(u.Name),
		SubType:     omit.FromPtr(u.SubType),
		Balance:     omit.FromPtr(u.Balance),
		Description: omit.FromPtr(u.Description),
	}
	if u.Type != nil {
		update.Type = omit.From(accountTypeToStorage(*u.Type))
	}
	return update
}
