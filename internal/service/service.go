package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/events"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/report"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

var (
	// ErrNotFound is returned for missing records and for records of another owner.
	ErrNotFound = sqlconfig.ErrNotFound

	// ErrInvalidReference is returned when a source, category or account is not the caller's.
	ErrInvalidReference = actions.ErrInvalidReference

	// ErrInvalidInput wraps every validation failure the handlers did not catch.
	ErrInvalidInput = errors.New("invalid input")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// processor runs an action inside a single database transaction.
type processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// notifier is told about every successful mutation.
type notifier interface {
	Notify(kind events.Kind, action events.Action, ownerID, id uuid.UUID)
}

type tokenIssuer interface {
	Issue(userID uuid.UUID) (string, time.Time, error)
}

// Cursor identifies a position in a paginated result set.
type Cursor struct {
	Position int
	Limit    int
}

// bounds returns the limit and offset a cursor asks for, with the default
// limit for the first page and the maximum enforced.
func (c *Cursor) bounds() (limit, offset int) {
	limit = defaultLimit
	if c != nil {
		if c.Limit > 0 {
			limit = c.Limit
		}
		offset = max(c.Position, 0)
	}
	return min(limit, maxLimit), offset
}

// page trims the extra row a List query fetched and returns the cursor of the
// next page when that row existed.
func page[T any](rows []T, limit, offset int) ([]T, *Cursor) {
	if len(rows) <= limit {
		return rows, nil
	}
	return rows[:limit], &Cursor{Position: offset + limit, Limit: limit}
}

// Service holds all business logic services.
type Service struct {
	Users      *UserService
	Accounts   *AccountService
	Categories *NamedService
	Sources    *NamedService
	Incomes    *TransactionService
	Expenses   *TransactionService
	Budgets    *BudgetService
	Reports    *ReportService
}

// NewService wires every service to the same storage, operator and change broker.
func NewService(store *storage.Storage, op processor, changes notifier, tokens tokenIssuer) *Service {
	return &Service{
		Users:      NewUserService(store, tokens),
		Accounts:   NewAccountService(store, op, changes),
		Categories: NewCategoryService(store, changes),
		Sources:    NewSourceService(store, changes),
		Incomes:    NewTransactionService(store, op, changes, report.KindIncome),
		Expenses:   NewTransactionService(store, op, changes, report.KindExpense),
		Budgets:    NewBudgetService(store, op, changes),
		Reports:    NewReportService(store, op, changes),
	}
}
