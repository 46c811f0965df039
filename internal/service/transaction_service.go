package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/events"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/report"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// TransactionService handles incomes or expenses, selected by kind.
type TransactionService struct {
	kind    report.Kind
	table   sqlconfig.ITransactionTable
	refs    sqlconfig.INamedTable
	op      processor
	changes notifier
}

// NewTransactionService creates the income service for report.KindIncome and
// the expense service for report.KindExpense.
func NewTransactionService(store *storage.Storage, op processor, changes notifier, kind report.Kind) *TransactionService {
	s := &TransactionService{kind: kind, op: op, changes: changes}
	if kind == report.KindIncome {
		s.table, s.refs = store.Incomes, store.Sources
	} else {
		s.table, s.refs = store.Expenses, store.Categories
	}
	return s
}

func (s *TransactionService) eventKind() events.Kind {
	if s.kind == report.KindIncome {
		return events.KindIncome
	}
	return events.KindExpense
}

// CreateTransaction stores a new income or expense. The source or category and
// the optional account must belong to ownerID.
func (s *TransactionService) CreateTransaction(ctx context.Context, ownerID uuid.UUID, input TransactionInput) (*Transaction, error) {
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if input.OccurredOn.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	action := &actions.CreateTransaction{
		Kind: s.kind,
		Create: sqlconfig.TransactionCreate{
			OwnerID:     ownerID,
			Amount:      input.Amount,
			OccurredOn:  report.Day(input.OccurredOn),
			RefID:       input.RefID,
			AccountID:   input.AccountID,
			Description: input.Description,
		},
	}
	if err := s.op.Process(ctx, action); err != nil {
		return nil, err
	}

	s.changes.Notify(s.eventKind(), events.ActionCreated, ownerID, action.Created.ID)
	return s.withName(ctx, ownerID, action.Created)
}

// GetTransaction retrieves one income or expense with its reference name.
func (s *TransactionService) GetTransaction(ctx context.Context, ownerID, id uuid.UUID) (*Transaction, error) {
	row, err := s.table.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return s.withName(ctx, ownerID, row)
}

// ListTransactions returns a page of transactions, newest date first.
func (s *TransactionService) ListTransactions(ctx context.Context, ownerID uuid.UUID, query TransactionQuery, cursor *Cursor) ([]Transaction, *Cursor, error) {
	if query.Start != nil && query.End != nil {
		if _, err := report.NewWindow(*query.Start, *query.End); err != nil {
			return nil, nil, err
		}
	}

	limit, offset := cursor.bounds()
	rows, err := s.table.List(ctx, ownerID, &sqlconfig.TransactionFilter{
		Start:  query.Start,
		End:    query.End,
		RefID:  query.RefID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, nil, err
	}

	rows, next := page(rows, limit, offset)
	names, err := s.refs.ResolveNames(ctx, ownerID, refIDs(rows))
	if err != nil {
		return nil, nil, err
	}

	out := make([]Transaction, len(rows))
	for i, row := range rows {
		out[i] = transactionFromStorage(s.kind, row, names)
	}
	return out, next, nil
}

// UpdateTransaction applies the set fields of update.
func (s *TransactionService) UpdateTransaction(ctx context.Context, ownerID, id uuid.UUID, update TransactionUpdate) (*Transaction, error) {
	if update.Amount != nil {
		if err := validateAmount(*update.Amount); err != nil {
			return nil, err
		}
	}
	if update.OccurredOn != nil && update.OccurredOn.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	action := &actions.UpdateTransaction{
		Kind:    s.kind,
		OwnerID: ownerID,
		ID:      id,
		Update:  update.toStorage(),
	}
	if err := s.op.Process(ctx, action); err != nil {
		return nil, err
	}

	s.changes.Notify(s.eventKind(), events.ActionUpdated, ownerID, id)
	return s.withName(ctx, ownerID, action.Updated)
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.table.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	s.changes.Notify(s.eventKind(), events.ActionDeleted, ownerID, id)
	return nil
}

func (s *TransactionService) withName(ctx context.Context, ownerID uuid.UUID, row *sqlconfig.Transaction) (*Transaction, error) {
	names, err := s.refs.ResolveNames(ctx, ownerID, refIDs([]*sqlconfig.Transaction{row}))
	if err != nil {
		return nil, err
	}
	tx := transactionFromStorage(s.kind, row, names)
	return &tx, nil
}

func validateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}
	return nil
}
