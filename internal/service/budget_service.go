package service

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/events"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/report"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// Budget caps spending over a window, for one category or for all expenses
// when CategoryID is null.
type Budget struct {
	ID          uuid.UUID
	CategoryID  uuid.NullUUID
	Amount      decimal.Decimal
	Description string
	Window      report.Window
	CreatedAt   time.Time
}

// BudgetInput is what a caller supplies to create a budget.
type BudgetInput struct {
	CategoryID  uuid.NullUUID
	Amount      decimal.Decimal
	Description string
	Start       time.Time
	End         time.Time
}

// BudgetUpdate holds the fields to change. Nil fields are left alone.
type BudgetUpdate struct {
	CategoryID  *uuid.NullUUID
	Amount      *decimal.Decimal
	Description *string
	Start       *time.Time
	End         *time.Time
}

// BudgetProgress is a budget together with what was spent against it.
type BudgetProgress struct {
	Budget   Budget
	Progress report.BudgetProgress
}

// BudgetService handles budget business logic.
type BudgetService struct {
	storage *storage.Storage
	op      processor
	changes notifier
}

func NewBudgetService(store *storage.Storage, op processor, changes notifier) *BudgetService {
	return &BudgetService{storage: store, op: op, changes: changes}
}

func (s *BudgetService) CreateBudget(ctx context.Context, ownerID uuid.UUID, input BudgetInput) (*Budget, error) {
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	window, err := report.NewWindow(input.Start, input.End)
	if err != nil {
		return nil, err
	}

	action := &actions.CreateBudget{
		Create: sqlconfig.BudgetCreate{
			OwnerID:     ownerID,
			CategoryID:  input.CategoryID,
			Amount:      input.Amount,
			Description: input.Description,
			StartDate:   window.Start,
			EndDate:     window.End,
		},
	}
	if err := s.op.Process(ctx, action); err != nil {
		return nil, err
	}

	s.changes.Notify(events.KindBudget, events.ActionCreated, ownerID, action.Created.ID)
	budget := budgetFromStorage(action.Created)
	return &budget, nil
}

func (s *BudgetService) GetBudget(ctx context.Context, ownerID, id uuid.UUID) (*Budget, error) {
	row, err := s.storage.Budgets.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	budget := budgetFromStorage(row)
	return &budget, nil
}

func (s *BudgetService) ListBudgets(ctx context.Context, ownerID uuid.UUID, cursor *Cursor) ([]Budget, *Cursor, error) {
	limit, offset := cursor.bounds()

	rows, err := s.storage.Budgets.List(ctx, ownerID, &sqlconfig.BudgetFilter{Limit: limit, Offset: offset})
	if err != nil {
		return nil, nil, err
	}

	rows, next := page(rows, limit, offset)
	budgets := make([]Budget, len(rows))
	for i, row := range rows {
		budgets[i] = budgetFromStorage(row)
	}
	return budgets, next, nil
}

// UpdateBudget applies the set fields of update. Changing either end of the
// window re-validates it against the stored other end.
func (s *BudgetService) UpdateBudget(ctx context.Context, ownerID, id uuid.UUID, update BudgetUpdate) (*Budget, error) {
	if update.Amount != nil {
		if err := validateAmount(*update.Amount); err != nil {
			return nil, err
		}
	}

	storageUpdate := sqlconfig.BudgetUpdate{
		CategoryID:  omit.FromPtr(update.CategoryID),
		Amount:      omit.FromPtr(update.Amount),
		Description: omit.FromPtr(update.Description),
	}

	if update.Start != nil || update.End != nil {
		current, err := s.storage.Budgets.FindByID(ctx, ownerID, id)
		if err != nil {
			return nil, err
		}
		start, end := current.StartDate, current.EndDate
		if update.Start != nil {
			start = *update.Start
		}
		if update.End != nil {
			end = *update.End
		}
		window, err := report.NewWindow(start, end)
		if err != nil {
			return nil, err
		}
		storageUpdate.StartDate = omit.From(window.Start)
		storageUpdate.EndDate = omit.From(window.End)
	}

	action := &actions.UpdateBudget{OwnerID: ownerID, ID: id, Update: storageUpdate}
	if err := s.op.Process(ctx, action); err != nil {
		return nil, err
	}

	s.changes.Notify(events.KindBudget, events.ActionUpdated, ownerID, id)
	budget := budgetFromStorage(action.Updated)
	return &budget, nil
}

func (s *BudgetService) DeleteBudget(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.storage.Budgets.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	s.changes.Notify(events.KindBudget, events.ActionDeleted, ownerID, id)
	return nil
}

// Progress sums the expenses inside the budget's window, limited to its
// category when it has one.
func (s *BudgetService) Progress(ctx context.Context, ownerID, id uuid.UUID) (*BudgetProgress, error) {
	row, err := s.storage.Budgets.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	budget := budgetFromStorage(row)

	filter := &sqlconfig.TransactionFilter{Start: &budget.Window.Start, End: &budget.Window.End}
	if budget.CategoryID.Valid {
		filter.RefID = &budget.CategoryID.UUID
	}
	rows, err := s.storage.Expenses.List(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}

	expenses := make([]report.Transaction, len(rows))
	for i, r := range rows {
		expenses[i] = toReport(report.KindExpense, r, nil)
	}

	return &BudgetProgress{
		Budget:   budget,
		Progress: report.Progress(budget.Amount, expenses),
	}, nil
}

func budgetFromStorage(row *sqlconfig.Budget) Budget {
	return Budget{
		ID:          row.ID,
		CategoryID:  row.CategoryID,
		Amount:      row.Amount,
		Description: row.Description,
		Window:      report.Window{Start: report.Day(row.StartDate), End: report.Day(row.EndDate)},
		CreatedAt:   row.CreatedAt,
	}
}
