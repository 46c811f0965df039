package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

// Budget represents a budget record. A null CategoryID budgets all expenses.
type Budget struct {
	ID          uuid.UUID       `db:"id"`
	OwnerID     uuid.UUID       `db:"owner_id"`
	CategoryID  uuid.NullUUID   `db:"category_id"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	StartDate   time.Time       `db:"start_date"`
	EndDate     time.Time       `db:"end_date"`
	CreatedAt   time.Time       `db:"created_at"`
}

// BudgetCreate is the input for creating a budget.
type BudgetCreate struct {
	OwnerID     uuid.UUID
	CategoryID  uuid.NullUUID
	Amount      decimal.Decimal
	Description string
	StartDate   time.Time
	EndDate     time.Time
}

// BudgetUpdate carries the fields to change.
type BudgetUpdate struct {
	CategoryID  omit.Val[uuid.NullUUID]
	Amount      omit.Val[decimal.Decimal]
	Description omit.Val[string]
	StartDate   omit.Val[time.Time]
	EndDate     omit.Val[time.Time]
}

// BudgetFilter specifies paging for listing budgets.
type BudgetFilter struct {
	Limit  int
	Offset int
}

// IBudgetTable defines the interface for budget storage operations.
//
//go:generate mockery --name IBudgetTable --inpackage --with-expecter --filename mock_IBudgetTable.go
type IBudgetTable interface {
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Budget, error)
	Insert(ctx context.Context, create *BudgetCreate) (*Budget, error)
	List(ctx context.Context, ownerID uuid.UUID, filter *BudgetFilter) ([]*Budget, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, update *BudgetUpdate) (*Budget, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

var _ IBudgetTable = (*BudgetsTable)(nil)

var budgetColumns = []any{"id", "owner_id", "category_id", "amount", "description", "start_date", "end_date", "created_at"}

// BudgetsTable provides access to the budgets table.
type BudgetsTable struct {
	exec bob.Executor
}

func NewBudgetsTable(exec bob.Executor) *BudgetsTable {
	return &BudgetsTable{exec: exec}
}

func (t *BudgetsTable) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Budget, error) {
	q := psql.Select(
		sm.Columns(budgetColumns...),
		sm.From("budgets"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Budget]())
	return row, notFound(err)
}

func (t *BudgetsTable) Insert(ctx context.Context, create *BudgetCreate) (*Budget, error) {
	q := psql.Insert(
		im.Into("budgets", "owner_id", "category_id", "amount", "description", "start_date", "end_date"),
		im.Values(
			psql.Arg(create.OwnerID),
			psql.Arg(create.CategoryID),
			psql.Arg(create.Amount),
			psql.Arg(create.Description),
			psql.Arg(dateArg(create.StartDate)),
			psql.Arg(dateArg(create.EndDate)),
		),
		im.Returning(budgetColumns...),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[*Budget]())
}

// List returns budgets ordered by start date, most recent first.
func (t *BudgetsTable) List(ctx context.Context, ownerID uuid.UUID, filter *BudgetFilter) ([]*Budget, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(budgetColumns...),
		sm.From("budgets"),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	}
	if filter != nil {
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("start_date")).Desc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)
	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Budget]())
}

func (t *BudgetsTable) Update(ctx context.Context, ownerID, id uuid.UUID, update *BudgetUpdate) (*Budget, error) {
	var setMods []bob.Mod[*dialect.UpdateQuery]
	if v, ok := update.CategoryID.Get(); ok {
		setMods = append(setMods, um.SetCol("category_id").ToArg(v))
	}
	if v, ok := update.Amount.Get(); ok {
		setMods = append(setMods, um.SetCol("amount").ToArg(v))
	}
	if v, ok := update.Description.Get(); ok {
		setMods = append(setMods, um.SetCol("description").ToArg(v))
	}
	if v, ok := update.StartDate.Get(); ok {
		setMods = append(setMods, um.SetCol("start_date").ToArg(dateArg(v)))
	}
	if v, ok := update.EndDate.Get(); ok {
		setMods = append(setMods, um.SetCol("end_date").ToArg(dateArg(v)))
	}
	if len(setMods) == 0 {
		return t.FindByID(ctx, ownerID, id)
	}

	queryMods := append([]bob.Mod[*dialect.UpdateQuery]{um.Table("budgets")}, setMods...)
	queryMods = append(queryMods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		um.Returning(budgetColumns...),
	)
	row, err := bob.One(ctx, t.exec, psql.Update(queryMods...), scan.StructMapper[*Budget]())
	return row, notFound(err)
}

func (t *BudgetsTable) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return deleteOwned(ctx, t.exec, "budgets", ownerID, id)
}
