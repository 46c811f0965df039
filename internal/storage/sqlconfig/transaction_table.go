package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ ITransactionTable = (*TransactionsTable)(nil)

// TransactionsTable provides access to the incomes or expenses table.
type TransactionsTable struct {
	exec      bob.Executor
	table     string
	refColumn string
}

// NewIncomesTable returns a TransactionsTable over incomes, referencing sources.
func NewIncomesTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec, table: "incomes", refColumn: "source_id"}
}

// NewExpensesTable returns a TransactionsTable over expenses, referencing categories.
func NewExpensesTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec, table: "expenses", refColumn: "category_id"}
}

func (t *TransactionsTable) columns() []any {
	return []any{"id", "owner_id", "amount", "occurred_on", t.refColumn + " AS ref_id", "account_id", "description", "created_at"}
}

// FindByID retrieves a transaction owned by ownerID.
func (t *TransactionsTable) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Transaction, error) {
	q := psql.Select(
		sm.Columns(t.columns()...),
		sm.From(t.table),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Transaction]())
	return row, notFound(err)
}

// Insert creates a new transaction and returns the stored row.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	q := psql.Insert(
		im.Into(t.table, "owner_id", "amount", "occurred_on", t.refColumn, "account_id", "description"),
		im.Values(
			psql.Arg(create.OwnerID),
			psql.Arg(create.Amount),
			psql.Arg(dateArg(create.OccurredOn)),
			psql.Arg(create.RefID),
			psql.Arg(create.AccountID),
			psql.Arg(create.Description),
		),
		im.Returning(t.columns()...),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[*Transaction]())
}

// List returns transactions matching the filter, newest date first.
func (t *TransactionsTable) List(ctx context.Context, ownerID uuid.UUID, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(t.columns()...),
		sm.From(t.table),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	}
	if filter != nil {
		if filter.Start != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("occurred_on").GTE(psql.Arg(dateArg(*filter.Start)))))
		}
		if filter.End != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("occurred_on").LTE(psql.Arg(dateArg(*filter.End)))))
		}
		if filter.RefID != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote(t.refColumn).EQ(psql.Arg(*filter.RefID))))
		}
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("occurred_on")).Desc(),
		sm.OrderBy(psql.Quote("created_at")).Desc(),
		sm.OrderBy(psql.Quote("id")).Desc(),
	)
	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
}

// Update applies the set fields of update and returns the new row.
func (t *TransactionsTable) Update(ctx context.Context, ownerID, id uuid.UUID, update *TransactionUpdate) (*Transaction, error) {
	var setMods []bob.Mod[*dialect.UpdateQuery]
	if v, ok := update.Amount.Get(); ok {
		setMods = append(setMods, um.SetCol("amount").ToArg(v))
	}
	if v, ok := update.OccurredOn.Get(); ok {
		setMods = append(setMods, um.SetCol("occurred_on").ToArg(dateArg(v)))
	}
	if v, ok := update.RefID.Get(); ok {
		setMods = append(setMods, um.SetCol(t.refColumn).ToArg(v))
	}
	if v, ok := update.AccountID.Get(); ok {
		setMods = append(setMods, um.SetCol("account_id").ToArg(v))
	}
	if v, ok := update.Description.Get(); ok {
		setMods = append(setMods, um.SetCol("description").ToArg(v))
	}
	if len(setMods) == 0 {
		return t.FindByID(ctx, ownerID, id)
	}

	queryMods := append([]bob.Mod[*dialect.UpdateQuery]{um.Table(t.table)}, setMods...)
	queryMods = append(queryMods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		um.Returning(t.columns()...),
	)
	row, err := bob.One(ctx, t.exec, psql.Update(queryMods...), scan.StructMapper[*Transaction]())
	return row, notFound(err)
}

// Delete removes a transaction owned by ownerID.
func (t *TransactionsTable) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return deleteOwned(ctx, t.exec, t.table, ownerID, id)
}
