package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

// Ensure AccountsTable implements IAccountTable at compile time.
var _ IAccountTable = (*AccountsTable)(nil)

var accountColumns = []any{"id", "owner_id", "name", "type", "sub_type", "balance", "description", "created_at"}

// AccountsTable provides access to the accounts table.
type AccountsTable struct {
	exec bob.Executor
}

// NewAccountsTable creates an AccountsTable bound to exec.
func NewAccountsTable(exec bob.Executor) *AccountsTable {
	return &AccountsTable{exec: exec}
}

// FindByID retrieves an account owned by ownerID.
func (t *AccountsTable) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Account, error) {
	q := psql.Select(
		sm.Columns(accountColumns...),
		sm.From("accounts"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Account]())
	return row, notFound(err)
}

// Insert creates a new account and returns the stored row.
func (t *AccountsTable) Insert(ctx context.Context, create *AccountCreate) (*Account, error) {
	q := psql.Insert(
		im.Into("accounts", "owner_id", "name", "type", "sub_type", "balance", "description"),
		im.Values(
			psql.Arg(create.OwnerID),
			psql.Arg(create.Name),
			psql.Arg(int16(create.Type)),
			psql.Arg(create.SubType),
			psql.Arg(create.Balance),
			psql.Arg(create.Description),
		),
		im.Returning(accountColumns...),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[*Account]())
}

// List returns one page of accounts ordered by name. Limit+1 rows are fetched
// so callers can tell whether another page exists.
func (t *AccountsTable) List(ctx context.Context, ownerID uuid.UUID, filter *AccountFilter) ([]*Account, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(accountColumns...),
		sm.From("accounts"),
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
		sm.OrderBy(psql.Quote("name")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)
	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Account]())
}

// Update applies the set fields of update and returns the new row.
func (t *AccountsTable) Update(ctx context.Context, ownerID, id uuid.UUID, update *AccountUpdate) (*Account, error) {
	var setMods []bob.Mod[*dialect.UpdateQuery]
	if v, ok := update.Name.Get(); ok {
		setMods = append(setMods, um.SetCol("name").ToArg(v))
	}
	if v, ok := update.Type.Get(); ok {
		setMods = append(setMods, um.SetCol("type").ToArg(int16(v)))
	}
	if v, ok := update.SubType.Get(); ok {
		setMods = append(setMods, um.SetCol("sub_type").ToArg(v))
	}
	if v, ok := update.Balance.Get(); ok {
		setMods = append(setMods, um.SetCol("balance").ToArg(v))
	}
	if v, ok := update.Description.Get(); ok {
		setMods = append(setMods, um.SetCol("description").ToArg(v))
	}
	if len(setMods) == 0 {
		return t.FindByID(ctx, ownerID, id)
	}

	queryMods := append([]bob.Mod[*dialect.UpdateQuery]{um.Table("accounts")}, setMods...)
	queryMods = append(queryMods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		um.Returning(accountColumns...),
	)
	row, err := bob.One(ctx, t.exec, psql.Update(queryMods...), scan.StructMapper[*Account]())
	return row, notFound(err)
}

// Delete removes an account owned by ownerID.
func (t *AccountsTable) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return deleteOwned(ctx, t.exec, "accounts", ownerID, id)
}

func deleteOwned(ctx context.Context, exec bob.Executor, table string, ownerID, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(table),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)
	res, err := bob.Exec(ctx, exec, q)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
