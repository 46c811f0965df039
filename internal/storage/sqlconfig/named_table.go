package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

// Named is a category or an income source: a user-owned label with a description.
type Named struct {
	ID          uuid.UUID `db:"id"`
	OwnerID     uuid.UUID `db:"owner_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

// NamedCreate is the input for creating a category or source.
type NamedCreate struct {
	OwnerID     uuid.UUID
	Name        string
	Description string
}

// NamedUpdate carries the fields to change.
type NamedUpdate struct {
	Name        omit.Val[string]
	Description omit.Val[string]
}

// NamedFilter specifies paging for listing categories or sources.
type NamedFilter struct {
	Limit  int
	Offset int
}

// INamedTable defines storage operations shared by categories and sources.
//
//go:generate mockery --name INamedTable --inpackage --with-expecter --filename mock_INamedTable.go
type INamedTable interface {
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Named, error)
	Insert(ctx context.Context, create *NamedCreate) (*Named, error)
	List(ctx context.Context, ownerID uuid.UUID, filter *NamedFilter) ([]*Named, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, update *NamedUpdate) (*Named, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	// ResolveNames returns the names of the given ids in one query. Ids that do
	// not exist or belong to another owner are absent from the result.
	ResolveNames(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

var _ INamedTable = (*NamedTable)(nil)

var namedColumns = []any{"id", "owner_id", "name", "description", "created_at"}

// NamedTable provides access to the categories or sources table.
type NamedTable struct {
	exec    bob.Executor
	table   string
	orderBy string
	desc    bool
}

// NewCategoriesTable returns a NamedTable over categories, listed by name.
func NewCategoriesTable(exec bob.Executor) *NamedTable {
	return &NamedTable{exec: exec, table: "categories", orderBy: "name"}
}

// NewSourcesTable returns a NamedTable over sources, listed newest first.
func NewSourcesTable(exec bob.Executor) *NamedTable {
	return &NamedTable{exec: exec, table: "sources", orderBy: "created_at", desc: true}
}

func (t *NamedTable) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Named, error) {
	q := psql.Select(
		sm.Columns(namedColumns...),
		sm.From(t.table),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Named]())
	return row, notFound(err)
}

func (t *NamedTable) Insert(ctx context.Context, create *NamedCreate) (*Named, error) {
	q := psql.Insert(
		im.Into(t.table, "owner_id", "name", "description"),
		im.Values(psql.Arg(create.OwnerID), psql.Arg(create.Name), psql.Arg(create.Description)),
		im.Returning(namedColumns...),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[*Named]())
}

func (t *NamedTable) List(ctx context.Context, ownerID uuid.UUID, filter *NamedFilter) ([]*Named, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(namedColumns...),
		sm.From(t.table),
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
	if t.desc {
		queryMods = append(queryMods, sm.OrderBy(psql.Quote(t.orderBy)).Desc())
	} else {
		queryMods = append(queryMods, sm.OrderBy(psql.Quote(t.orderBy)).Asc())
	}
	queryMods = append(queryMods, sm.OrderBy(psql.Quote("id")).Asc())

	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Named]())
}

func (t *NamedTable) Update(ctx context.Context, ownerID, id uuid.UUID, update *NamedUpdate) (*Named, error) {
	var setMods []bob.Mod[*dialect.UpdateQuery]
	if v, ok := update.Name.Get(); ok {
		setMods = append(setMods, um.SetCol("name").ToArg(v))
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
		um.Returning(namedColumns...),
	)
	row, err := bob.One(ctx, t.exec, psql.Update(queryMods...), scan.StructMapper[*Named]())
	return row, notFound(err)
}

func (t *NamedTable) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return deleteOwned(ctx, t.exec, t.table, ownerID, id)
}

type idName struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
}

func (t *NamedTable) ResolveNames(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	q := psql.Select(
		sm.Columns("id", "name"),
		sm.From(t.table),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		sm.Where(psql.Quote("id").EQ(psql.Raw("ANY(?::uuid[])", pq.Array(uuidStrings(ids))))),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[*idName]())
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		names[row.ID] = row.Name
	}
	return names, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
