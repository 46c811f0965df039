package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

// Report is a persisted report snapshot. Balance is a generated column.
type Report struct {
	ID           uuid.UUID       `db:"id"`
	OwnerID      uuid.UUID       `db:"owner_id"`
	StartDate    time.Time       `db:"start_date"`
	EndDate      time.Time       `db:"end_date"`
	TotalIncome  decimal.Decimal `db:"total_income"`
	TotalExpense decimal.Decimal `db:"total_expense"`
	Balance      decimal.Decimal `db:"balance"`
	CreatedAt    time.Time       `db:"created_at"`
}

// ReportCreate is the input for persisting a report.
type ReportCreate struct {
	OwnerID      uuid.UUID
	StartDate    time.Time
	EndDate      time.Time
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
}

// ReportFilter specifies paging for listing reports.
type ReportFilter struct {
	Limit  int
	Offset int
}

// IReportTable defines the interface for report storage. Reports are never updated.
//
//go:generate mockery --name IReportTable --inpackage --with-expecter --filename mock_IReportTable.go
type IReportTable interface {
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Report, error)
	Insert(ctx context.Context, create *ReportCreate) (*Report, error)
	List(ctx context.Context, ownerID uuid.UUID, filter *ReportFilter) ([]*Report, error)
}

var _ IReportTable = (*ReportsTable)(nil)

var reportColumns = []any{"id", "owner_id", "start_date", "end_date", "total_income", "total_expense", "balance", "created_at"}

// ReportsTable provides access to the reports table.
type ReportsTable struct {
	exec bob.Executor
}

func NewReportsTable(exec bob.Executor) *ReportsTable {
	return &ReportsTable{exec: exec}
}

func (t *ReportsTable) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Report, error) {
	q := psql.Select(
		sm.Columns(reportColumns...),
		sm.From("reports"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Report]())
	return row, notFound(err)
}

func (t *ReportsTable) Insert(ctx context.Context, create *ReportCreate) (*Report, error) {
	q := psql.Insert(
		im.Into("reports", "owner_id", "start_date", "end_date", "total_income", "total_expense"),
		im.Values(
			psql.Arg(create.OwnerID),
			psql.Arg(dateArg(create.StartDate)),
			psql.Arg(dateArg(create.EndDate)),
			psql.Arg(create.TotalIncome),
			psql.Arg(create.TotalExpense),
		),
		im.Returning(reportColumns...),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[*Report]())
}

// List returns reports newest first.
func (t *ReportsTable) List(ctx context.Context, ownerID uuid.UUID, filter *ReportFilter) ([]*Report, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(reportColumns...),
		sm.From("reports"),
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
		sm.OrderBy(psql.Quote("created_at")).Desc(),
		sm.OrderBy(psql.Quote("id")).Desc(),
	)
	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Report]())
}
