package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// Storage holds the tables bound to the connection pool. Writes that must be
// atomic go through Write instead.
type Storage struct {
	DB *sql.DB

	bobDB      bob.DB
	Users      sqlconfig.IUserTable
	Accounts   sqlconfig.IAccountTable
	Categories sqlconfig.INamedTable
	Sources    sqlconfig.INamedTable
	Incomes    sqlconfig.ITransactionTable
	Expenses   sqlconfig.ITransactionTable
	Budgets    sqlconfig.IBudgetTable
	Reports    sqlconfig.IReportTable
}

// NewStorage opens the Postgres pool described by env.
func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	return New(db), nil
}

// New wraps an already opened database.
func New(db *sql.DB) *Storage {
	bobDB := bob.NewDB(db)
	return &Storage{
		DB:         db,
		bobDB:      bobDB,
		Users:      sqlconfig.NewUsersTable(bobDB),
		Accounts:   sqlconfig.NewAccountsTable(bobDB),
		Categories: sqlconfig.NewCategoriesTable(bobDB),
		Sources:    sqlconfig.NewSourcesTable(bobDB),
		Incomes:    sqlconfig.NewIncomesTable(bobDB),
		Expenses:   sqlconfig.NewExpensesTable(bobDB),
		Budgets:    sqlconfig.NewBudgetsTable(bobDB),
		Reports:    sqlconfig.NewReportsTable(bobDB),
	}
}

// Write begins a transaction and returns a Writer whose tables run inside it.
// The caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}

// Ping checks that the database is reachable.
func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
