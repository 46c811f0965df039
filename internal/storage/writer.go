package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// Tx is an open database transaction.
type Tx interface {
	bob.Executor
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer exposes the tables that operator actions mutate, all bound to one transaction.
type Writer struct {
	tx         Tx
	Accounts   sqlconfig.IAccountTable
	Categories sqlconfig.INamedTable
	Sources    sqlconfig.INamedTable
	Incomes    sqlconfig.ITransactionTable
	Expenses   sqlconfig.ITransactionTable
	Budgets    sqlconfig.IBudgetTable
	Reports    sqlconfig.IReportTable
}

func NewWriter(tx Tx) *Writer {
	return &Writer{
		tx:         tx,
		Accounts:   sqlconfig.NewAccountsTable(tx),
		Categories: sqlconfig.NewCategoriesTable(tx),
		Sources:    sqlconfig.NewSourcesTable(tx),
		Incomes:    sqlconfig.NewIncomesTable(tx),
		Expenses:   sqlconfig.NewExpensesTable(tx),
		Budgets:    sqlconfig.NewBudgetsTable(tx),
		Reports:    sqlconfig.NewReportsTable(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
