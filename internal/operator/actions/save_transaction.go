package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/report"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// CreateTransaction inserts an income or expense after checking, in the same
// transaction, that its source or category and optional account belong to the owner.
type CreateTransaction struct {
	Kind   report.Kind
	Create sqlconfig.TransactionCreate

	Created *sqlconfig.Transaction
}

func (c *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := checkReferences(ctx, writer, c.Kind, c.Create.OwnerID, &c.Create.RefID, c.Create.AccountID); err != nil {
		return err
	}

	row, err := transactionTable(writer, c.Kind).Insert(ctx, &c.Create)
	if err != nil {
		return err
	}

	c.Created = row
	return nil
}

// UpdateTransaction applies a partial update with the same reference checks as CreateTransaction.
type UpdateTransaction struct {
	Kind    report.Kind
	OwnerID uuid.UUID
	ID      uuid.UUID
	Update  sqlconfig.TransactionUpdate

	Updated *sqlconfig.Transaction
}

func (u *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	var refID *uuid.UUID
	if v, ok := u.Update.RefID.Get(); ok {
		refID = &v
	}
	accountID, _ := u.Update.AccountID.Get()
	if err := checkReferences(ctx, writer, u.Kind, u.OwnerID, refID, accountID); err != nil {
		return err
	}

	row, err := transactionTable(writer, u.Kind).Update(ctx, u.OwnerID, u.ID, &u.Update)
	if err != nil {
		return err
	}

	u.Updated = row
	return nil
}

func transactionTable(writer *storage.Writer, kind report.Kind) sqlconfig.ITransactionTable {
	if kind == report.KindIncome {
		return writer.Incomes
	}
	return writer.Expenses
}

func checkReferences(ctx context.Context, writer *storage.Writer, kind report.Kind, ownerID uuid.UUID, refID *uuid.UUID, accountID uuid.NullUUID) error {
	if refID != nil {
		refTable := writer.Categories
		if kind == report.KindIncome {
			refTable = writer.Sources
		}
		if _, err := refTable.FindByID(ctx, ownerID, *refID); err != nil {
			return referenceError(err)
		}
	}

	if accountID.Valid {
		if _, err := writer.Accounts.FindByID(ctx, ownerID, accountID.UUID); err != nil {
			return referenceError(err)
		}
	}

	return nil
}
