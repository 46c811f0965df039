package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type CreateBudget struct {
	Create sqlconfig.BudgetCreate

	Created *sqlconfig.Budget
}

func (c *CreateBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := checkCategory(ctx, writer, c.Create.OwnerID, c.Create.CategoryID); err != nil {
		return err
	}

	row, err := writer.Budgets.Insert(ctx, &c.Create)
	if err != nil {
		return err
	}

	c.Created = row
	return nil
}

type UpdateBudget struct {
	OwnerID uuid.UUID
	ID      uuid.UUID
	Update  sqlconfig.BudgetUpdate

	Updated *sqlconfig.Budget
}

func (u *UpdateBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	if categoryID, ok := u.Update.CategoryID.Get(); ok {
		if err := checkCategory(ctx, writer, u.OwnerID, categoryID); err != nil {
			return err
		}
	}

	row, err := writer.Budgets.Update(ctx, u.OwnerID, u.ID, &u.Update)
	if err != nil {
		return err
	}

	u.Updated = row
	return nil
}

func checkCategory(ctx context.Context, writer *storage.Writer, ownerID uuid.UUID, categoryID uuid.NullUUID) error {
	if !categoryID.Valid {
		return nil
	}
	_, err := writer.Categories.FindByID(ctx, ownerID, categoryID.UUID)
	return referenceError(err)
}
