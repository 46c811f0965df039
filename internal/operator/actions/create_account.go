package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type CreateAccount struct {
	Create sqlconfig.AccountCreate

	Created *sqlconfig.Account
}

func (c *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	account, err := writer.Accounts.Insert(ctx, &c.Create)
	if err != nil {
		return err
	}

	c.Created = account
	return nil
}
