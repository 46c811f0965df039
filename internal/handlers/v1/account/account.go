package account

import (
	"time"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// Account is the API response model for an account.
type Account struct {
	ID          string `json:"id" doc:"Account UUID"`
	Name        string `json:"name" doc:"Account name"`
	Type        int    `json:"type" doc:"Account type: 0=Cash, 1=Credit Cards, 2=Investments, 3=Loans, 4=Assets"`
	SubType     string `json:"sub_type" doc:"Account sub-type"`
	Balance     string `json:"balance" doc:"Decimal balance"`
	Description string `json:"description" doc:"Free-form description"`
	CreatedAt   string `json:"created_at" doc:"RFC3339 creation time"`
}

// IDInput addresses one account.
type IDInput struct {
	ID string `path:"id" format:"uuid" doc:"Account UUID"`
}

// AccountOutput is the response for operations returning one account.
type AccountOutput struct {
	Status int
	Body   Account
}

func fromService(a service.Account) Account {
	return Account{
		ID:          a.ID.String(),
		Name:        a.Name,
		Type:        int(a.Type),
		SubType:     a.SubType,
		Balance:     a.Balance.String(),
		Description: a.Description,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
	}
}
