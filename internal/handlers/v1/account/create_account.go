package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

// CreateAccountBody is the request body fields for creating an account.
type CreateAccountBody struct {
	Name        string `json:"name" minLength:"1" doc:"Account name"`
	Type        int    `json:"type" minimum:"0" maximum:"4" doc:"Account type: 0=Cash, 1=Credit Cards, 2=Investments, 3=Loans, 4=Assets"`
	SubType     string `json:"sub_type,omitempty" doc:"Account sub-type"`
	Balance     string `json:"balance,omitempty" doc:"Current balance (e.g. '0' or '1234.56'), defaults to 0"`
	Description string `json:"description,omitempty" doc:"Free-form description"`
}

// accountCreator is the interface for creating accounts.
type accountCreator interface {
	CreateAccount(ctx context.Context, ownerID uuid.UUID, account service.Account) (*service.Account, error)
}

// CreateAccountHandler handles POST /v1/accounts.
type CreateAccountHandler struct {
	AccountService accountCreator
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(svc accountCreator) *CreateAccountHandler {
	return &CreateAccountHandler{AccountService: svc}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-account",
		Method:      http.MethodPost,
		Path:        "/v1/accounts",
		Summary:     "Create an account",
		Description: "Creates a new account with the given name, type, sub-type, and balance.",
		Tags:        []string{"Accounts"},
		Security:    auth.Secured,
	}, h.handle)
}

func parseCreateAccountInput(input *CreateAccountInput) (service.Account, error) {
	balance := decimal.Zero
	if input.Body.Balance != "" {
		var err error
		balance, err = decimal.NewFromString(input.Body.Balance)
		if err != nil {
			return service.Account{}, huma.NewError(http.StatusBadRequest, "invalid balance", err)
		}
	}

	return service.Account{
		Name:        input.Body.Name,
		Type:        service.AccountType(input.Body.Type),
		SubType:     input.Body.SubType,
		Balance:     balance,
		Description: input.Body.Description,
	}, nil
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*AccountOutput, error) {
	ownerID, err := auth.RequireOwner(ctx)
	if err != nil {
		return nil, err
	}

	account, err := parseCreateAccountInput(input)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.Time(ctx, "createAccountMs")
	created, err := h.AccountService.CreateAccount(ctx, ownerID, account)
	stopTimer()
	if err != nil {
		return nil, apiutil.Error(err, "failed to create account")
	}

	logging.Data(ctx, "accountID", created.ID.String())

	return &AccountOutput{Status: http.StatusCreated, Body: fromService(*created)}, nil
}
