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

// UpdateAccountInput is the Huma input for updating an account. Omitted
// fields are left unchanged.
type UpdateAccountInput struct {
	IDInput
	Body UpdateAccountBody
}

type UpdateAccountBody struct {
	Name        *string `json:"name,omitempty" minLength:"1" doc:"Account name"`
	Type        *int    `json:"type,omitempty" minimum:"0" maximum:"4" doc:"Account type"`
	SubType     *string `json:"sub_type,omitempty" doc:"Account sub-type"`
	Balance     *string `json:"balance,omitempty" doc:"Decimal balance"`
	Description *string `json:"description,omitempty" doc:"Free-form description"`
}

type accountUpdater interface {
	UpdateAccount(ctx context.Context, ownerID, id uuid.UUID, update service.AccountUpdate) (*service.Account, error)
}

// UpdateAccountHandler handles PUT /v1/accounts/{id}.
type UpdateAccountHandler struct {
	AccountService accountUpdater
}

func NewUpdateAccountHandler(svc accountUpdater) *UpdateAccountHandler {
	return &UpdateAccountHandler{AccountService: svc}
}

func (h *UpdateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-account",
		Method:      http.MethodPut,
		Path:        "/v1/accounts/{id}",
		Summary:     "Update an account",
		Tags:        []string{"Accounts"},
		Security:    auth.Secured,
	}, h.handle)
}

func parseUpdateAccountBody(body UpdateAccountBody) (service.AccountUpdate, error) {
	update := service.AccountUpdate{
		Name:        body.Name,
		SubType:     body.SubType,
		Description: body.Description,
	}
	if body.Type != nil {
		t := service.AccountType(*body.Type)
		update.Type = &t
	}
	if body.Balance != nil {
		balance, err := decimal.NewFromString(*body.Balance)
		if err != nil {
			return service.AccountUpdate{}, huma.NewError(http.StatusBadRequest, "invalid balance", err)
		}
		update.Balance = &balance
	}
	return update, nil
}

func (h *UpdateAccountHandler) handle(ctx context.Context, input *UpdateAccountInput) (*AccountOutput, error) {
	ownerID, err := auth.RequireOwner(ctx)
	if err != nil {
		return nil, err
	}
	id, err := apiutil.ParseID(input.ID, "id")
	if err != nil {
		return nil, err
	}
	update, err := parseUpdateAccountBody(input.Body)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.Time(ctx, "updateAccountMs")
	account, err := h.AccountService.UpdateAccount(ctx, ownerID, id, update)
	stopTimer()
	if err != nil {
		return nil, apiutil.Error(err, "failed to update account")
	}
	return &AccountOutput{Status: http.StatusOK, Body: fromService(*account)}, nil
}
