package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type accountGetter interface {
	GetAccount(ctx context.Context, ownerID, id uuid.UUID) (*service.Account, error)
}

// GetAccountHandler handles GET /v1/accounts/{id}.
type GetAccountHandler struct {
	AccountService accountGetter
}

func NewGetAccountHandler(svc accountGetter) *GetAccountHandler {
	return &GetAccountHandler{AccountService: svc}
}

func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/v1/accounts/{id}",
		Summary:     "Get an account",
		Tags:        []string{"Accounts"},
		Security:    auth.Secured,
	}, h.handle)
}

func (h *GetAccountHandler) handle(ctx context.Context, input *IDInput) (*AccountOutput, error) {
	ownerID, err := auth.RequireOwner(ctx)
	if err != nil {
		return nil, err
	}
	id, err := apiutil.ParseID(input.ID, "id")
	if err != nil {
		return nil, err
	}

	account, err := h.AccountService.GetAccount(ctx, ownerID, id)
	if err != nil {
		return nil, apiutil.Error(err, "failed to get account")
	}
	return &AccountOutput{Status: http.StatusOK, Body: fromService(*account)}, nil
}
