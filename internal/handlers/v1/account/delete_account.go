package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apiutil"
)

type accountDeleter interface {
	DeleteAccount(ctx context.Context, ownerID, id uuid.UUID) error
}

// DeleteAccountHandler handles DELETE /v1/accounts/{id}.
type DeleteAccountHandler struct {
	AccountService accountDeleter
}

func NewDeleteAccountHandler(svc accountDeleter) *DeleteAccountHandler {
	return &DeleteAccountHandler{AccountService: svc}
}

func (h *DeleteAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-account",
		Method:        http.MethodDelete,
		Path:          "/v1/accounts/{id}",
		Summary:       "Delete an account",
		Tags:          []string{"Accounts"},
		Security:      auth.Secured,
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteAccountHandler) handle(ctx context.Context, input *IDInput) (*struct{}, error) {
	ownerID, err := auth.RequireOwner(ctx)
	if err != nil {
		return nil, err
	}
	id, err := apiutil.ParseID(input.ID, "id")
	if err != nil {
		return nil, err
	}

	if err := h.AccountService.DeleteAccount(ctx, ownerID, id); err != nil {
		return nil, apiutil.Error(err, "failed to delete account")
	}
	return nil, nil
}
