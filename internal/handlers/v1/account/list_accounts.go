package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// ListAccountsInput is the Huma input for listing accounts.
type ListAccountsInput struct {
	apiutil.PageInput
}

// ListAccountsResponseBody is the response body for listing accounts.
type ListAccountsResponseBody struct {
	Accounts   []Account       `json:"accounts" doc:"Page of accounts"`
	NextCursor *apiutil.Cursor `json:"next_cursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListAccountsOutput is the Huma output for listing accounts.
type ListAccountsOutput struct {
	Body ListAccountsResponseBody
}

// accountLister is the interface for listing accounts.
type accountLister interface {
	ListAccounts(ctx context.Context, ownerID uuid.UUID, cursor *service.Cursor) ([]service.Account, *service.Cursor, error)
}

// ListAccountsHandler handles GET /v1/accounts.
type ListAccountsHandler struct {
	AccountService accountLister
}

// NewListAccountsHandler creates a new ListAccountsHandler.
func NewListAccountsHandler(svc accountLister) *ListAccountsHandler {
	return &ListAccountsHandler{AccountService: svc}
}

// Register registers the list accounts endpoint with the Huma API.
func (h *ListAccountsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-accounts",
		Method:      http.MethodGet,
		Path:        "/v1/accounts",
		Summary:     "List accounts",
		Description: "Returns a paginated list of the caller's accounts ordered by name.",
		Tags:        []string{"Accounts"},
		Security:    auth.Secured,
	}, h.handle)
}

func (h *ListAccountsHandler) handle(ctx context.Context, input *ListAccountsInput) (*ListAccountsOutput, error) {
	ownerID, err := auth.RequireOwner(ctx)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.Time(ctx, "listAccountsMs")
	accounts, next, err := h.AccountService.ListAccounts(ctx, ownerID, input.Cursor())
	stopTimer()
	if err != nil {
		return nil, apiutil.Error(err, "failed to list accounts")
	}

	logging.Data(ctx, "accountCount", len(accounts))

	resp := ListAccountsResponseBody{
		Accounts:   make([]Account, len(accounts)),
		NextCursor: apiutil.NextCursor(next),
	}
	for i, acc := range accounts {
		resp.Accounts[i] = fromService(acc)
	}

	return &ListAccountsOutput{Body: resp}, nil
}
