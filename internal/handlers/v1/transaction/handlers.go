package transaction

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

type IDInput struct {
	ID string `path:"id" format:"uuid" doc:"UUID"`
}

// CreateBody is shared by incomes and expenses. Incomes require source_id,
// expenses require category_id.
type CreateBody struct {
	Amount      string `json:"amount" minLength:"1" doc:"Decimal amount, not negative"`
	Date        string `json:"date" minLength:"1" doc:"Day of the transaction (YYYY-MM-DD or RFC3339)"`
	SourceID    string `json:"source_id,omitempty" doc:"Income source UUID"`
	CategoryID  string `json:"category_id,omitempty" doc:"Expense category UUID"`
	AccountID   string `json:"account_id,omitempty" doc:"Account UUID"`
	Description string `json:"description,omitempty" doc:"Free-form description"`
}

type CreateInput struct {
	Body CreateBody
}

type UpdateBody struct {
	Amount      *string `json:"amount,omitempty" doc:"Decimal amount, not negative"`
	Date        *string `json:"date,omitempty" doc:"Day of the transaction"`
	SourceID    *string `json:"source_id,omitempty" doc:"Income source UUID"`
	CategoryID  *string `json:"category_id,omitempty" doc:"Expense category UUID"`
	AccountID   *string `json:"account_id,omitempty" doc:"Account UUID, empty string to clear"`
	Description *string `json:"description,omitempty" doc:"Free-form description"`
}

type UpdateInput struct {
	IDInput
	Body UpdateBody
}

type ListInput struct {
	apiutil.PageInput
	StartDate  string `query:"start_date" doc:"Inclusive first day (YYYY-MM-DD)"`
	EndDate    string `query:"end_date" doc:"Inclusive last day (YYYY-MM-DD)"`
	SourceID   string `query:"source_id" doc:"Only incomes from this source"`
	CategoryID string `query:"category_id" doc:"Only expenses in this category"`
}

type TransactionOutput struct {
	Status int
	Body   Transaction
}

type ListBody struct {
	Items      []Transaction   `json:"items"`
	NextCursor *apiutil.Cursor `json:"next_cursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

type ListOutput struct {
	Body ListBody
}

// Handler serves create, list, get, update and delete for incomes or expenses.
type Handler struct {
	Resource Resource
	Service  transactionService
}

func NewHandler(resource Resource, svc transactionService) *Handler {
	return &Handler{Resource: resource, Service: svc}
}

func (h *Handler) Register(api huma.API) {
	r := h.Resource
	itemPath := r.Path + "/{id}"

	huma.Register(api, huma.Operation{
		OperationID: "create-" + r.Singular,
		Method:      http.MethodPost,
		Path:        r.Path,
		Summary:     "Create an " + r.Singular,
		Description: "Records a new " + r.Singular + ". The " + r.RefField + " and optional account_id must belong to the caller.",
		Tags:        []string{r.Tag},
		Security:    auth.Secured,
	}, h.create)

	huma.Register(api, huma.Operation{
		OperationID: "list-" + r.Plural,
		Method:      http.MethodGet,
		Path:        r.Path,
		Summary:     "List " + r.Plural,
		Description: "Returns a page of " + r.Plural + ", newest date first, optionally limited to an inclusive date range.",
		Tags:        []string{r.Tag},
		Security:    auth.Secured,
	}, h.list)

	huma.Register(api, huma.Operation{
		OperationID: "get-" + r.Singular,
		Method:      http.MethodGet,
		Path:        itemPath,
		Summary:     "Get an " + r.Singular,
		Tags:        []string{r.Tag},
		Security:    auth.Secured,
	}, h.get)

	huma.Register(api, huma.Operation{
		OperationID: "update-" + r.Singular,
		Method:      http.MethodPut,
		Path:        itemPath,
		Summary:     "Update an " + r.Singular,
		Tags:        []string{r.Tag},
		Security:    auth.Secured,
	}, h.update)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-" + r.Singular,
		Method:        http.MethodDelete,
		Path:          itemPath,
		Summary:       "Delete an " + r.Singular,
		Tags:          []string{r.Tag},
		Security:      auth.Secured,
		DefaultStatus: http.StatusNoContent,
	}, h.delete)
}

func (h *Handler) parseCreateBody(body CreateBody) (service.TransactionInput, error) {
	amount, err := apiutil.ParseAmount(body.Amount, "amount")
	if err != nil {
		return service.TransactionInput{}, err
	}
	date, err := apiutil.ParseDate(body.Date, "date")
	if err != nil {
		return service.TransactionInput{}, err
	}
	ref, err := h.Resource.refValue(body.SourceID, body.CategoryID)
	if err != nil {
		return service.TransactionInput{}, err
	}
	if ref == "" {
		return service.TransactionInput{}, huma.NewError(http.StatusBadRequest, h.Resource.RefField+" is required")
	}
	refID, err := apiutil.ParseID(ref, h.Resource.RefField)
	if err != nil {
		return service.TransactionInput{}, err
	}
	accountID, err := apiutil.ParseOptionalID(body.AccountID, "account_id")
	if err != nil {
		return service.TransactionInput{}, err
	}

	return service.TransactionInput{
		Amount:      amount,
		OccurredOn:  date,
		RefID:       refID,
		AccountID:   accountID,
		Description: body.Description,
	}, nil
}

func (h *Handler) parseUpdateBody(body UpdateBody) (service.TransactionUpdate, error) {
	var update service.TransactionUpdate
	if body.Amount != nil {
		amount, err := apiutil.ParseAmount(*body.Amount, "amount")
		if err != nil {
			return update, err
		}
		update.Amount = &amount
	}
	if body.Date != nil {
		date, err := apiutil.ParseDate(*body.Date, "date")
		if err != nil {
			return update, err
		}
		update.OccurredOn = &date
	}

	var sourceID, categoryID string
	if body.SourceID != nil {
		sourceID = *body.SourceID
	}
	if body.CategoryID != nil {
		categoryID = *body.CategoryID
	}
	ref, err := h.Resource.refValue(sourceID, categoryID)
	if err != nil {
		return update, err
	}
	if ref != "" {
		refID, err := apiutil.ParseID(ref, h.Resource.RefField)
		if err != nil {
			return update, err
		}
		update.RefID = &refID
	}

	if body.AccountID != nil {
		accountID, err := apiutil.ParseOptionalID(*body.AccountID, "account_id")
		if err != nil {
			return update, err
		}
		update.AccountID = &accountID
	}
	update.Description = body.Description
	return update, nil
}

func (h *Handler) create(ctx context.Context, input *CreateInput) (*TransactionOutput, error) {
	ownerID, err := auth.RequireOwner(ctx)
	if err != nil {
		return nil, err
	}
	tx, err := h.parseCreateBody(input.Body)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.Time(ctx, "create"+h.Resource.Tag+"Ms")
	created, err := h.Service.CreateTransaction(ctx, ownerID, tx)
	stopTimer()
	if err != nil {
		return nil, apiutil.Error(err, "failed to create "+h.Resource.Singular)
	}

	logging.Data(ctx, h.Resource.Singular+"ID", created.ID.String())
	return &TransactionOutput{Status: http.StatusCreated, Body: fromService(*created)}, nil
}

func (h *Handler) list(ctx context.Context, input *ListInput) (*ListOutput, error) {
	ownerID, err := auth.RequireOwner(ctx)
	if err != nil {
		return nil, err
	}

	var query service.TransactionQuery
	if query.Start, err = apiutil.ParseOptionalDate(input.StartDate, "start_date"); err != nil {
		return nil, err
	}
	if query.End, err = apiutil.ParseOptionalDate(input.EndDate, "end_date"); err != nil {
		return nil, err
	}
	ref, err := h.Resource.refValue(input.SourceID, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if ref != "" {
		refID, err := apiutil.ParseID(ref, h.Resource.RefField)
		if err != nil {
			return nil, err
		}
		query.RefID = &refID
	}

	stopTimer := logging.Time(ctx, "list"+h.Resource.Tag+"Ms")
	txs, next, err := h.Service.ListTransactions(ctx, ownerID, query, input.Cursor())
	stopTimer()
	if err != nil {
		return nil, apiutil.Error(err, "failed to list "+h.Resource.Plural)
	}

	logging.Data(ctx, h.Resource.Singular+"Count", len(txs))

	body := ListBody{Items: make([]Transaction, len(txs)), NextCursor: apiutil.NextCursor(next)}
	for i, tx := range txs {
		body.Items[i] = fromService(tx)
	}
	return &ListOutput{Body: body}, nil
}

func (h *Handler) get(ctx context.Context, input *IDInput) (*TransactionOutput, error) {
	ownerID, id, err := h.owned(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	tx, err := h.Service.GetTransaction(ctx, ownerID, id)
	if err != nil {
		return nil, apiutil.Error(err, "failed to get "+h.Resource.Singular)
	}
	return &TransactionOutput{Status: http.StatusOK, Body: fromService(*tx)}, nil
}

func (h *Handler) update(ctx context.Context, input *UpdateInput) (*TransactionOutput, error) {
	ownerID, id, err := h.owned(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	update, err := h.parseUpdateBody(input.Body)
	if err != nil {
		return nil, err
	}

	tx, err := h.Service.UpdateTransaction(ctx, ownerID, id, update)
	if err != nil {
		return nil, apiutil.Error(err, "failed to update "+h.Resource.Singular)
	}
	return &TransactionOutput{Status: http.StatusOK, Body: fromService(*tx)}, nil
}

func (h *Handler) delete(ctx context.Context, input *IDInput) (*struct{}, error) {
	ownerID, id, err := h.owned(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := h.Service.DeleteTransaction(ctx, ownerID, id); err != nil {
		return nil, apiutil.Error(err, "failed to delete "+h.Resource.Singular)
	}
	return nil, nil
}

func (h *Handler) owned(ctx context.Context, rawID string) (ownerID, id uuid.UUID, err error) {
	if ownerID, err = auth.RequireOwner(ctx); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	if id, err = apiutil.ParseID(rawID, "id"); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return ownerID, id, nil
}
