package budget

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

type CreateBudgetBody struct {
	CategoryID  string `json:"category_id,omitempty" doc:"Category UUID, omit to budget all expenses"`
	Amount      string `json:"amount" minLength:"1" doc:"Budgeted amount, not negative"`
	Description string `json:"description,omitempty" doc:"Free-form description"`
	StartDate   string `json:"start_date" minLength:"1" doc:"Inclusive first day (YYYY-MM-DD)"`
	EndDate     string `json:"end_date" minLength:"1" doc:"Inclusive last day (YYYY-MM-DD)"`
}

type CreateBudgetInput struct {
	Body CreateBudgetBody
}

type UpdateBudgetBody struct {
	CategoryID  *string `json:"category_id,omitempty" doc:"Category UUID, empty string to budget all expenses"`
	Amount      *string `json:"amount,omitempty" doc:"Budgeted amount"`
	Description *string `json:"description,omitempty" doc:"Free-form description"`
	StartDate   *string `json:"start_date,omitempty" doc:"Inclusive first day"`
	EndDate     *string `json:"end_date,omitempty" doc:"Inclusive last day"`
}

type UpdateBudgetInput struct {
	IDInput
	Body UpdateBudgetBody
}

type ListBudgetsInput struct {
	apiutil.PageInput
}

type ListBudgetsBody struct {
	Budgets    []Budget        `json:"budgets"`
	NextCursor *apiutil.Cursor `json:"next_cursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

type ListBudgetsOutput struct {
	Body ListBudgetsBody
}

// Handler serves budget CRUD.
type Handler struct {
	BudgetService budgetService
}

func NewHandler(svc budgetService) *Handler {
	return &Handler{BudgetService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-budget",
		Method:      http.MethodPost,
		Path:        "/v1/budgets",
		Summary:     "Create a budget",
		Tags:        []string{"Budgets"},
		Security:    auth.Secured,
	}, h.create)
	huma.Register(api, huma.Operation{
		OperationID: "list-budgets",
		Method:      http.MethodGet,
		Path:        "/v1/budgets",
		Summary:     "List budgets",
		Description: "Returns a page of budgets, latest start date first.",
		Tags:        []string{"Budgets"},
		Security:    auth.Secured,
	}, h.list)
	huma.Register(api, huma.Operation{
		OperationID: "get-budget",
		Method:      http.MethodGet,
		Path:        "/v1/budgets/{id}",
		Summary:     "Get a budget",
		Tags:        []string{"Budgets"},
		Security:    auth.Secured,
	}, h.get)
	huma.Register(api, huma.Operation{
		OperationID: "update-budget",
		Method:      http.MethodPut,
		Path:        "/v1/budgets/{id}",
		Summary:     "Update a budget",
		Tags:        []string{"Budgets"},
		Security:    auth.Secured,
	}, h.update)
	huma.Register(api, huma.Operation{
		OperationID:   "delete-budget",
		Method:        http.MethodDelete,
		Path:          "/v1/budgets/{id}",
		Summary:       "Delete a budget",
		Tags:          []string{"Budgets"},
		Security:      auth.Secured,
		DefaultStatus: http.StatusNoContent,
	}, h.delete)
}

func parseCreateBudgetBody(body CreateBudgetBody) (service.BudgetInput, error) {
	categoryID, err := apiutil.ParseOptionalID(body.CategoryID, "category_id")
	if err != nil {
		return service.BudgetInput{}, err
	}
	amount, err := apiutil.ParseAmount(body.Amount, "amount")
	if err != nil {
		return service.BudgetInput{}, err
	}
	start, err := apiutil.ParseDate(body.StartDate, "start_date")
	if err != nil {
		return service.BudgetInput{}, err
	}
	end, err := apiutil.ParseDate(body.EndDate, "end_date")
	if err != nil {
		return service.BudgetInput{}, err
	}
	return service.BudgetInput{
		CategoryID:  categoryID,
		Amount:      amount,
		Description: body.Description,
		Start:       start,
		End:         end,
	}, nil
}

func parseUpdateBudgetBody(body UpdateBudgetBody) (service.BudgetUpdate, error) {
	update := service.BudgetUpdate{Description: body.Description}
	if body.CategoryID != nil {
		categoryID, err := apiutil.ParseOptionalID(*body.CategoryID, "category_id")
		if err != nil {
			return update, err
		}
		update.CategoryID = &categoryID
	}
	if body.Amount != nil {
		amount, err := apiutil.ParseAmount(*body.Amount, "amount")
		if err != nil {
			return update, err
		}
		update.Amount = &amount
	}
	if body.StartDate != nil {
		start, err := apiutil.ParseDate(*body.StartDate, "start_date")
		if err != nil {
			return update, err
		}
		update.Start = &start
	}
	if body.EndDate != nil {
		end, err := apiutil.ParseDate(*body.EndDate, "end_date")
		if err != nil {
			return update, err
		}
		update.End = &end
	}
	return update, nil
}

func (h *Handler) create(ctx context.Context, input *CreateBudgetInput) (*BudgetOutput, error) {
	ownerID, err := auth.RequireOwner(ctx)
	if err != nil {
		return nil, err
	}
	budget, err := parseCreateBudgetBody(input.Body)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.Time(ctx, "createBudgetMs")
	created, err := h.BudgetService.CreateBudget(ctx, ownerID, budget)
	stopTimer()
	if err != nil {
		return nil, apiutil.Error(err, "failed to create budget")
	}

	logging.Data(ctx, "budgetID", created.ID.String())
	return &BudgetOutput{Status: http.StatusCreated, Body: fromService(*created)}, nil
}

func (h *Handler) list(ctx context.Context, input *ListBudgetsInput) (*ListBudgetsOutput, error) {
	ownerID, err := auth.RequireOwner(ctx)
	if err != nil {
		return nil, err
	}

	budgets, next, err := h.BudgetService.ListBudgets(ctx, ownerID, input.Cursor())
	if err != nil {
		return nil, apiutil.Error(err, "failed to list budgets")
	}

	body := ListBudgetsBody{Budgets: make([]Budget, len(budgets)), NextCursor: apiutil.NextCursor(next)}
	for i, b := range budgets {
		body.Budgets[i] = fromService(b)
	}
	return &ListBudgetsOutput{Body: body}, nil
}

func (h *Handler) get(ctx context.Context, input *IDInput) (*BudgetOutput, error) {
	ownerID, id, err := owned(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	budget, err := h.BudgetService.GetBudget(ctx, ownerID, id)
	if err != nil {
		return nil, apiutil.Error(err, "failed to get budget")
	}
	return &BudgetOutput{Status: http.StatusOK, Body: fromService(*budget)}, nil
}

func (h *Handler) update(ctx context.Context, input *UpdateBudgetInput) (*BudgetOutput, error) {
	ownerID, id, err := owned(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	update, err := parseUpdateBudgetBody(input.Body)
	if err != nil {
		return nil, err
	}

	budget, err := h.BudgetService.UpdateBudget(ctx, ownerID, id, update)
	if err != nil {
		return nil, apiutil.Error(err, "failed to update budget")
	}
	return &BudgetOutput{Status: http.StatusOK, Body: fromService(*budget)}, nil
}

func (h *Handler) delete(ctx context.Context, input *IDInput) (*struct{}, error) {
	ownerID, id, err := owned(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := h.BudgetService.DeleteBudget(ctx, ownerID, id); err != nil {
		return nil, apiutil.Error(err, "failed to delete budget")
	}
	return nil, nil
}

func owned(ctx context.Context, rawID string) (uuid.UUID, uuid.UUID, error) {
	ownerID, err := auth.RequireOwner(ctx)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	id, err := apiutil.ParseID(rawID, "id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return ownerID, id, nil
}
