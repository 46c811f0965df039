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

type Progress struct {
	Budget      Budget `json:"budget"`
	Spent       string `json:"spent" doc:"Expenses in the budget window"`
	Remaining   string `json:"remaining" doc:"Amount minus spent, negative when over budget"`
	PercentUsed string `json:"percent_used" doc:"Spent as a whole percent of the amount"`
}

type ProgressOutput struct {
	Body Progress
}

type progressGetter interface {
	Progress(ctx context.Context, ownerID, id uuid.UUID) (*service.BudgetProgress, error)
}

// ProgressHandler handles GET /v1/budgets/{id}/progress.
type ProgressHandler struct {
	BudgetService progressGetter
}

func NewProgressHandler(svc progressGetter) *ProgressHandler {
	return &ProgressHandler{BudgetService: svc}
}

func (h *ProgressHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-budget-progress",
		Method:      http.MethodGet,
		Path:        "/v1/budgets/{id}/progress",
		Summary:     "Get budget progress",
		Description: "Sums the expenses in the budget window, limited to the budget's category when it has one.",
		Tags:        []string{"Budgets"},
		Security:    auth.Secured,
	}, h.handle)
}

func (h *ProgressHandler) handle(ctx context.Context, input *IDInput) (*ProgressOutput, error) {
	ownerID, id, err := owned(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.Time(ctx, "budgetProgressMs")
	progress, err := h.BudgetService.Progress(ctx, ownerID, id)
	stopTimer()
	if err != nil {
		return nil, apiutil.Error(err, "failed to compute budget progress")
	}

	return &ProgressOutput{Body: Progress{
		Budget:      fromService(progress.Budget),
		Spent:       progress.Progress.Spent.String(),
		Remaining:   progress.Progress.Remaining.String(),
		PercentUsed: progress.Progress.PercentUsed.String(),
	}}, nil
}
