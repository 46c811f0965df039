// Package budget serves budgets and their spending progress.
package budget

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// Budget is the API response model for a budget.
type Budget struct {
	ID          string  `json:"id" doc:"Budget UUID"`
	CategoryID  *string `json:"category_id" doc:"Category UUID, null for a budget over all expenses"`
	Amount      string  `json:"amount" doc:"Budgeted amount"`
	Description string  `json:"description" doc:"Free-form description"`
	StartDate   string  `json:"start_date" doc:"Inclusive first day"`
	EndDate     string  `json:"end_date" doc:"Inclusive last day"`
	CreatedAt   string  `json:"created_at" doc:"RFC3339 creation time"`
}

type IDInput struct {
	ID string `path:"id" format:"uuid" doc:"Budget UUID"`
}

type BudgetOutput struct {
	Status int
	Body   Budget
}

type budgetService interface {
	CreateBudget(ctx context.Context, ownerID uuid.UUID, input service.BudgetInput) (*service.Budget, error)
	GetBudget(ctx context.Context, ownerID, id uuid.UUID) (*service.Budget, error)
	ListBudgets(ctx context.Context, ownerID uuid.UUID, cursor *service.Cursor) ([]service.Budget, *service.Cursor, error)
	UpdateBudget(ctx context.Context, ownerID, id uuid.UUID, update service.BudgetUpdate) (*service.Budget, error)
	DeleteBudget(ctx context.Context, ownerID, id uuid.UUID) error
}

func fromService(b service.Budget) Budget {
	return Budget{
		ID:          b.ID.String(),
		CategoryID:  apiutil.NullableID(b.CategoryID),
		Amount:      b.Amount.String(),
		Description: b.Description,
		StartDate:   b.Window.StartString(),
		EndDate:     b.Window.EndString(),
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}
}
