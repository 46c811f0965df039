package budget

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/report"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type mockBudgetService struct {
	mock.Mock
}

func (m *mockBudgetService) CreateBudget(ctx context.Context, ownerID uuid.UUID, input service.BudgetInput) (*service.Budget, error) {
	args := m.Called(ctx, ownerID, input)
	b, _ := args.Get(0).(*service.Budget)
	return b, args.Error(1)
}

func (m *mockBudgetService) GetBudget(ctx context.Context, ownerID, id uuid.UUID) (*service.Budget, error) {
	args := m.Called(ctx, ownerID, id)
	b, _ := args.Get(0).(*service.Budget)
	return b, args.Error(1)
}

func (m *mockBudgetService) ListBudgets(ctx context.Context, ownerID uuid.UUID, cursor *service.Cursor) ([]service.Budget, *service.Cursor, error) {
	args := m.Called(ctx, ownerID, cursor)
	budgets, _ := args.Get(0).([]service.Budget)
	next, _ := args.Get(1).(*service.Cursor)
	return budgets, next, args.Error(2)
}

func (m *mockBudgetService) UpdateBudget(ctx context.Context, ownerID, id uuid.UUID, update service.BudgetUpdate) (*service.Budget, error) {
	args := m.Called(ctx, ownerID, id, update)
	b, _ := args.Get(0).(*service.Budget)
	return b, args.Error(1)
}

func (m *mockBudgetService) DeleteBudget(ctx context.Context, ownerID, id uuid.UUID) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

func (m *mockBudgetService) Progress(ctx context.Context, ownerID, id uuid.UUID) (*service.BudgetProgress, error) {
	args := m.Called(ctx, ownerID, id)
	p, _ := args.Get(0).(*service.BudgetProgress)
	return p, args.Error(1)
}

var owner = uuid.Must(uuid.NewV4())

func newTestAPI(t *testing.T, svc *mockBudgetService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, auth.WithIdentity(ctx.Context(), auth.Identity{UserID: owner})))
	})
	NewHandler(svc).Register(api)
	NewProgressHandler(svc).Register(api)
	return api
}

func march() report.Window {
	return report.Window{
		Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestParseCreateBudgetBody(t *testing.T) {
	input, err := parseCreateBudgetBody(CreateBudgetBody{Amount: "300", StartDate: "2025-03-01", EndDate: "2025-03-31"})

	require.NoError(t, err)
	assert.False(t, input.CategoryID.Valid)
	assert.True(t, decimal.NewFromInt(300).Equal(input.Amount))
	assert.Equal(t, march().Start, input.Start)
	assert.Equal(t, march().End, input.End)
}

func TestParseUpdateBudgetBody_ClearCategory(t *testing.T) {
	empty := ""

	update, err := parseUpdateBudgetBody(UpdateBudgetBody{CategoryID: &empty})

	require.NoError(t, err)
	require.NotNil(t, update.CategoryID)
	assert.False(t, update.CategoryID.Valid)
	assert.Nil(t, update.Start)
}

func TestHTTP_CreateBudget(t *testing.T) {
	svc := new(mockBudgetService)
	id := uuid.Must(uuid.NewV4())
	svc.On("CreateBudget", mock.Anything, owner, mock.Anything).
		Return(&service.Budget{ID: id, Amount: decimal.NewFromInt(300), Window: march()}, nil)

	resp := newTestAPI(t, svc).Post("/v1/budgets", CreateBudgetBody{Amount: "300", StartDate: "2025-03-01", EndDate: "2025-03-31"})

	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	var body Budget
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "2025-03-01", body.StartDate)
	assert.Equal(t, "2025-03-31", body.EndDate)
	assert.Nil(t, body.CategoryID)
}

func TestHTTP_CreateBudget_InvertedWindow(t *testing.T) {
	svc := new(mockBudgetService)
	svc.On("CreateBudget", mock.Anything, owner, mock.Anything).Return(nil, report.ErrInvalidRange)

	resp := newTestAPI(t, svc).Post("/v1/budgets", CreateBudgetBody{Amount: "300", StartDate: "2025-04-01", EndDate: "2025-03-01"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_ListBudgets(t *testing.T) {
	svc := new(mockBudgetService)
	svc.On("ListBudgets", mock.Anything, owner, (*service.Cursor)(nil)).Return([]service.Budget{{Window: march()}}, nil, nil)

	resp := newTestAPI(t, svc).Get("/v1/budgets")

	require.Equal(t, http.StatusOK, resp.Code)
	var body ListBudgetsBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Budgets, 1)
}

func TestHTTP_DeleteBudget_NotFound(t *testing.T) {
	svc := new(mockBudgetService)
	id := uuid.Must(uuid.NewV4())
	svc.On("DeleteBudget", mock.Anything, owner, id).Return(service.ErrNotFound)

	resp := newTestAPI(t, svc).Delete("/v1/budgets/" + id.String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_BudgetProgress(t *testing.T) {
	svc := new(mockBudgetService)
	id := uuid.Must(uuid.NewV4())
	svc.On("Progress", mock.Anything, owner, id).Return(&service.BudgetProgress{
		Budget: service.Budget{ID: id, Amount: decimal.NewFromInt(200), Window: march()},
		Progress: report.BudgetProgress{
			Budget:      decimal.NewFromInt(200),
			Spent:       decimal.NewFromInt(250),
			Remaining:   decimal.NewFromInt(-50),
			PercentUsed: decimal.NewFromInt(125),
		},
	}, nil)

	resp := newTestAPI(t, svc).Get("/v1/budgets/" + id.String() + "/progress")

	require.Equal(t, http.StatusOK, resp.Code)
	var body Progress
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "250", body.Spent)
	assert.Equal(t, "-50", body.Remaining)
	assert.Equal(t, "125", body.PercentUsed)
	assert.Equal(t, id.String(), body.Budget.ID)
}
