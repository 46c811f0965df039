package transaction

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
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-tracker/internal/report"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) CreateTransaction(ctx context.Context, ownerID uuid.UUID, input service.TransactionInput) (*service.Transaction, error) {
	args := m.Called(ctx, ownerID, input)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) GetTransaction(ctx context.Context, ownerID, id uuid.UUID) (*service.Transaction, error) {
	args := m.Called(ctx, ownerID, id)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) ListTransactions(ctx context.Context, ownerID uuid.UUID, query service.TransactionQuery, cursor *service.Cursor) ([]service.Transaction, *service.Cursor, error) {
	args := m.Called(ctx, ownerID, query, cursor)
	txs, _ := args.Get(0).([]service.Transaction)
	next, _ := args.Get(1).(*service.Cursor)
	return txs, next, args.Error(2)
}

func (m *mockTransactionService) UpdateTransaction(ctx context.Context, ownerID, id uuid.UUID, update service.TransactionUpdate) (*service.Transaction, error) {
	args := m.Called(ctx, ownerID, id, update)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) DeleteTransaction(ctx context.Context, ownerID, id uuid.UUID) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

var owner = uuid.Must(uuid.NewV4())

func newTestAPI(t *testing.T, incomes, expenses *mockTransactionService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, auth.WithIdentity(ctx.Context(), auth.Identity{UserID: owner})))
	})
	NewHandler(Incomes, incomes).Register(api)
	NewHandler(Expenses, expenses).Register(api)
	return api
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// -- body parsing --

func TestParseCreateBody_Expense(t *testing.T) {
	category, account := uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4())
	h := NewHandler(Expenses, nil)

	input, err := h.parseCreateBody(CreateBody{
		Amount:      "12.50",
		Date:        "2025-03-04",
		CategoryID:  category.String(),
		AccountID:   account.String(),
		Description: "lunch",
	})

	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("12.5").Equal(input.Amount))
	assert.Equal(t, day(2025, 3, 4), input.OccurredOn)
	assert.Equal(t, category, input.RefID)
	assert.Equal(t, uuid.NullUUID{UUID: account, Valid: true}, input.AccountID)
}

func TestParseCreateBody_WrongReference(t *testing.T) {
	h := NewHandler(Incomes, nil)

	_, err := h.parseCreateBody(CreateBody{Amount: "1", Date: "2025-03-04", CategoryID: uuid.Must(uuid.NewV4()).String()})
	assert.Error(t, err)

	_, err = h.parseCreateBody(CreateBody{Amount: "1", Date: "2025-03-04"})
	assert.Error(t, err)
}

func TestParseCreateBody_NegativeAmount(t *testing.T) {
	h := NewHandler(Incomes, nil)

	_, err := h.parseCreateBody(CreateBody{Amount: "-5", Date: "2025-03-04", SourceID: uuid.Must(uuid.NewV4()).String()})

	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.GetStatus())
}

func TestParseUpdateBody_ClearsAccount(t *testing.T) {
	h := NewHandler(Expenses, nil)
	empty := ""

	update, err := h.parseUpdateBody(UpdateBody{AccountID: &empty})

	require.NoError(t, err)
	require.NotNil(t, update.AccountID)
	assert.False(t, update.AccountID.Valid)
	assert.Nil(t, update.Amount)
	assert.Nil(t, update.RefID)
}

// -- HTTP --

func TestHTTP_CreateIncome(t *testing.T) {
	incomes, expenses := new(mockTransactionService), new(mockTransactionService)
	source, id := uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4())
	incomes.On("CreateTransaction", mock.Anything, owner, mock.MatchedBy(func(in service.TransactionInput) bool {
		return in.RefID == source && in.Amount.Equal(decimal.NewFromInt(2500))
	})).Return(&service.Transaction{
		ID:         id,
		Kind:       report.KindIncome,
		Amount:     decimal.NewFromInt(2500),
		OccurredOn: day(2025, 3, 1),
		RefID:      uuid.NullUUID{UUID: source, Valid: true},
		RefName:    "Salary",
	}, nil)

	resp := newTestAPI(t, incomes, expenses).Post("/v1/incomes", map[string]any{
		"amount":    "2500",
		"date":      "2025-03-01",
		"source_id": source.String(),
	})

	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	var body Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "income", body.Type)
	assert.Equal(t, "2025-03-01", body.Date)
	assert.Equal(t, "Salary", body.Source)
	require.NotNil(t, body.SourceID)
	assert.Equal(t, source.String(), *body.SourceID)
	assert.Nil(t, body.CategoryID)
	assert.Nil(t, body.AccountID)
}

func TestHTTP_CreateExpense_ForeignCategory(t *testing.T) {
	incomes, expenses := new(mockTransactionService), new(mockTransactionService)
	expenses.On("CreateTransaction", mock.Anything, owner, mock.Anything).Return(nil, service.ErrInvalidReference)

	resp := newTestAPI(t, incomes, expenses).Post("/v1/expenses", map[string]any{
		"amount":      "9.99",
		"date":        "2025-03-01",
		"category_id": uuid.Must(uuid.NewV4()).String(),
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_ListExpenses_DateFilter(t *testing.T) {
	incomes, expenses := new(mockTransactionService), new(mockTransactionService)
	start, end := day(2025, 3, 1), day(2025, 3, 31)
	expenses.On("ListTransactions", mock.Anything, owner, mock.MatchedBy(func(q service.TransactionQuery) bool {
		return q.Start != nil && q.Start.Equal(start) && q.End != nil && q.End.Equal(end) && q.RefID == nil
	}), &service.Cursor{Position: 0, Limit: 5}).
		Return([]service.Transaction{{Kind: report.KindExpense, Amount: decimal.NewFromInt(3), OccurredOn: day(2025, 3, 9)}}, &service.Cursor{Position: 5, Limit: 5}, nil)

	resp := newTestAPI(t, incomes, expenses).Get("/v1/expenses?start_date=2025-03-01&end_date=2025-03-31&limit=5")

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body ListBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Items, 1)
	assert.Equal(t, "3", body.Items[0].Amount)
	assert.Equal(t, &apiutil.Cursor{Position: 5, Limit: 5}, body.NextCursor)
}

func TestHTTP_ListIncomes_InvalidRange(t *testing.T) {
	incomes, expenses := new(mockTransactionService), new(mockTransactionService)
	incomes.On("ListTransactions", mock.Anything, owner, mock.Anything, mock.Anything).Return(nil, nil, report.ErrInvalidRange)

	resp := newTestAPI(t, incomes, expenses).Get("/v1/incomes?start_date=2025-04-01&end_date=2025-03-01")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_ListIncomes_BadDate(t *testing.T) {
	incomes, expenses := new(mockTransactionService), new(mockTransactionService)

	resp := newTestAPI(t, incomes, expenses).Get("/v1/incomes?start_date=yesterday")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	incomes.AssertNotCalled(t, "ListTransactions", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHTTP_GetExpense_NotFound(t *testing.T) {
	incomes, expenses := new(mockTransactionService), new(mockTransactionService)
	id := uuid.Must(uuid.NewV4())
	expenses.On("GetTransaction", mock.Anything, owner, id).Return(nil, service.ErrNotFound)

	resp := newTestAPI(t, incomes, expenses).Get("/v1/expenses/" + id.String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_UpdateIncome(t *testing.T) {
	incomes, expenses := new(mockTransactionService), new(mockTransactionService)
	id := uuid.Must(uuid.NewV4())
	incomes.On("UpdateTransaction", mock.Anything, owner, id, mock.MatchedBy(func(u service.TransactionUpdate) bool {
		return u.Amount != nil && u.Amount.Equal(decimal.NewFromInt(10)) && u.OccurredOn == nil
	})).Return(&service.Transaction{ID: id, Kind: report.KindIncome, Amount: decimal.NewFromInt(10)}, nil)

	resp := newTestAPI(t, incomes, expenses).Put("/v1/incomes/"+id.String(), map[string]any{"amount": "10"})

	assert.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
}

func TestHTTP_DeleteExpense(t *testing.T) {
	incomes, expenses := new(mockTransactionService), new(mockTransactionService)
	id := uuid.Must(uuid.NewV4())
	expenses.On("DeleteTransaction", mock.Anything, owner, id).Return(nil)

	resp := newTestAPI(t, incomes, expenses).Delete("/v1/expenses/" + id.String())

	assert.Equal(t, http.StatusNoContent, resp.Code)
	expenses.AssertExpectations(t)
}
