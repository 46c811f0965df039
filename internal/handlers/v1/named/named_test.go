package named

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type mockNamedService struct {
	mock.Mock
}

func (m *mockNamedService) Create(ctx context.Context, ownerID uuid.UUID, name, description string) (*service.Named, error) {
	args := m.Called(ctx, ownerID, name, description)
	n, _ := args.Get(0).(*service.Named)
	return n, args.Error(1)
}

func (m *mockNamedService) Get(ctx context.Context, ownerID, id uuid.UUID) (*service.Named, error) {
	args := m.Called(ctx, ownerID, id)
	n, _ := args.Get(0).(*service.Named)
	return n, args.Error(1)
}

func (m *mockNamedService) List(ctx context.Context, ownerID uuid.UUID, cursor *service.Cursor) ([]service.Named, *service.Cursor, error) {
	args := m.Called(ctx, ownerID, cursor)
	items, _ := args.Get(0).([]service.Named)
	next, _ := args.Get(1).(*service.Cursor)
	return items, next, args.Error(2)
}

func (m *mockNamedService) Update(ctx context.Context, ownerID, id uuid.UUID, update service.NamedUpdate) (*service.Named, error) {
	args := m.Called(ctx, ownerID, id, update)
	n, _ := args.Get(0).(*service.Named)
	return n, args.Error(1)
}

func (m *mockNamedService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

var owner = uuid.Must(uuid.NewV4())

func newTestAPI(t *testing.T, categories, sources *mockNamedService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, auth.WithIdentity(ctx.Context(), auth.Identity{UserID: owner})))
	})
	NewHandler(Categories, categories).Register(api)
	NewHandler(Sources, sources).Register(api)
	return api
}

func TestHTTP_CreateCategory(t *testing.T) {
	categories, sources := new(mockNamedService), new(mockNamedService)
	id := uuid.Must(uuid.NewV4())
	categories.On("Create", mock.Anything, owner, "Food", "").Return(&service.Named{ID: id, Name: "Food"}, nil)

	resp := newTestAPI(t, categories, sources).Post("/v1/categories", CreateBody{Name: "Food"})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Item
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, id.String(), body.ID)
	sources.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHTTP_CreateSource_EmptyName(t *testing.T) {
	categories, sources := new(mockNamedService), new(mockNamedService)

	resp := newTestAPI(t, categories, sources).Post("/v1/sources", CreateBody{})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestHTTP_ListSources(t *testing.T) {
	categories, sources := new(mockNamedService), new(mockNamedService)
	sources.On("List", mock.Anything, owner, (*service.Cursor)(nil)).Return([]service.Named{{Name: "Salary"}, {Name: "Bonus"}}, nil, nil)

	resp := newTestAPI(t, categories, sources).Get("/v1/sources")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Items, 2)
	assert.Equal(t, "Salary", body.Items[0].Name)
	assert.Nil(t, body.NextCursor)
}

func TestHTTP_UpdateCategory_NotFound(t *testing.T) {
	categories, sources := new(mockNamedService), new(mockNamedService)
	id := uuid.Must(uuid.NewV4())
	categories.On("Update", mock.Anything, owner, id, mock.Anything).Return(nil, service.ErrNotFound)

	resp := newTestAPI(t, categories, sources).Put("/v1/categories/"+id.String(), map[string]any{"name": "Groceries"})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_DeleteSource(t *testing.T) {
	categories, sources := new(mockNamedService), new(mockNamedService)
	id := uuid.Must(uuid.NewV4())
	sources.On("Delete", mock.Anything, owner, id).Return(nil)

	resp := newTestAPI(t, categories, sources).Delete("/v1/sources/" + id.String())

	assert.Equal(t, http.StatusNoContent, resp.Code)
	sources.AssertExpectations(t)
}
