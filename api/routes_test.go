package api

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/events"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// newTestRest wires the real router against a database that is never
// reached: sql.Open does not connect.
func newTestRest(t *testing.T) *Rest {
	t.Helper()
	db, err := sql.Open("postgres", "postgres://nobody@127.0.0.1:1/none?sslmode=disable")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger, _ := test.NewNullLogger()
	store := storage.New(db)
	broker := events.NewBroker(logger)
	tokens := auth.NewIssuer("test-secret", time.Hour)

	return &Rest{
		Logger:         logger,
		Port:           "0",
		AllowedOrigins: []string{"https://app.example.com"},
		Storage:        store,
		Service:        service.NewService(store, operator.NewOperatorDelegator(store, 1), broker, tokens),
		Broker:         broker,
		Tokens:         tokens,
	}
}

func serve(h http.Handler, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHandler_PublicRoutes(t *testing.T) {
	h := newTestRest(t).Handler()

	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/v1/health", nil).Code)
	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/metrics", nil).Code)
	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/openapi.json", nil).Code)
}

func TestHandler_BuildsWithoutSchemaCollisions(t *testing.T) {
	rest := newTestRest(t)

	assert.NotPanics(t, func() { rest.Handler() })
}

type openAPIDoc struct {
	Paths map[string]map[string]struct {
		RequestBody struct {
			Content map[string]struct {
				Schema struct {
					Ref string `json:"$ref"`
				} `json:"schema"`
			} `json:"content"`
		} `json:"requestBody"`
	} `json:"paths"`
	Components struct {
		Schemas map[string]json.RawMessage `json:"schemas"`
	} `json:"components"`
}

func TestHandler_OpenAPISchemasPerPackage(t *testing.T) {
	resp := serve(newTestRest(t).Handler(), http.MethodGet, "/openapi.json", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var doc openAPIDoc
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))

	for _, name := range []string{"TransactionCreateBody", "NamedCreateBody", "CreateBudgetBody", "CreateAccountBody"} {
		assert.Contains(t, doc.Components.Schemas, name)
	}
	for _, path := range []string{"/v1/incomes", "/v1/expenses"} {
		ref := doc.Paths[path]["post"].RequestBody.Content["application/json"].Schema.Ref
		assert.Equal(t, "#/components/schemas/TransactionCreateBody", ref, path)
	}
	assert.Equal(t, "#/components/schemas/NamedCreateBody",
		doc.Paths["/v1/categories"]["post"].RequestBody.Content["application/json"].Schema.Ref)
}

func TestHandler_ProtectedRoutesNeedToken(t *testing.T) {
	h := newTestRest(t).Handler()

	for _, target := range []string{"/v1/accounts", "/v1/incomes", "/v1/reports/chart", "/v1/budgets", "/v1/events"} {
		assert.Equal(t, http.StatusUnauthorized, serve(h, http.MethodGet, target, nil).Code, target)
	}
}

func TestHandler_ValidTokenReachesHandler(t *testing.T) {
	rest := newTestRest(t)
	h := rest.Handler()
	token, _, err := rest.Tokens.Issue(uuid.Must(uuid.NewV4()))
	require.NoError(t, err)

	// An inverted range is rejected before the store is queried.
	resp := serve(h, http.MethodGet, "/v1/reports/chart?start_date=2025-04-01&end_date=2025-03-01",
		map[string]string{"Authorization": "Bearer " + token})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandler_CORSPreflight(t *testing.T) {
	h := newTestRest(t).Handler()

	resp := serve(h, http.MethodOptions, "/v1/accounts", map[string]string{
		"Origin":                        "https://app.example.com",
		"Access-Control-Request-Method": "POST",
	})

	assert.Equal(t, "https://app.example.com", resp.Header().Get("Access-Control-Allow-Origin"))
}
