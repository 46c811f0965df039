package user

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) Register(ctx context.Context, name, email, password string) (*service.Session, error) {
	args := m.Called(ctx, name, email, password)
	session, _ := args.Get(0).(*service.Session)
	return session, args.Error(1)
}

func (m *mockUserService) Login(ctx context.Context, email, password string) (*service.Session, error) {
	args := m.Called(ctx, email, password)
	session, _ := args.Get(0).(*service.Session)
	return session, args.Error(1)
}

func (m *mockUserService) Profile(ctx context.Context, userID uuid.UUID) (*service.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*service.User)
	return user, args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockUserService, caller uuid.UUID) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		if caller != uuid.Nil {
			ctx = huma.WithContext(ctx, auth.WithIdentity(ctx.Context(), auth.Identity{UserID: caller}))
		}
		next(ctx)
	})
	NewRegisterHandler(svc).Register(api)
	NewLoginHandler(svc).Register(api)
	NewProfileHandler(svc).Register(api)
	return api
}

func testSession() *service.Session {
	return &service.Session{
		User:      service.User{ID: uuid.Must(uuid.NewV4()), Name: "Ann", Email: "ann@example.com"},
		Token:     "signed.jwt.token",
		ExpiresAt: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestHTTP_Register_Success(t *testing.T) {
	svc := new(mockUserService)
	session := testSession()
	svc.On("Register", mock.Anything, "Ann", "ann@example.com", "hunter22").Return(session, nil)

	resp := newTestAPI(t, svc, uuid.Nil).Post("/v1/users/register", RegisterBody{
		Name:     "Ann",
		Email:    "ann@example.com",
		Password: "hunter22",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Session
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "signed.jwt.token", body.Token)
	assert.Equal(t, "2025-08-01T00:00:00Z", body.ExpiresAt)
	assert.Equal(t, session.User.ID.String(), body.User.ID)
	svc.AssertExpectations(t)
}

func TestHTTP_Register_EmailTaken(t *testing.T) {
	svc := new(mockUserService)
	svc.On("Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, service.ErrEmailTaken)

	resp := newTestAPI(t, svc, uuid.Nil).Post("/v1/users/register", RegisterBody{
		Name:     "Ann",
		Email:    "ann@example.com",
		Password: "hunter22",
	})

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestHTTP_Register_ShortPassword(t *testing.T) {
	svc := new(mockUserService)

	resp := newTestAPI(t, svc, uuid.Nil).Post("/v1/users/register", RegisterBody{
		Name:     "Ann",
		Email:    "ann@example.com",
		Password: "abc",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "Register")
}

func TestHTTP_Login_InvalidCredentials(t *testing.T) {
	svc := new(mockUserService)
	svc.On("Login", mock.Anything, "ann@example.com", "wrong").Return(nil, service.ErrInvalidCredentials)

	resp := newTestAPI(t, svc, uuid.Nil).Post("/v1/users/login", map[string]any{
		"email":    "ann@example.com",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestHTTP_Profile(t *testing.T) {
	svc := new(mockUserService)
	caller := uuid.Must(uuid.NewV4())
	svc.On("Profile", mock.Anything, caller).Return(&service.User{ID: caller, Name: "Ann"}, nil)

	resp := newTestAPI(t, svc, caller).Get("/v1/users/profile")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, caller.String(), body.ID)
}

func TestHTTP_Profile_Unauthenticated(t *testing.T) {
	svc := new(mockUserService)

	resp := newTestAPI(t, svc, uuid.Nil).Get("/v1/users/profile")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	svc.AssertNotCalled(t, "Profile")
}
