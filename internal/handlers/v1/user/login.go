package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// LoginInput is the Huma input for signing in.
type LoginInput struct {
	Body struct {
		Email    string `json:"email" doc:"Email address"`
		Password string `json:"password" doc:"Password"`
	}
}

type authenticator interface {
	Login(ctx context.Context, email, password string) (*service.Session, error)
}

// LoginHandler handles POST /v1/users/login.
type LoginHandler struct {
	Users authenticator
}

func NewLoginHandler(users authenticator) *LoginHandler {
	return &LoginHandler{Users: users}
}

func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login-user",
		Method:      http.MethodPost,
		Path:        "/v1/users/login",
		Summary:     "Sign in",
		Description: "Checks the credentials and returns a bearer token.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*SessionOutput, error) {
	session, err := h.Users.Login(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, apiutil.Error(err, "failed to sign in")
	}

	logging.Data(ctx, "userID", session.User.ID.String())
	return &SessionOutput{Status: http.StatusOK, Body: sessionFromService(session)}, nil
}
