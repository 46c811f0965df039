package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// RegisterInput is the Huma input for registering a user.
type RegisterInput struct {
	Body RegisterBody
}

// RegisterBody is the request body for registering a user.
type RegisterBody struct {
	Name     string `json:"name" minLength:"1" doc:"Display name"`
	Email    string `json:"email" format:"email" doc:"Email address, unique per user"`
	Password string `json:"password" minLength:"6" doc:"Password"`
}

// SessionOutput is the response for register and login.
type SessionOutput struct {
	Status int
	Body   Session
}

type registerer interface {
	Register(ctx context.Context, name, email, password string) (*service.Session, error)
}

// RegisterHandler handles POST /v1/users/register.
type RegisterHandler struct {
	Users registerer
}

func NewRegisterHandler(users registerer) *RegisterHandler {
	return &RegisterHandler{Users: users}
}

func (h *RegisterHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "register-user",
		Method:      http.MethodPost,
		Path:        "/v1/users/register",
		Summary:     "Register a user",
		Description: "Creates a user and returns a bearer token for it.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *RegisterHandler) handle(ctx context.Context, input *RegisterInput) (*SessionOutput, error) {
	stop := logging.Time(ctx, "registerMs")
	session, err := h.Users.Register(ctx, input.Body.Name, input.Body.Email, input.Body.Password)
	stop()
	if err != nil {
		return nil, apiutil.Error(err, "failed to register user")
	}

	logging.Data(ctx, "userID", session.User.ID.String())
	return &SessionOutput{Status: http.StatusCreated, Body: sessionFromService(session)}, nil
}
