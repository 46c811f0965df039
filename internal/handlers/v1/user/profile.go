package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// ProfileOutput is the response for reading the caller's profile.
type ProfileOutput struct {
	Body User
}

type profileReader interface {
	Profile(ctx context.Context, userID uuid.UUID) (*service.User, error)
}

// ProfileHandler handles GET /v1/users/profile.
type ProfileHandler struct {
	Users profileReader
}

func NewProfileHandler(users profileReader) *ProfileHandler {
	return &ProfileHandler{Users: users}
}

func (h *ProfileHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/v1/users/profile",
		Summary:     "Get the caller's profile",
		Tags:        []string{"Users"},
		Security:    auth.Secured,
	}, h.handle)
}

func (h *ProfileHandler) handle(ctx context.Context, _ *struct{}) (*ProfileOutput, error) {
	ownerID, err := auth.RequireOwner(ctx)
	if err != nil {
		return nil, err
	}

	user, err := h.Users.Profile(ctx, ownerID)
	if err != nil {
		return nil, apiutil.Error(err, "failed to load profile")
	}
	return &ProfileOutput{Body: fromService(*user)}, nil
}
