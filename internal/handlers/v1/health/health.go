// Package health serves the unauthenticated liveness probe.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

type HealthBody struct {
	Status    string `json:"status" example:"ok"`
	Timestamp string `json:"timestamp" doc:"RFC3339 server time"`
}

type HealthOutput struct {
	Body HealthBody
}

// Handler handles GET /v1/health. It does not touch the database; /status does.
type Handler struct {
	Now func() time.Time
}

func NewHandler() *Handler {
	return &Handler{Now: time.Now}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/v1/health",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, h.handle)
}

func (h *Handler) handle(_ context.Context, _ *struct{}) (*HealthOutput, error) {
	return &HealthOutput{Body: HealthBody{
		Status:    "ok",
		Timestamp: h.Now().UTC().Format(time.RFC3339),
	}}, nil
}
