// Package events streams an owner's data changes as server-sent events.
package events

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/sse"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/events"
)

type StreamInput struct {
	Kinds []string `query:"kinds" enum:"account,category,source,income,expense,budget,report" doc:"Entity kinds to receive, all kinds when omitted"`
}

// ChangeEvent is the data of one "change" event.
type ChangeEvent struct {
	Kind   string `json:"kind"`
	Action string `json:"action"`
	ID     string `json:"id"`
	At     string `json:"at" doc:"RFC3339 time of the change"`
}

type subscriber interface {
	Subscribe(owner uuid.UUID, kinds ...events.Kind) *events.Subscription
}

// StreamHandler handles GET /v1/events.
type StreamHandler struct {
	Broker subscriber
}

func NewStreamHandler(broker subscriber) *StreamHandler {
	return &StreamHandler{Broker: broker}
}

func (h *StreamHandler) Register(api huma.API) {
	sse.Register(api, huma.Operation{
		OperationID: "stream-events",
		Method:      http.MethodGet,
		Path:        "/v1/events",
		Summary:     "Stream data changes",
		Description: "Sends a change event whenever one of the caller's records of the requested kinds is created, updated or deleted.",
		Tags:        []string{"Events"},
		Security:    auth.Secured,
	}, map[string]any{
		"change": ChangeEvent{},
	}, h.handle)
}

// kindsOf converts the query values, which the enum tag has already validated.
func kindsOf(values []string) []events.Kind {
	kinds := make([]events.Kind, len(values))
	for i, v := range values {
		kinds[i] = events.Kind(v)
	}
	return kinds
}

func (h *StreamHandler) handle(ctx context.Context, input *StreamInput, send sse.Sender) {
	ownerID, err := auth.RequireOwner(ctx)
	if err != nil {
		return
	}
	sub := h.Broker.Subscribe(ownerID, kindsOf(input.Kinds)...)
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case change, ok := <-sub.C:
			if !ok {
				return
			}
			err := send.Data(ChangeEvent{
				Kind:   string(change.Kind),
				Action: string(change.Action),
				ID:     change.ID.String(),
				At:     change.At.Format(time.RFC3339),
			})
			if err != nil {
				return
			}
		}
	}
}
