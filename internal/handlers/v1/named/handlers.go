package named

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type IDInput struct {
	ID string `path:"id" format:"uuid" doc:"UUID"`
}

type CreateBody struct {
	Name        string `json:"name" minLength:"1" doc:"Name"`
	Description string `json:"description,omitempty" doc:"Free-form description"`
}

type CreateInput struct {
	Body CreateBody
}

type UpdateBody struct {
	Name        *string `json:"name,omitempty" minLength:"1" doc:"Name"`
	Description *string `json:"description,omitempty" doc:"Free-form description"`
}

type UpdateInput struct {
	IDInput
	Body UpdateBody
}

type ListInput struct {
	apiutil.PageInput
}

type ItemOutput struct {
	Status int
	Body   Item
}

type ListBody struct {
	Items      []Item          `json:"items"`
	NextCursor *apiutil.Cursor `json:"next_cursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

type ListOutput struct {
	Body ListBody
}

// Handler serves create, list, get, update and delete for one Resource.
type Handler struct {
	Resource Resource
	Service  namedService
}

func NewHandler(resource Resource, svc namedService) *Handler {
	return &Handler{Resource: resource, Service: svc}
}

func (h *Handler) operation(id, method, path, summary string) huma.Operation {
	return huma.Operation{
		OperationID: id + "-" + h.Resource.Singular,
		Method:      method,
		Path:        path,
		Summary:     summary + " " + h.Resource.Singular,
		Tags:        []string{h.Resource.Tag},
		Security:    auth.Secured,
	}
}

// Register registers all five endpoints of the resource.
func (h *Handler) Register(api huma.API) {
	itemPath := h.Resource.Path + "/{id}"

	huma.Register(api, h.operation("create", http.MethodPost, h.Resource.Path, "Create a"), h.create)

	list := h.operation("list", http.MethodGet, h.Resource.Path, "List")
	list.OperationID = "list-" + h.Resource.Plural
	list.Summary = "List " + h.Resource.Plural
	huma.Register(api, list, h.list)

	huma.Register(api, h.operation("get", http.MethodGet, itemPath, "Get a"), h.get)
	huma.Register(api, h.operation("update", http.MethodPut, itemPath, "Update a"), h.update)

	remove := h.operation("delete", http.MethodDelete, itemPath, "Delete a")
	remove.DefaultStatus = http.StatusNoContent
	huma.Register(api, remove, h.delete)
}

func (h *Handler) create(ctx context.Context, input *CreateInput) (*ItemOutput, error) {
	ownerID, err := auth.RequireOwner(ctx)
	if err != nil {
		return nil, err
	}

	stop := logging.Time(ctx, "create"+h.Resource.Tag+"Ms")
	item, err := h.Service.Create(ctx, ownerID, input.Body.Name, input.Body.Description)
	stop()
	if err != nil {
		return nil, apiutil.Error(err, "failed to create "+h.Resource.Singular)
	}

	logging.Data(ctx, h.Resource.Singular+"ID", item.ID.String())
	return &ItemOutput{Status: http.StatusCreated, Body: fromService(*item)}, nil
}

func (h *Handler) list(ctx context.Context, input *ListInput) (*ListOutput, error) {
	ownerID, err := auth.RequireOwner(ctx)
	if err != nil {
		return nil, err
	}

	items, next, err := h.Service.List(ctx, ownerID, input.Cursor())
	if err != nil {
		return nil, apiutil.Error(err, "failed to list "+h.Resource.Plural)
	}

	body := ListBody{Items: make([]Item, len(items)), NextCursor: apiutil.NextCursor(next)}
	for i, item := range items {
		body.Items[i] = fromService(item)
	}
	return &ListOutput{Body: body}, nil
}

func (h *Handler) get(ctx context.Context, input *IDInput) (*ItemOutput, error) {
	ownerID, err := auth.RequireOwner(ctx)
	if err != nil {
		return nil, err
	}
	id, err := apiutil.ParseID(input.ID, "id")
	if err != nil {
		return nil, err
	}

	item, err := h.Service.Get(ctx, ownerID, id)
	if err != nil {
		return nil, apiutil.Error(err, "failed to get "+h.Resource.Singular)
	}
	return &ItemOutput{Status: http.StatusOK, Body: fromService(*item)}, nil
}

func (h *Handler) update(ctx context.Context, input *UpdateInput) (*ItemOutput, error) {
	ownerID, err := auth.RequireOwner(ctx)
	if err != nil {
		return nil, err
	}
	id, err := apiutil.ParseID(input.ID, "id")
	if err != nil {
		return nil, err
	}

	item, err := h.Service.Update(ctx, ownerID, id, service.NamedUpdate{
		Name:        input.Body.Name,
		Description: input.Body.Description,
	})
	if err != nil {
		return nil, apiutil.Error(err, "failed to update "+h.Resource.Singular)
	}
	return &ItemOutput{Status: http.StatusOK, Body: fromService(*item)}, nil
}

func (h *Handler) delete(ctx context.Context, input *IDInput) (*struct{}, error) {
	ownerID, err := auth.RequireOwner(ctx)
	if err != nil {
		return nil, err
	}
	id, err := apiutil.ParseID(input.ID, "id")
	if err != nil {
		return nil, err
	}

	if err := h.Service.Delete(ctx, ownerID, id); err != nil {
		return nil, apiutil.Error(err, "failed to delete "+h.Resource.Singular)
	}
	return nil, nil
}
