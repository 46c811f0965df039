// Package named serves the two user-defined label collections, categories and
// income sources, which share one shape and one set of operations.
package named

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// Resource describes one collection.
type Resource struct {
	Path     string
	Singular string
	Plural   string
	Tag      string
}

var (
	Categories = Resource{Path: "/v1/categories", Singular: "category", Plural: "categories", Tag: "Categories"}
	Sources    = Resource{Path: "/v1/sources", Singular: "source", Plural: "sources", Tag: "Sources"}
)

// Item is the API response model for a category or source.
type Item struct {
	ID          string `json:"id" doc:"UUID"`
	Name        string `json:"name" doc:"Name"`
	Description string `json:"description" doc:"Free-form description"`
	CreatedAt   string `json:"created_at" doc:"RFC3339 creation time"`
}

type namedService interface {
	Create(ctx context.Context, ownerID uuid.UUID, name, description string) (*service.Named, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*service.Named, error)
	List(ctx context.Context, ownerID uuid.UUID, cursor *service.Cursor) ([]service.Named, *service.Cursor, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, update service.NamedUpdate) (*service.Named, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

func fromService(n service.Named) Item {
	return Item{
		ID:          n.ID.String(),
		Name:        n.Name,
		Description: n.Description,
		CreatedAt:   n.CreatedAt.Format(time.RFC3339),
	}
}
