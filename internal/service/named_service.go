package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/events"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// Named is a category or an income source.
type Named struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
}

// NamedUpdate holds the fields to change. Nil fields are left alone.
type NamedUpdate struct {
	Name        *string
	Description *string
}

// NamedService manages categories or sources; the two behave the same apart
// from their table and list order.
type NamedService struct {
	table   sqlconfig.INamedTable
	kind    events.Kind
	changes notifier
}

func NewCategoryService(store *storage.Storage, changes notifier) *NamedService {
	return &NamedService{table: store.Categories, kind: events.KindCategory, changes: changes}
}

func NewSourceService(store *storage.Storage, changes notifier) *NamedService {
	return &NamedService{table: store.Sources, kind: events.KindSource, changes: changes}
}

func (s *NamedService) Create(ctx context.Context, ownerID uuid.UUID, name, description string) (*Named, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	row, err := s.table.Insert(ctx, &sqlconfig.NamedCreate{
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
	})
	if err != nil {
		return nil, err
	}

	s.changes.Notify(s.kind, events.ActionCreated, ownerID, row.ID)
	named := namedFromStorage(row)
	return &named, nil
}

func (s *NamedService) Get(ctx context.Context, ownerID, id uuid.UUID) (*Named, error) {
	row, err := s.table.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	named := namedFromStorage(row)
	return &named, nil
}

func (s *NamedService) List(ctx context.Context, ownerID uuid.UUID, cursor *Cursor) ([]Named, *Cursor, error) {
	limit, offset := cursor.bounds()

	rows, err := s.table.List(ctx, ownerID, &sqlconfig.NamedFilter{Limit: limit, Offset: offset})
	if err != nil {
		return nil, nil, err
	}

	rows, next := page(rows, limit, offset)
	out := make([]Named, len(rows))
	for i, row := range rows {
		out[i] = namedFromStorage(row)
	}
	return out, next, nil
}

func (s *NamedService) Update(ctx context.Context, ownerID, id uuid.UUID, update NamedUpdate) (*Named, error) {
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
		}
		update.Name = &name
	}

	row, err := s.table.Update(ctx, ownerID, id, &sqlconfig.NamedUpdate{
		Name:        omit.FromPtr(update.Name),
		Description: omit.FromPtr(update.Description),
	})
	if err != nil {
		return nil, err
	}

	s.changes.Notify(s.kind, events.ActionUpdated, ownerID, id)
	named := namedFromStorage(row)
	return &named, nil
}

// Delete removes the record. Transactions and budgets that referenced it lose the reference.
func (s *NamedService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.table.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	s.changes.Notify(s.kind, events.ActionDeleted, ownerID, id)
	return nil
}

func namedFromStorage(row *sqlconfig.Named) Named {
	return Named{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
	}
}
