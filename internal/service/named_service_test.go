package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/events"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

func TestCategoryCreate_TrimsName(t *testing.T) {
	svc, m, changes := newTestService(t)
	owner := newID()
	row := &sqlconfig.Named{ID: newID(), OwnerID: owner, Name: "Food"}

	m.categories.EXPECT().Insert(mock.Anything, &sqlconfig.NamedCreate{OwnerID: owner, Name: "Food", Description: "groceries"}).Return(row, nil)

	category, err := svc.Categories.Create(context.Background(), owner, "  Food ", "groceries")

	require.NoError(t, err)
	assert.Equal(t, row.ID, category.ID)
	assert.Equal(t, events.KindCategory, changes.all()[0].Kind)
}

func TestSourceCreate_RequiresName(t *testing.T) {
	svc, _, changes := newTestService(t)

	_, err := svc.Sources.Create(context.Background(), newID(), " ", "")

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, changes.all())
}

func TestSourceList_UsesSourcesTable(t *testing.T) {
	svc, m, _ := newTestService(t)
	owner := newID()

	m.sources.EXPECT().List(mock.Anything, owner, &sqlconfig.NamedFilter{Limit: defaultLimit}).
		Return([]*sqlconfig.Named{{ID: newID(), Name: "Salary"}}, nil)

	sources, next, err := svc.Sources.List(context.Background(), owner, nil)

	require.NoError(t, err)
	assert.Nil(t, next)
	require.Len(t, sources, 1)
	assert.Equal(t, "Salary", sources[0].Name)
}

func TestCategoryUpdate(t *testing.T) {
	svc, m, changes := newTestService(t)
	owner, id := newID(), newID()
	description := "eating out"

	m.categories.EXPECT().Update(mock.Anything, owner, id, mock.MatchedBy(func(u *sqlconfig.NamedUpdate) bool {
		d, _ := u.Description.Get()
		return u.Name.IsUnset() && d == description
	})).Return(&sqlconfig.Named{ID: id, Name: "Food", Description: description}, nil)

	category, err := svc.Categories.Update(context.Background(), owner, id, NamedUpdate{Description: &description})

	require.NoError(t, err)
	assert.Equal(t, description, category.Description)
	assert.Equal(t, events.ActionUpdated, changes.all()[0].Action)
}

func TestCategoryDelete_NotFound(t *testing.T) {
	svc, m, changes := newTestService(t)

	m.categories.EXPECT().Delete(mock.Anything, mock.Anything, mock.Anything).Return(sqlconfig.ErrNotFound)

	err := svc.Categories.Delete(context.Background(), newID(), newID())

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, changes.all())
}
