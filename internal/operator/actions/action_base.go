package actions

import (
	"context"
	"errors"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// ErrInvalidReference is returned when a write points at a source, category or
// account the owner does not have.
var ErrInvalidReference = errors.New("invalid reference")

// IAction is one unit of work performed inside a single transaction.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

// referenceError turns a missing referenced row into ErrInvalidReference.
func referenceError(err error) error {
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return ErrInvalidReference
	}
	return err
}
