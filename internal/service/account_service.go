package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/events"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// AccountService handles account business logic.
type AccountService struct {
	storage *storage.Storage
	op      processor
	changes notifier
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage, op processor, changes notifier) *AccountService {
	return &AccountService{storage: store, op: op, changes: changes}
}

// CreateAccount creates a new account owned by ownerID.
func (s *AccountService) CreateAccount(ctx context.Context, ownerID uuid.UUID, account Account) (*Account, error) {
	if err := validateAccount(account.Name, account.Type); err != nil {
		return nil, err
	}

	action := &actions.CreateAccount{
		Create: sqlconfig.AccountCreate{
			OwnerID:     ownerID,
			Name:        strings.TrimSpace(account.Name),
			Type:        accountTypeToStorage(account.Type),
			SubType:     account.SubType,
			Balance:     account.Balance,
			Description: account.Description,
		},
	}
	if err := s.op.Process(ctx, action); err != nil {
		return nil, err
	}

	created := accountFromStorage(action.Created)
	s.changes.Notify(events.KindAccount, events.ActionCreated, ownerID, created.ID)
	return &created, nil
}

// GetAccount retrieves an account by ID.
func (s *AccountService) GetAccount(ctx context.Context, ownerID, id uuid.UUID) (*Account, error) {
	row, err := s.storage.Accounts.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	account := accountFromStorage(row)
	return &account, nil
}

// ListAccounts returns a page of accounts using cursor pagination.
func (s *AccountService) ListAccounts(ctx context.Context, ownerID uuid.UUID, cursor *Cursor) ([]Account, *Cursor, error) {
	limit, offset := cursor.bounds()

	rows, err := s.storage.Accounts.List(ctx, ownerID, &sqlconfig.AccountFilter{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, nil, err
	}

	rows, next := page(rows, limit, offset)
	accounts := make([]Account, len(rows))
	for i, row := range rows {
		accounts[i] = accountFromStorage(row)
	}

	return accounts, next, nil
}

// UpdateAccount applies the set fields of update.
func (s *AccountService) UpdateAccount(ctx context.Context, ownerID, id uuid.UUID, update AccountUpdate) (*Account, error) {
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
		}
		update.Name = &name
	}
	if update.Type != nil && !accountTypeToStorage(*update.Type).Valid() {
		return nil, fmt.Errorf("%w: unknown account type %d", ErrInvalidInput, *update.Type)
	}

	row, err := s.storage.Accounts.Update(ctx, ownerID, id, update.toStorage())
	if err != nil {
		return nil, err
	}

	s.changes.Notify(events.KindAccount, events.ActionUpdated, ownerID, id)
	account := accountFromStorage(row)
	return &account, nil
}

// DeleteAccount removes an account. Incomes and expenses that referenced it keep no account.
func (s *AccountService) DeleteAccount(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.storage.Accounts.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	s.changes.Notify(events.KindAccount, events.ActionDeleted, ownerID, id)
	return nil
}

func validateAccount(name string, accountType AccountType) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !accountTypeToStorage(accountType).Valid() {
		return fmt.Errorf("%w: unknown account type %d", ErrInvalidInput, accountType)
	}
	return nil
}
