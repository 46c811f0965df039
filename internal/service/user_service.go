package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

const minPasswordLength = 6

// User is a registered user without credentials.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
}

// Session is a signed-in user and their bearer token.
type Session struct {
	User      User
	Token     string
	ExpiresAt time.Time
}

// UserService handles registration, sign in and profiles.
type UserService struct {
	storage *storage.Storage
	tokens  tokenIssuer
}

func NewUserService(store *storage.Storage, tokens tokenIssuer) *UserService {
	return &UserService{storage: store, tokens: tokens}
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user and signs them in.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*Session, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	_, err := s.storage.Users.FindByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, sqlconfig.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	row, err := s.storage.Users.Insert(ctx, &sqlconfig.UserCreate{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		// A concurrent registration can still win the race to the unique index.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return s.session(row)
}

// Login checks credentials and issues a token. Unknown emails and wrong
// passwords are indistinguishable.
func (s *UserService) Login(ctx context.Context, email, password string) (*Session, error) {
	row, err := s.storage.Users.FindByEmail(ctx, NormalizeEmail(email))
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(password, row.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.session(row)
}

// Profile returns the user with the given id.
func (s *UserService) Profile(ctx context.Context, userID uuid.UUID) (*User, error) {
	row, err := s.storage.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user := userFromStorage(row)
	return &user, nil
}

func (s *UserService) session(row *sqlconfig.User) (*Session, error) {
	token, expiresAt, err := s.tokens.Issue(row.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &Session{User: userFromStorage(row), Token: token, ExpiresAt: expiresAt}, nil
}

func userFromStorage(row *sqlconfig.User) User {
	return User{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		CreatedAt: row.CreatedAt,
	}
}
