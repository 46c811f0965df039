package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

// User represents a user record.
type User struct {
	ID           uuid.UUID `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// UserCreate is the input for creating a new user.
type UserCreate struct {
	Name         string
	Email        string
	PasswordHash string
}

// IUserTable defines the interface for user storage operations.
//
//go:generate mockery --name IUserTable --inpackage --with-expecter --filename mock_IUserTable.go
type IUserTable interface {
	Insert(ctx context.Context, create *UserCreate) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
}

var _ IUserTable = (*UsersTable)(nil)

var userColumns = []any{"id", "name", "email", "password_hash", "created_at"}

// UsersTable provides access to the users table.
type UsersTable struct {
	exec bob.Executor
}

// NewUsersTable creates a UsersTable bound to exec.
func NewUsersTable(exec bob.Executor) *UsersTable {
	return &UsersTable{exec: exec}
}

// Insert creates a user. A duplicate email surfaces as the driver's unique violation.
func (t *UsersTable) Insert(ctx context.Context, create *UserCreate) (*User, error) {
	q := psql.Insert(
		im.Into("users", "name", "email", "password_hash"),
		im.Values(psql.Arg(create.Name), psql.Arg(create.Email), psql.Arg(create.PasswordHash)),
		im.Returning(userColumns...),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[*User]())
}

// FindByEmail looks a user up by normalized email.
func (t *UsersTable) FindByEmail(ctx context.Context, email string) (*User, error) {
	q := psql.Select(
		sm.Columns(userColumns...),
		sm.From("users"),
		sm.Where(psql.Quote("email").EQ(psql.Arg(email))),
	)
	user, err := bob.One(ctx, t.exec, q, scan.StructMapper[*User]())
	return user, notFound(err)
}

// FindByID retrieves a user by primary key.
func (t *UsersTable) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	q := psql.Select(
		sm.Columns(userColumns...),
		sm.From("users"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	user, err := bob.One(ctx, t.exec, q, scan.StructMapper[*User]())
	return user, notFound(err)
}
