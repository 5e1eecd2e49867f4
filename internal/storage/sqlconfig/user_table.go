package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ IUserTable = (*UsersTable)(nil)

var userColumns = []string{"id", "name", "email", "password_hash", "created_at"}

type UsersTable struct {
	recordTable[User]
}

func NewUsersTable(exec bob.Executor) *UsersTable {
	return &UsersTable{
		recordTable: newRecordTable[User](exec, "users", userColumns),
	}
}

// FindByID retrieves a user by primary key, or nil when absent.
func (t *UsersTable) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return t.findByID(ctx, id)
}

// FindByEmail retrieves a user by email, or nil when absent.
func (t *UsersTable) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := psql.Select(
		sm.Columns(anySlice(t.columns)...),
		sm.From(t.table),
		sm.Where(psql.Quote("email").EQ(psql.Arg(email))),
	)

	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[User]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates a new user and returns the stored row. The unique email
// index rejects duplicates at the database level.
func (t *UsersTable) Insert(ctx context.Context, create *UserCreate) (*User, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	return t.insertReturning(ctx, map[string]any{
		"id":            id,
		"name":          create.Name,
		"email":         create.Email,
		"password_hash": create.PasswordHash,
		"created_at":    time.Now().UTC(),
	})
}

// UpdateName replaces the user's display name.
func (t *UsersTable) UpdateName(ctx context.Context, id uuid.UUID, name string) (int64, error) {
	return t.updateByID(ctx, id, map[string]any{"name": name})
}

// UpdatePasswordHash replaces the stored password hash.
func (t *UsersTable) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash []byte) (int64, error) {
	return t.updateByID(ctx, id, map[string]any{"password_hash": hash})
}
