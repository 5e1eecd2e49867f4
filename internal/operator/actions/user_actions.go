package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-server/internal/storage"
	"github.com/carson-networks/budget-server/internal/storage/sqlconfig"
)

// RegisterUser inserts a new user record. Created holds the stored row.
type RegisterUser struct {
	Create sqlconfig.UserCreate

	Created *sqlconfig.User
}

func (a *RegisterUser) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Users.Insert(ctx, &a.Create)
	if err != nil {
		return err
	}
	a.Created = row
	return nil
}

// UpdateUserName replaces a user's display name.
type UpdateUserName struct {
	ID   uuid.UUID
	Name string

	Modified int64
}

func (a *UpdateUserName) Perform(ctx context.Context, writer *storage.Writer) error {
	modified, err := writer.Users.UpdateName(ctx, a.ID, a.Name)
	if err != nil {
		return err
	}
	a.Modified = modified
	return nil
}

// UpdateUserPassword replaces a user's password hash. The old-password
// verification happens at the service layer before this action is enqueued.
type UpdateUserPassword struct {
	ID   uuid.UUID
	Hash []byte

	Modified int64
}

func (a *UpdateUserPassword) Perform(ctx context.Context, writer *storage.Writer) error {
	modified, err := writer.Users.UpdatePasswordHash(ctx, a.ID, a.Hash)
	if err != nil {
		return err
	}
	a.Modified = modified
	return nil
}
