package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-server/internal/storage"
	"github.com/carson-networks/budget-server/internal/storage/sqlconfig"
)

// CreateCategory inserts a new category. Created holds the stored row.
type CreateCategory struct {
	Create sqlconfig.CategoryCreate

	Created *sqlconfig.Category
}

func (a *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Categories.Insert(ctx, &a.Create)
	if err != nil {
		return err
	}
	a.Created = row
	return nil
}

// UpdateCategory merges the partial update into the category.
type UpdateCategory struct {
	ID     uuid.UUID
	Update sqlconfig.CategoryUpdate

	Modified int64
}

func (a *UpdateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	modified, err := writer.Categories.Update(ctx, a.ID, &a.Update)
	if err != nil {
		return err
	}
	a.Modified = modified
	return nil
}

// DeleteCategory physically removes the category.
type DeleteCategory struct {
	ID uuid.UUID

	Deleted int64
}

func (a *DeleteCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	deleted, err := writer.Categories.Delete(ctx, a.ID)
	if err != nil {
		return err
	}
	a.Deleted = deleted
	return nil
}
