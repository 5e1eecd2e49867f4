package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-server/internal/storage"
	"github.com/carson-networks/budget-server/internal/storage/sqlconfig"
)

// CreateTransaction inserts a new transaction. Created holds the stored row.
type CreateTransaction struct {
	Create sqlconfig.TransactionCreate

	Created *sqlconfig.Transaction
}

func (a *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Transactions.Insert(ctx, &a.Create)
	if err != nil {
		return err
	}
	a.Created = row
	return nil
}

// UpdateTransaction merges the partial update into the transaction.
// Modified holds the matched-row count; zero means the record vanished
// between the caller's ownership check and this write.
type UpdateTransaction struct {
	ID     uuid.UUID
	Update sqlconfig.TransactionUpdate

	Modified int64
}

func (a *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	modified, err := writer.Transactions.Update(ctx, a.ID, &a.Update)
	if err != nil {
		return err
	}
	a.Modified = modified
	return nil
}

// DeleteTransaction physically removes the transaction.
type DeleteTransaction struct {
	ID uuid.UUID

	Deleted int64
}

func (a *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	deleted, err := writer.Transactions.Delete(ctx, a.ID)
	if err != nil {
		return err
	}
	a.Deleted = deleted
	return nil
}
