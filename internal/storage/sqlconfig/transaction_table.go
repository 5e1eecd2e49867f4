package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
)

var _ ITransactionTable = (*TransactionsTable)(nil)

var transactionColumns = []string{
	"id", "owner_id", "category_id", "type", "amount",
	"transaction_date", "note", "created_at",
}

type TransactionsTable struct {
	recordTable[Transaction]
}

func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{
		recordTable: newRecordTable[Transaction](exec, "transactions", transactionColumns),
	}
}

// FindByID retrieves a transaction by primary key. No ownership filtering
// happens here; callers compare owner_id themselves.
func (t *TransactionsTable) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return t.findByID(ctx, id)
}

// Insert creates a new transaction and returns the stored row.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	return t.insertReturning(ctx, map[string]any{
		"id":               id,
		"owner_id":         create.OwnerID,
		"category_id":      create.CategoryID,
		"type":             create.Type,
		"amount":           create.Amount,
		"transaction_date": create.TransactionDate,
		"note":             create.Note,
		"created_at":       time.Now().UTC(),
	})
}

// List returns the owner's transactions matching the filter, in insertion order.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	whereMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(filter.OwnerID))),
	}
	if filter.DateFrom != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("transaction_date").GTE(psql.Arg(*filter.DateFrom))))
	}
	if filter.DateTo != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("transaction_date").LT(psql.Arg(*filter.DateTo))))
	}

	return t.selectWhere(ctx, whereMods...)
}

// Update merges the non-nil fields into the transaction and returns the
// matched-row count.
func (t *TransactionsTable) Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) (int64, error) {
	return t.updateByID(ctx, id, update.SetColumns())
}

// Delete removes the transaction and returns the deleted-row count.
func (t *TransactionsTable) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return t.deleteByID(ctx, id)
}
