package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/budget-server/internal/storage/sqlconfig"
)

// Writer exposes the table gateways bound to a single transaction. The
// interface-typed fields let action tests substitute mocks without a
// database.
type Writer struct {
	tx           *bob.Tx
	Users        sqlconfig.IUserTable
	Transactions sqlconfig.ITransactionTable
	Categories   sqlconfig.ICategoryTable
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:           &tx,
		Users:        sqlconfig.NewUsersTable(tx),
		Transactions: sqlconfig.NewTransactionsTable(tx),
		Categories:   sqlconfig.NewCategoriesTable(tx),
	}
}

func (w *Writer) Commit() error {
	if w.tx == nil {
		return nil
	}
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	if w.tx == nil {
		return nil
	}
	return w.tx.Rollback(context.Background())
}
