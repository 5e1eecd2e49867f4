package sqlconfig

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a transaction record.
type Transaction struct {
	ID              uuid.UUID       `db:"id"`
	OwnerID         uuid.UUID       `db:"owner_id"`
	CategoryID      uuid.NullUUID   `db:"category_id"`
	Type            string          `db:"type"`
	Amount          decimal.Decimal `db:"amount"`
	TransactionDate time.Time       `db:"transaction_date"`
	Note            sql.NullString  `db:"note"`
	CreatedAt       time.Time       `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	OwnerID         uuid.UUID
	CategoryID      uuid.NullUUID
	Type            string
	Amount          decimal.Decimal
	TransactionDate time.Time
	Note            sql.NullString
}

// TransactionUpdate carries the partial fields of a merge-style update.
// Nil fields are left untouched.
type TransactionUpdate struct {
	CategoryID      *uuid.UUID
	Type            *string
	Amount          *decimal.Decimal
	TransactionDate *time.Time
	Note            *string
}

// SetColumns returns the column/value pairs the update would apply.
// An empty map means the update has no effect.
func (u *TransactionUpdate) SetColumns() map[string]any {
	set := map[string]any{}
	if u.CategoryID != nil {
		set["category_id"] = *u.CategoryID
	}
	if u.Type != nil {
		set["type"] = *u.Type
	}
	if u.Amount != nil {
		set["amount"] = *u.Amount
	}
	if u.TransactionDate != nil {
		set["transaction_date"] = *u.TransactionDate
	}
	if u.Note != nil {
		set["note"] = *u.Note
	}
	return set
}

// TransactionFilter specifies filters for listing transactions.
// OwnerID is mandatory; listing is always owner-scoped.
type TransactionFilter struct {
	OwnerID  uuid.UUID
	DateFrom *time.Time // inclusive
	DateTo   *time.Time // exclusive
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation without changing callers.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
