package service

import (
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-server/internal/storage/sqlconfig"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

func validTransactionType(t string) bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is the service view of a ledger entry.
type Transaction struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	CategoryID      *uuid.UUID
	Type            string
	Amount          decimal.Decimal
	TransactionDate time.Time
	Note            *string
}

// TransactionCreate carries the fields for a new ledger entry.
type TransactionCreate struct {
	OwnerID         uuid.UUID
	CategoryID      *uuid.UUID
	Type            string
	Amount          decimal.Decimal
	TransactionDate time.Time
	Note            *string
}

// TransactionUpdate carries a partial update. Nil fields are left untouched.
type TransactionUpdate struct {
	CategoryID      *uuid.UUID
	Type            *string
	Amount          *decimal.Decimal
	TransactionDate *time.Time
	Note            *string
}

// TransactionFilter narrows a listing. Month 0 means no date filter; Year 0
// defaults to the current year.
type TransactionFilter struct {
	Month int
	Year  int
}

func transactionFromStorage(t *sqlconfig.Transaction) *Transaction {
	out := &Transaction{
		ID:              t.ID,
		OwnerID:         t.OwnerID,
		Type:            t.Type,
		Amount:          t.Amount,
		TransactionDate: t.TransactionDate,
	}
	if t.CategoryID.Valid {
		id := t.CategoryID.UUID
		out.CategoryID = &id
	}
	if t.Note.Valid {
		note := t.Note.String
		out.Note = &note
	}
	return out
}

func transactionCreateToStorage(c *TransactionCreate) *sqlconfig.TransactionCreate {
	out := &sqlconfig.TransactionCreate{
		OwnerID:         c.OwnerID,
		Type:            c.Type,
		Amount:          c.Amount,
		TransactionDate: c.TransactionDate,
	}
	if c.CategoryID != nil {
		out.CategoryID = uuid.NullUUID{UUID: *c.CategoryID, Valid: true}
	}
	if c.Note != nil {
		out.Note = sql.NullString{String: *c.Note, Valid: true}
	}
	return out
}

func transactionUpdateToStorage(u *TransactionUpdate) *sqlconfig.TransactionUpdate {
	return &sqlconfig.TransactionUpdate{
		CategoryID:      u.CategoryID,
		Type:            u.Type,
		Amount:          u.Amount,
		TransactionDate: u.TransactionDate,
		Note:            u.Note,
	}
}

// monthRange returns the half-open [start, end) window covering the given
// month. A zero year falls back to the year of now, so December listings
// roll the end bound into January of the next year.
func monthRange(month, year int, now time.Time) (time.Time, time.Time) {
	if year == 0 {
		year = now.Year()
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
