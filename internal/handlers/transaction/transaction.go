// Package transaction exposes the ledger endpoints. Every operation is
// scoped to the authenticated user.
package transaction

import (
	"time"

	"github.com/carson-networks/budget-server/internal/service"
)

// Transaction is the API response model for a ledger entry.
type Transaction struct {
	ID         string  `json:"id" doc:"Transaction UUID"`
	UserID     string  `json:"user_id" doc:"Owning user UUID"`
	CategoryID *string `json:"category_id,omitempty" doc:"Optional category UUID"`
	Type       string  `json:"type" enum:"income,expense" doc:"Transaction type"`
	Amount     float64 `json:"amount" doc:"Amount as a JSON number"`
	Date       string  `json:"date" doc:"RFC3339 transaction date"`
	Note       *string `json:"note,omitempty" doc:"Optional free-form note"`
}

func transactionBody(t *service.Transaction) Transaction {
	out := Transaction{
		ID:     t.ID.String(),
		UserID: t.OwnerID.String(),
		Type:   t.Type,
		Amount: t.Amount.InexactFloat64(),
		Date:   t.TransactionDate.Format(time.RFC3339),
		Note:   t.Note,
	}
	if t.CategoryID != nil {
		id := t.CategoryID.String()
		out.CategoryID = &id
	}
	return out
}
