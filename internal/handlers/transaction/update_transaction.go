package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-server/internal/handlers/authn"
	"github.com/carson-networks/budget-server/internal/handlers/httperr"
	"github.com/carson-networks/budget-server/internal/service"
)

// UpdateTransactionBody is the request body for a partial update. Absent
// fields are left untouched; a body with no fields is rejected.
type UpdateTransactionBody struct {
	CategoryID *string  `json:"category_id,omitempty" doc:"New category UUID"`
	Type       *string  `json:"type,omitempty" enum:"income,expense" doc:"New transaction type"`
	Amount     *float64 `json:"amount,omitempty" doc:"New amount"`
	Date       *string  `json:"date,omitempty" doc:"New RFC3339 transaction date"`
	Note       *string  `json:"note,omitempty" doc:"New note"`
}

// UpdateTransactionInput is the Huma input for updating a transaction.
type UpdateTransactionInput struct {
	ID   string `path:"id" doc:"Transaction UUID"`
	Body UpdateTransactionBody
}

// UpdateTransactionOutput is the Huma output for updating a transaction.
type UpdateTransactionOutput struct {
	Body Transaction
}

// transactionUpdater is the interface for updating transactions.
type transactionUpdater interface {
	Update(ctx context.Context, callerID, id uuid.UUID, update *service.TransactionUpdate) (*service.Transaction, error)
}

// UpdateTransactionHandler handles PUT /transactions/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/transactions/{id}",
		Summary:     "Update transaction",
		Description: "Applies a partial update to one of the calling user's transactions.",
		Tags:        []string{"Transactions"},
		Security:    authn.Security,
	}, h.handle)
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	subject, ok := authn.Subject(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "missing bearer token")
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}

	update := &service.TransactionUpdate{
		Type: input.Body.Type,
		Note: input.Body.Note,
	}
	if input.Body.CategoryID != nil {
		categoryID, err := uuid.FromString(*input.Body.CategoryID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid category_id", err)
		}
		update.CategoryID = &categoryID
	}
	if input.Body.Amount != nil {
		amount := decimal.NewFromFloat(*input.Body.Amount)
		update.Amount = &amount
	}
	if input.Body.Date != nil {
		date, err := time.Parse(time.RFC3339, *input.Body.Date)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
		update.TransactionDate = &date
	}

	updated, err := h.TransactionService.Update(ctx, subject, id, update)
	if err != nil {
		return nil, httperr.FromService(err, "failed to update transaction")
	}

	return &UpdateTransactionOutput{Body: transactionBody(updated)}, nil
}
