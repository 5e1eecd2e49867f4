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

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	UserID     string  `json:"user_id" required:"true" doc:"Owning user UUID, must match the caller"`
	CategoryID *string `json:"category_id,omitempty" doc:"Optional category UUID"`
	Type       string  `json:"type" required:"true" enum:"income,expense" doc:"Transaction type"`
	Amount     float64 `json:"amount" required:"true" doc:"Amount as a JSON number"`
	Date       string  `json:"date" required:"true" doc:"RFC3339 transaction date"`
	Note       *string `json:"note,omitempty" doc:"Optional free-form note"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body Transaction
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	Create(ctx context.Context, callerID uuid.UUID, create *service.TransactionCreate) (*service.Transaction, error)
}

// CreateTransactionHandler handles POST /transactions.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/transactions",
		Summary:     "Create transaction",
		Description: "Records a new transaction for the calling user.",
		Tags:        []string{"Transactions"},
		Security:    authn.Security,
	}, h.handle)
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	subject, ok := authn.Subject(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "missing bearer token")
	}

	ownerID, err := uuid.FromString(input.Body.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid user_id", err)
	}
	date, err := time.Parse(time.RFC3339, input.Body.Date)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid date", err)
	}

	create := &service.TransactionCreate{
		OwnerID:         ownerID,
		Type:            input.Body.Type,
		Amount:          decimal.NewFromFloat(input.Body.Amount),
		TransactionDate: date,
		Note:            input.Body.Note,
	}
	if input.Body.CategoryID != nil {
		categoryID, err := uuid.FromString(*input.Body.CategoryID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid category_id", err)
		}
		create.CategoryID = &categoryID
	}

	created, err := h.TransactionService.Create(ctx, subject, create)
	if err != nil {
		return nil, httperr.FromService(err, "failed to create transaction")
	}

	return &CreateTransactionOutput{Body: transactionBody(created)}, nil
}
