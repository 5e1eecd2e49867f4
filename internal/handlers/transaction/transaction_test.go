package transaction

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/budget-server/internal/handlers/authn"
	"github.com/carson-networks/budget-server/internal/service"
	"github.com/carson-networks/budget-server/internal/token"
)

// mockTransactionService is a mock for the per-handler service interfaces.
type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) Create(ctx context.Context, callerID uuid.UUID, create *service.TransactionCreate) (*service.Transaction, error) {
	args := m.Called(ctx, callerID, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Transaction), args.Error(1)
}

func (m *mockTransactionService) List(ctx context.Context, callerID uuid.UUID, filter *service.TransactionFilter) ([]*service.Transaction, error) {
	args := m.Called(ctx, callerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*service.Transaction), args.Error(1)
}

func (m *mockTransactionService) Update(ctx context.Context, callerID, id uuid.UUID, update *service.TransactionUpdate) (*service.Transaction, error) {
	args := m.Called(ctx, callerID, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Transaction), args.Error(1)
}

func (m *mockTransactionService) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	args := m.Called(ctx, callerID, id)
	return args.Error(0)
}

// stubVerifier accepts exactly one token and maps it to a fixed subject.
type stubVerifier struct {
	subject uuid.UUID
}

func (v stubVerifier) Verify(raw string) (uuid.UUID, error) {
	if raw == "valid-token" {
		return v.subject, nil
	}
	return uuid.Nil, token.ErrInvalidToken
}

// newTestAPI wires all transaction handlers plus the auth middleware
// against a humatest API.
func newTestAPI(t *testing.T, svc *mockTransactionService, subject uuid.UUID) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(authn.NewMiddleware(api, stubVerifier{subject: subject}))

	NewCreateTransactionHandler(svc).Register(api)
	NewListTransactionsHandler(svc).Register(api)
	NewUpdateTransactionHandler(svc).Register(api)
	NewDeleteTransactionHandler(svc).Register(api)
	return api
}

const bearerHeader = "Authorization: Bearer valid-token"

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	subject := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())
	date := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	mockSvc := new(mockTransactionService)
	mockSvc.On("Create", mock.Anything, subject, mock.MatchedBy(func(create *service.TransactionCreate) bool {
		return create.OwnerID == subject &&
			create.Type == service.TypeExpense &&
			create.Amount.Equal(decimal.NewFromFloat(42.5)) &&
			create.TransactionDate.Equal(date)
	})).Return(&service.Transaction{
		ID:              txID,
		OwnerID:         subject,
		Type:            service.TypeExpense,
		Amount:          decimal.NewFromFloat(42.5),
		TransactionDate: date,
	}, nil)

	resp := newTestAPI(t, mockSvc, subject).Post("/transactions", bearerHeader, CreateTransactionBody{
		UserID: subject.String(),
		Type:   service.TypeExpense,
		Amount: 42.5,
		Date:   date.Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, txID.String(), body.ID)
	assert.Equal(t, 42.5, body.Amount)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_NoToken(t *testing.T) {
	mockSvc := new(mockTransactionService)
	subject := uuid.Must(uuid.NewV4())

	resp := newTestAPI(t, mockSvc, subject).Post("/transactions", CreateTransactionBody{
		UserID: subject.String(),
		Type:   service.TypeExpense,
		Amount: 10,
		Date:   time.Now().UTC().Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestHTTP_CreateTransaction_OwnerMismatch(t *testing.T) {
	subject := uuid.Must(uuid.NewV4())
	other := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionService)
	mockSvc.On("Create", mock.Anything, subject, mock.Anything).
		Return(nil, fmt.Errorf("%w: cannot create transactions for another user", service.ErrForbidden))

	resp := newTestAPI(t, mockSvc, subject).Post("/transactions", bearerHeader, CreateTransactionBody{
		UserID: other.String(),
		Type:   service.TypeExpense,
		Amount: 10,
		Date:   time.Now().UTC().Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestHTTP_CreateTransaction_BadDate(t *testing.T) {
	mockSvc := new(mockTransactionService)
	subject := uuid.Must(uuid.NewV4())

	resp := newTestAPI(t, mockSvc, subject).Post("/transactions", bearerHeader, CreateTransactionBody{
		UserID: subject.String(),
		Type:   service.TypeExpense,
		Amount: 10,
		Date:   "not-a-date",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestHTTP_ListTransactions_MonthFilter(t *testing.T) {
	subject := uuid.Must(uuid.NewV4())
	note := "lunch"

	mockSvc := new(mockTransactionService)
	mockSvc.On("List", mock.Anything, subject, &service.TransactionFilter{Month: 6, Year: 2025}).
		Return([]*service.Transaction{
			{
				ID:              uuid.Must(uuid.NewV4()),
				OwnerID:         subject,
				Type:            service.TypeExpense,
				Amount:          decimal.NewFromFloat(9.5),
				TransactionDate: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
				Note:            &note,
			},
		}, nil)

	resp := newTestAPI(t, mockSvc, subject).Get("/transactions?month=6&year=2025", bearerHeader)

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Transactions, 1)
	assert.Equal(t, "lunch", *body.Transactions[0].Note)
}

func TestHTTP_ListTransactions_BadMonth(t *testing.T) {
	mockSvc := new(mockTransactionService)
	subject := uuid.Must(uuid.NewV4())

	// Rejected by the maximum:"12" schema bound before the handler runs.
	resp := newTestAPI(t, mockSvc, subject).Get("/transactions?month=13", bearerHeader)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "List")
}

func TestHTTP_UpdateTransaction_Success(t *testing.T) {
	subject := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())
	amount := 99.99

	mockSvc := new(mockTransactionService)
	mockSvc.On("Update", mock.Anything, subject, txID, mock.MatchedBy(func(update *service.TransactionUpdate) bool {
		return update.Amount != nil && update.Amount.Equal(decimal.NewFromFloat(amount))
	})).Return(&service.Transaction{
		ID:              txID,
		OwnerID:         subject,
		Type:            service.TypeExpense,
		Amount:          decimal.NewFromFloat(amount),
		TransactionDate: time.Now().UTC(),
	}, nil)

	resp := newTestAPI(t, mockSvc, subject).Put("/transactions/"+txID.String(), bearerHeader, UpdateTransactionBody{
		Amount: &amount,
	})

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestHTTP_UpdateTransaction_NotFound(t *testing.T) {
	subject := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())
	amount := 1.0

	mockSvc := new(mockTransactionService)
	mockSvc.On("Update", mock.Anything, subject, txID, mock.Anything).
		Return(nil, fmt.Errorf("%w: transaction not found", service.ErrNotFound))

	resp := newTestAPI(t, mockSvc, subject).Put("/transactions/"+txID.String(), bearerHeader, UpdateTransactionBody{
		Amount: &amount,
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_UpdateTransaction_EmptyBody(t *testing.T) {
	subject := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionService)
	mockSvc.On("Update", mock.Anything, subject, txID, mock.Anything).
		Return(nil, fmt.Errorf("%w: no fields to update", service.ErrInvalidInput))

	resp := newTestAPI(t, mockSvc, subject).Put("/transactions/"+txID.String(), bearerHeader, UpdateTransactionBody{})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_DeleteTransaction_Success(t *testing.T) {
	subject := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionService)
	mockSvc.On("Delete", mock.Anything, subject, txID).Return(nil)

	resp := newTestAPI(t, mockSvc, subject).Delete("/transactions/"+txID.String(), bearerHeader)

	assert.Equal(t, http.StatusOK, resp.Code)
	var body DeleteTransactionResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Message)
}

func TestHTTP_DeleteTransaction_NotFound(t *testing.T) {
	subject := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionService)
	mockSvc.On("Delete", mock.Anything, subject, txID).
		Return(fmt.Errorf("%w: transaction not found", service.ErrNotFound))

	resp := newTestAPI(t, mockSvc, subject).Delete("/transactions/"+txID.String(), bearerHeader)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
