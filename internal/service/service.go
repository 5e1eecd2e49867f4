package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-server/internal/operator/actions"
	"github.com/carson-networks/budget-server/internal/storage"
)

// Processor executes mutation actions; the operator delegator is the
// production implementation.
type Processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// TokenIssuer issues access tokens for authenticated users.
type TokenIssuer interface {
	Issue(subject uuid.UUID) (string, error)
}

// Service holds all business logic services.
type Service struct {
	User        *UserService
	Transaction *TransactionService
	Category    *CategoryService
}

// NewService creates a new Service with the given storage, processor and
// token issuer.
func NewService(store *storage.Storage, processor Processor, tokens TokenIssuer) *Service {
	return &Service{
		User:        NewUserService(store, processor, tokens),
		Transaction: NewTransactionService(store, processor),
		Category:    NewCategoryService(store, processor),
	}
}
