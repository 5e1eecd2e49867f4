package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-server/internal/operator/actions"
	"github.com/carson-networks/budget-server/internal/storage"
	"github.com/carson-networks/budget-server/internal/storage/sqlconfig"
)

// TransactionService handles ledger entry business logic. Every operation is
// scoped to the calling user; records owned by other users behave as if they
// do not exist.
type TransactionService struct {
	storage   *storage.Storage
	processor Processor
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, processor Processor) *TransactionService {
	return &TransactionService{storage: store, processor: processor}
}

// Create records a new transaction for the calling user. The payload owner
// must match the caller; an account cannot write into another user's ledger.
func (s *TransactionService) Create(ctx context.Context, callerID uuid.UUID, create *TransactionCreate) (*Transaction, error) {
	if create.OwnerID != callerID {
		return nil, fmt.Errorf("%w: cannot create transactions for another user", ErrForbidden)
	}
	if !validTransactionType(create.Type) {
		return nil, fmt.Errorf("%w: type must be income or expense", ErrInvalidInput)
	}

	action := &actions.CreateTransaction{Create: *transactionCreateToStorage(create)}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	return transactionFromStorage(action.Created), nil
}

// List returns the caller's transactions, oldest first. A month filter
// narrows the listing to that calendar month.
func (s *TransactionService) List(ctx context.Context, callerID uuid.UUID, filter *TransactionFilter) ([]*Transaction, error) {
	storageFilter := &sqlconfig.TransactionFilter{OwnerID: callerID}
	if filter != nil && filter.Month != 0 {
		if filter.Month < 1 || filter.Month > 12 {
			return nil, fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
		}
		from, to := monthRange(filter.Month, filter.Year, time.Now().UTC())
		storageFilter.DateFrom = &from
		storageFilter.DateTo = &to
	}

	records, err := s.storage.Transactions.List(ctx, storageFilter)
	if err != nil {
		return nil, err
	}

	out := make([]*Transaction, 0, len(records))
	for _, record := range records {
		out = append(out, transactionFromStorage(record))
	}
	return out, nil
}

// Update applies a partial update to one of the caller's transactions and
// returns the updated record.
func (s *TransactionService) Update(ctx context.Context, callerID, id uuid.UUID, update *TransactionUpdate) (*Transaction, error) {
	existing, err := s.storage.Transactions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil || existing.OwnerID != callerID {
		return nil, fmt.Errorf("%w: transaction not found", ErrNotFound)
	}

	storageUpdate := transactionUpdateToStorage(update)
	if len(storageUpdate.SetColumns()) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}
	if update.Type != nil && !validTransactionType(*update.Type) {
		return nil, fmt.Errorf("%w: type must be income or expense", ErrInvalidInput)
	}

	action := &actions.UpdateTransaction{ID: id, Update: *storageUpdate}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	if action.Modified == 0 {
		// Deleted between the ownership check and the write.
		return nil, fmt.Errorf("%w: transaction not found", ErrNotFound)
	}

	updated, err := s.storage.Transactions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: transaction not found", ErrNotFound)
	}
	return transactionFromStorage(updated), nil
}

// Delete removes one of the caller's transactions.
func (s *TransactionService) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	existing, err := s.storage.Transactions.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil || existing.OwnerID != callerID {
		return fmt.Errorf("%w: transaction not found", ErrNotFound)
	}

	action := &actions.DeleteTransaction{ID: id}
	if err := s.processor.Process(ctx, action); err != nil {
		return err
	}
	if action.Deleted == 0 {
		return fmt.Errorf("%w: transaction not found", ErrNotFound)
	}
	return nil
}
