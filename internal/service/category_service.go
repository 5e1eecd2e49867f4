package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-server/internal/operator/actions"
	"github.com/carson-networks/budget-server/internal/storage"
	"github.com/carson-networks/budget-server/internal/storage/sqlconfig"
)

// CategoryService handles category business logic. Names are unique per
// owner and transaction type, so two users can both have a "Groceries"
// expense category without colliding.
type CategoryService struct {
	storage   *storage.Storage
	processor Processor
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store *storage.Storage, processor Processor) *CategoryService {
	return &CategoryService{storage: store, processor: processor}
}

// Create records a new category for the calling user.
func (s *CategoryService) Create(ctx context.Context, callerID uuid.UUID, create *CategoryCreate) (*Category, error) {
	if create.OwnerID != callerID {
		return nil, fmt.Errorf("%w: cannot create categories for another user", ErrForbidden)
	}
	create.Name = strings.TrimSpace(create.Name)
	if create.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !validTransactionType(create.Type) {
		return nil, fmt.Errorf("%w: type must be income or expense", ErrInvalidInput)
	}

	taken, err := s.nameTaken(ctx, callerID, create.Name, create.Type, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: category already exists", ErrConflict)
	}

	action := &actions.CreateCategory{
		Create: sqlconfig.CategoryCreate{
			OwnerID: create.OwnerID,
			Name:    create.Name,
			Type:    create.Type,
		},
	}
	if err := s.processor.Process(ctx, action); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: category already exists", ErrConflict)
		}
		return nil, err
	}

	return categoryFromStorage(action.Created), nil
}

// List returns the caller's categories, oldest first, optionally narrowed to
// one transaction type.
func (s *CategoryService) List(ctx context.Context, callerID uuid.UUID, filter *CategoryFilter) ([]*Category, error) {
	storageFilter := &sqlconfig.CategoryFilter{OwnerID: callerID}
	if filter != nil && filter.Type != nil {
		if !validTransactionType(*filter.Type) {
			return nil, fmt.Errorf("%w: type must be income or expense", ErrInvalidInput)
		}
		storageFilter.Type = filter.Type
	}

	records, err := s.storage.Categories.List(ctx, storageFilter)
	if err != nil {
		return nil, err
	}

	out := make([]*Category, 0, len(records))
	for _, record := range records {
		out = append(out, categoryFromStorage(record))
	}
	return out, nil
}

// Update applies a partial update to one of the caller's categories and
// returns the updated record. Renaming onto another category of the same
// type is rejected; re-submitting the current name is not a conflict.
func (s *CategoryService) Update(ctx context.Context, callerID, id uuid.UUID, update *CategoryUpdate) (*Category, error) {
	existing, err := s.storage.Categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil || existing.OwnerID != callerID {
		return nil, fmt.Errorf("%w: category not found", ErrNotFound)
	}

	if update.Name != nil {
		trimmed := strings.TrimSpace(*update.Name)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
		}
		update.Name = &trimmed
	}
	if update.Type != nil && !validTransactionType(*update.Type) {
		return nil, fmt.Errorf("%w: type must be income or expense", ErrInvalidInput)
	}

	storageUpdate := &sqlconfig.CategoryUpdate{Name: update.Name, Type: update.Type}
	if len(storageUpdate.SetColumns()) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	// The uniqueness check runs against the post-update name and type, so a
	// type change alone can still collide with an existing category.
	finalName := existing.Name
	if update.Name != nil {
		finalName = *update.Name
	}
	finalType := existing.Type
	if update.Type != nil {
		finalType = *update.Type
	}
	if finalName != existing.Name || finalType != existing.Type {
		taken, err := s.nameTaken(ctx, callerID, finalName, finalType, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: category already exists", ErrConflict)
		}
	}

	action := &actions.UpdateCategory{ID: id, Update: *storageUpdate}
	if err := s.processor.Process(ctx, action); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: category already exists", ErrConflict)
		}
		return nil, err
	}
	if action.Modified == 0 {
		return nil, fmt.Errorf("%w: category not found", ErrNotFound)
	}

	updated, err := s.storage.Categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: category not found", ErrNotFound)
	}
	return categoryFromStorage(updated), nil
}

// Delete removes one of the caller's categories. Transactions that pointed
// at it keep their history with the category reference cleared.
func (s *CategoryService) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	existing, err := s.storage.Categories.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil || existing.OwnerID != callerID {
		return fmt.Errorf("%w: category not found", ErrNotFound)
	}

	action := &actions.DeleteCategory{ID: id}
	if err := s.processor.Process(ctx, action); err != nil {
		return err
	}
	if action.Deleted == 0 {
		return fmt.Errorf("%w: category not found", ErrNotFound)
	}
	return nil
}

func (s *CategoryService) nameTaken(ctx context.Context, ownerID uuid.UUID, name, categoryType string, self uuid.UUID) (bool, error) {
	records, err := s.storage.Categories.List(ctx, &sqlconfig.CategoryFilter{
		OwnerID: ownerID,
		Type:    &categoryType,
	})
	if err != nil {
		return false, err
	}
	for _, record := range records {
		if record.ID != self && record.Name == name {
			return true, nil
		}
	}
	return false, nil
}
