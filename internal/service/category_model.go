package service

import (
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-server/internal/storage/sqlconfig"
)

// Category is the service view of a spending category.
type Category struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Name    string
	Type    string
}

// CategoryCreate carries the fields for a new category.
type CategoryCreate struct {
	OwnerID uuid.UUID
	Name    string
	Type    string
}

// CategoryUpdate carries a partial update. Nil fields are left untouched.
type CategoryUpdate struct {
	Name *string
	Type *string
}

// CategoryFilter narrows a listing to one transaction type.
type CategoryFilter struct {
	Type *string
}

func categoryFromStorage(c *sqlconfig.Category) *Category {
	return &Category{
		ID:      c.ID,
		OwnerID: c.OwnerID,
		Name:    c.Name,
		Type:    c.Type,
	}
}
