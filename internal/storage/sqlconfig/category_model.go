package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Category represents a category record.
type Category struct {
	ID        uuid.UUID `db:"id"`
	OwnerID   uuid.UUID `db:"owner_id"`
	Name      string    `db:"name"`
	Type      string    `db:"type"`
	CreatedAt time.Time `db:"created_at"`
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	OwnerID uuid.UUID
	Name    string
	Type    string
}

// CategoryUpdate carries the partial fields of a merge-style update.
// Nil fields are left untouched.
type CategoryUpdate struct {
	Name *string
	Type *string
}

// SetColumns returns the column/value pairs the update would apply.
func (u *CategoryUpdate) SetColumns() map[string]any {
	set := map[string]any{}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Type != nil {
		set["type"] = *u.Type
	}
	return set
}

// CategoryFilter specifies filters for listing categories.
type CategoryFilter struct {
	OwnerID uuid.UUID
	Type    *string
}

// ICategoryTable defines the interface for category storage operations.
//
//go:generate mockery --name ICategoryTable --output mock_ICategoryTable.go
type ICategoryTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	Insert(ctx context.Context, create *CategoryCreate) (*Category, error)
	List(ctx context.Context, filter *CategoryFilter) ([]*Category, error)
	Update(ctx context.Context, id uuid.UUID, update *CategoryUpdate) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
