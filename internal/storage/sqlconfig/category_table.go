package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
)

var _ ICategoryTable = (*CategoriesTable)(nil)

var categoryColumns = []string{"id", "owner_id", "name", "type", "created_at"}

type CategoriesTable struct {
	recordTable[Category]
}

func NewCategoriesTable(exec bob.Executor) *CategoriesTable {
	return &CategoriesTable{
		recordTable: newRecordTable[Category](exec, "categories", categoryColumns),
	}
}

// FindByID retrieves a category by primary key without ownership filtering.
func (t *CategoriesTable) FindByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	return t.findByID(ctx, id)
}

// Insert creates a new category and returns the stored row. The unique
// (owner_id, name, type) index backstops the service-level duplicate check.
func (t *CategoriesTable) Insert(ctx context.Context, create *CategoryCreate) (*Category, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	return t.insertReturning(ctx, map[string]any{
		"id":         id,
		"owner_id":   create.OwnerID,
		"name":       create.Name,
		"type":       create.Type,
		"created_at": time.Now().UTC(),
	})
}

// List returns the owner's categories matching the filter, in insertion order.
func (t *CategoriesTable) List(ctx context.Context, filter *CategoryFilter) ([]*Category, error) {
	whereMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(filter.OwnerID))),
	}
	if filter.Type != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("type").EQ(psql.Arg(*filter.Type))))
	}

	return t.selectWhere(ctx, whereMods...)
}

// Update merges the non-nil fields into the category and returns the
// matched-row count.
func (t *CategoriesTable) Update(ctx context.Context, id uuid.UUID, update *CategoryUpdate) (int64, error) {
	return t.updateByID(ctx, id, update.SetColumns())
}

// Delete removes the category and returns the deleted-row count.
func (t *CategoriesTable) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return t.deleteByID(ctx, id)
}
