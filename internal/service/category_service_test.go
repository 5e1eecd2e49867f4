package service

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/budget-server/internal/storage/sqlconfig"
)

func TestCategoryService_Create(t *testing.T) {
	svc, mocks := newTestService(t)
	callerID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	mocks.categories.EXPECT().List(mock.Anything, mock.Anything).Return(nil, nil)
	mocks.categories.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(create *sqlconfig.CategoryCreate) bool {
		return create.OwnerID == callerID && create.Name == "Groceries" && create.Type == TypeExpense
	})).Return(&sqlconfig.Category{
		ID:      categoryID,
		OwnerID: callerID,
		Name:    "Groceries",
		Type:    TypeExpense,
	}, nil)

	created, err := svc.Category.Create(context.Background(), callerID, &CategoryCreate{
		OwnerID: callerID,
		Name:    "Groceries",
		Type:    TypeExpense,
	})
	assert.NoError(t, err)
	assert.Equal(t, categoryID, created.ID)
}

func TestCategoryService_Create_Duplicate(t *testing.T) {
	svc, mocks := newTestService(t)
	callerID := uuid.Must(uuid.NewV4())

	mocks.categories.EXPECT().List(mock.Anything, mock.Anything).Return([]*sqlconfig.Category{
		{ID: uuid.Must(uuid.NewV4()), OwnerID: callerID, Name: "Groceries", Type: TypeExpense},
	}, nil)

	created, err := svc.Category.Create(context.Background(), callerID, &CategoryCreate{
		OwnerID: callerID,
		Name:    "Groceries",
		Type:    TypeExpense,
	})
	assert.ErrorIs(t, err, ErrConflict)
	assert.Nil(t, created)
	mocks.categories.AssertNotCalled(t, "Insert")
}

func TestCategoryService_Create_SameNameDifferentType(t *testing.T) {
	svc, mocks := newTestService(t)
	callerID := uuid.Must(uuid.NewV4())

	// The existing "Side gig" is an income category; an expense category
	// with the same name does not collide.
	mocks.categories.EXPECT().List(mock.Anything, mock.MatchedBy(func(filter *sqlconfig.CategoryFilter) bool {
		return filter.Type != nil && *filter.Type == TypeExpense
	})).Return(nil, nil)
	mocks.categories.EXPECT().Insert(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, create *sqlconfig.CategoryCreate) (*sqlconfig.Category, error) {
			return &sqlconfig.Category{ID: uuid.Must(uuid.NewV4()), OwnerID: create.OwnerID, Name: create.Name, Type: create.Type}, nil
		})

	created, err := svc.Category.Create(context.Background(), callerID, &CategoryCreate{
		OwnerID: callerID,
		Name:    "Side gig",
		Type:    TypeExpense,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Side gig", created.Name)
}

func TestCategoryService_Update_Rename(t *testing.T) {
	svc, mocks := newTestService(t)
	callerID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())
	newName := "Food"

	mocks.categories.EXPECT().FindByID(mock.Anything, categoryID).
		Return(&sqlconfig.Category{ID: categoryID, OwnerID: callerID, Name: "Groceries", Type: TypeExpense}, nil).Once()
	mocks.categories.EXPECT().List(mock.Anything, mock.Anything).Return(nil, nil)
	mocks.categories.EXPECT().Update(mock.Anything, categoryID, mock.MatchedBy(func(u *sqlconfig.CategoryUpdate) bool {
		return u.Name != nil && *u.Name == newName
	})).Return(1, nil)
	mocks.categories.EXPECT().FindByID(mock.Anything, categoryID).
		Return(&sqlconfig.Category{ID: categoryID, OwnerID: callerID, Name: newName, Type: TypeExpense}, nil).Once()

	updated, err := svc.Category.Update(context.Background(), callerID, categoryID, &CategoryUpdate{Name: &newName})
	assert.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
}

func TestCategoryService_Update_RenameOntoExisting(t *testing.T) {
	svc, mocks := newTestService(t)
	callerID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())
	newName := "Food"

	mocks.categories.EXPECT().FindByID(mock.Anything, categoryID).
		Return(&sqlconfig.Category{ID: categoryID, OwnerID: callerID, Name: "Groceries", Type: TypeExpense}, nil)
	mocks.categories.EXPECT().List(mock.Anything, mock.Anything).Return([]*sqlconfig.Category{
		{ID: uuid.Must(uuid.NewV4()), OwnerID: callerID, Name: "Food", Type: TypeExpense},
	}, nil)

	updated, err := svc.Category.Update(context.Background(), callerID, categoryID, &CategoryUpdate{Name: &newName})
	assert.ErrorIs(t, err, ErrConflict)
	assert.Nil(t, updated)
	mocks.categories.AssertNotCalled(t, "Update")
}

func TestCategoryService_Update_SameName(t *testing.T) {
	svc, mocks := newTestService(t)
	callerID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())
	sameName := "Groceries"

	// Re-submitting the current name matches only the record itself, so no
	// conflict check is needed and the update still succeeds.
	mocks.categories.EXPECT().FindByID(mock.Anything, categoryID).
		Return(&sqlconfig.Category{ID: categoryID, OwnerID: callerID, Name: sameName, Type: TypeExpense}, nil)
	mocks.categories.EXPECT().Update(mock.Anything, categoryID, mock.Anything).Return(1, nil)

	updated, err := svc.Category.Update(context.Background(), callerID, categoryID, &CategoryUpdate{Name: &sameName})
	assert.NoError(t, err)
	assert.Equal(t, sameName, updated.Name)
	mocks.categories.AssertNotCalled(t, "List")
}

func TestCategoryService_Update_NotOwned(t *testing.T) {
	svc, mocks := newTestService(t)
	categoryID := uuid.Must(uuid.NewV4())
	newName := "Food"

	mocks.categories.EXPECT().FindByID(mock.Anything, categoryID).
		Return(&sqlconfig.Category{ID: categoryID, OwnerID: uuid.Must(uuid.NewV4())}, nil)

	updated, err := svc.Category.Update(context.Background(), uuid.Must(uuid.NewV4()), categoryID, &CategoryUpdate{Name: &newName})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, updated)
}

func TestCategoryService_Delete(t *testing.T) {
	svc, mocks := newTestService(t)
	callerID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	mocks.categories.EXPECT().FindByID(mock.Anything, categoryID).
		Return(&sqlconfig.Category{ID: categoryID, OwnerID: callerID}, nil)
	mocks.categories.EXPECT().Delete(mock.Anything, categoryID).Return(1, nil)

	assert.NoError(t, svc.Category.Delete(context.Background(), callerID, categoryID))
}

func TestCategoryService_List_TypeFilter(t *testing.T) {
	svc, mocks := newTestService(t)
	callerID := uuid.Must(uuid.NewV4())
	income := TypeIncome

	mocks.categories.EXPECT().List(mock.Anything, mock.MatchedBy(func(filter *sqlconfig.CategoryFilter) bool {
		return filter.OwnerID == callerID && filter.Type != nil && *filter.Type == income
	})).Return([]*sqlconfig.Category{
		{ID: uuid.Must(uuid.NewV4()), OwnerID: callerID, Name: "Salary", Type: income},
	}, nil)

	listed, err := svc.Category.List(context.Background(), callerID, &CategoryFilter{Type: &income})
	assert.NoError(t, err)
	assert.Len(t, listed, 1)
	assert.Equal(t, "Salary", listed[0].Name)
}
