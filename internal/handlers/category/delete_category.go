package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-server/internal/handlers/authn"
	"github.com/carson-networks/budget-server/internal/handlers/httperr"
)

// DeleteCategoryInput is the Huma input for deleting a category.
type DeleteCategoryInput struct {
	ID string `path:"id" doc:"Category UUID"`
}

// DeleteCategoryResponseBody is the response body for deleting a category.
type DeleteCategoryResponseBody struct {
	Message string `json:"message" doc:"Confirmation message"`
}

// DeleteCategoryOutput is the Huma output for deleting a category.
type DeleteCategoryOutput struct {
	Body DeleteCategoryResponseBody
}

// categoryDeleter is the interface for deleting categories.
type categoryDeleter interface {
	Delete(ctx context.Context, callerID, id uuid.UUID) error
}

// DeleteCategoryHandler handles DELETE /categories/{id}.
type DeleteCategoryHandler struct {
	CategoryService categoryDeleter
}

// NewDeleteCategoryHandler creates a new DeleteCategoryHandler.
func NewDeleteCategoryHandler(svc categoryDeleter) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{CategoryService: svc}
}

// Register registers the delete category endpoint with the Huma API.
func (h *DeleteCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-category",
		Method:      http.MethodDelete,
		Path:        "/categories/{id}",
		Summary:     "Delete category",
		Description: "Deletes one of the calling user's categories. Transactions keep their history.",
		Tags:        []string{"Categories"},
		Security:    authn.Security,
	}, h.handle)
}

func (h *DeleteCategoryHandler) handle(ctx context.Context, input *DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	subject, ok := authn.Subject(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "missing bearer token")
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid category id", err)
	}

	if err := h.CategoryService.Delete(ctx, subject, id); err != nil {
		return nil, httperr.FromService(err, "failed to delete category")
	}

	return &DeleteCategoryOutput{Body: DeleteCategoryResponseBody{
		Message: "category deleted",
	}}, nil
}
