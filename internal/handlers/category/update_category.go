package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-server/internal/handlers/authn"
	"github.com/carson-networks/budget-server/internal/handlers/httperr"
	"github.com/carson-networks/budget-server/internal/service"
)

// UpdateCategoryBody is the request body for a partial update. Absent
// fields are left untouched; a body with no fields is rejected.
type UpdateCategoryBody struct {
	Name *string `json:"name,omitempty" doc:"New category name"`
	Type *string `json:"type,omitempty" enum:"income,expense" doc:"New transaction type"`
}

// UpdateCategoryInput is the Huma input for updating a category.
type UpdateCategoryInput struct {
	ID   string `path:"id" doc:"Category UUID"`
	Body UpdateCategoryBody
}

// UpdateCategoryOutput is the Huma output for updating a category.
type UpdateCategoryOutput struct {
	Body Category
}

// categoryUpdater is the interface for updating categories.
type categoryUpdater interface {
	Update(ctx context.Context, callerID, id uuid.UUID, update *service.CategoryUpdate) (*service.Category, error)
}

// UpdateCategoryHandler handles PUT /categories/{id}.
type UpdateCategoryHandler struct {
	CategoryService categoryUpdater
}

// NewUpdateCategoryHandler creates a new UpdateCategoryHandler.
func NewUpdateCategoryHandler(svc categoryUpdater) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{CategoryService: svc}
}

// Register registers the update category endpoint with the Huma API.
func (h *UpdateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPut,
		Path:        "/categories/{id}",
		Summary:     "Update category",
		Description: "Applies a partial update to one of the calling user's categories.",
		Tags:        []string{"Categories"},
		Security:    authn.Security,
	}, h.handle)
}

func (h *UpdateCategoryHandler) handle(ctx context.Context, input *UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	subject, ok := authn.Subject(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "missing bearer token")
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid category id", err)
	}

	updated, err := h.CategoryService.Update(ctx, subject, id, &service.CategoryUpdate{
		Name: input.Body.Name,
		Type: input.Body.Type,
	})
	if err != nil {
		return nil, httperr.FromService(err, "failed to update category")
	}

	return &UpdateCategoryOutput{Body: categoryBody(updated)}, nil
}
