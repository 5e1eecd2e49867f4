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

// CreateCategoryBody is the request body for creating a category.
type CreateCategoryBody struct {
	UserID string `json:"user_id" required:"true" doc:"Owning user UUID, must match the caller"`
	Name   string `json:"name" required:"true" doc:"Category name, unique per user and type"`
	Type   string `json:"type" required:"true" enum:"income,expense" doc:"Transaction type"`
}

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	Body CreateCategoryBody
}

// CreateCategoryOutput is the Huma output for creating a category.
type CreateCategoryOutput struct {
	Body Category
}

// categoryCreator is the interface for creating categories.
type categoryCreator interface {
	Create(ctx context.Context, callerID uuid.UUID, create *service.CategoryCreate) (*service.Category, error)
}

// CreateCategoryHandler handles POST /categories.
type CreateCategoryHandler struct {
	CategoryService categoryCreator
}

// NewCreateCategoryHandler creates a new CreateCategoryHandler.
func NewCreateCategoryHandler(svc categoryCreator) *CreateCategoryHandler {
	return &CreateCategoryHandler{CategoryService: svc}
}

// Register registers the create category endpoint with the Huma API.
func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-category",
		Method:      http.MethodPost,
		Path:        "/categories",
		Summary:     "Create category",
		Description: "Records a new category for the calling user.",
		Tags:        []string{"Categories"},
		Security:    authn.Security,
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	subject, ok := authn.Subject(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "missing bearer token")
	}

	ownerID, err := uuid.FromString(input.Body.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid user_id", err)
	}

	created, err := h.CategoryService.Create(ctx, subject, &service.CategoryCreate{
		OwnerID: ownerID,
		Name:    input.Body.Name,
		Type:    input.Body.Type,
	})
	if err != nil {
		return nil, httperr.FromService(err, "failed to create category")
	}

	return &CreateCategoryOutput{Body: categoryBody(created)}, nil
}
