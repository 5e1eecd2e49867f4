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

// ListCategoriesInput is the Huma input for listing categories.
type ListCategoriesInput struct {
	Type string `query:"type" doc:"Narrow the listing to one transaction type"`
}

// ListCategoriesResponseBody is the response body for listing categories.
type ListCategoriesResponseBody struct {
	Categories []Category `json:"categories" doc:"Caller's categories, oldest first"`
}

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body ListCategoriesResponseBody
}

// categoryLister is the interface for listing categories.
type categoryLister interface {
	List(ctx context.Context, callerID uuid.UUID, filter *service.CategoryFilter) ([]*service.Category, error)
}

// ListCategoriesHandler handles GET /categories.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

// NewListCategoriesHandler creates a new ListCategoriesHandler.
func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

// Register registers the list categories endpoint with the Huma API.
func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/categories",
		Summary:     "List categories",
		Description: "Returns the calling user's categories, optionally narrowed to one type.",
		Tags:        []string{"Categories"},
		Security:    authn.Security,
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	subject, ok := authn.Subject(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "missing bearer token")
	}

	filter := &service.CategoryFilter{}
	if input.Type != "" {
		filter.Type = &input.Type
	}

	categories, err := h.CategoryService.List(ctx, subject, filter)
	if err != nil {
		return nil, httperr.FromService(err, "failed to list categories")
	}

	resp := ListCategoriesResponseBody{
		Categories: make([]Category, len(categories)),
	}
	for i, c := range categories {
		resp.Categories[i] = categoryBody(c)
	}

	return &ListCategoriesOutput{Body: resp}, nil
}
