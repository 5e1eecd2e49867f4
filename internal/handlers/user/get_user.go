package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-server/internal/handlers/authn"
	"github.com/carson-networks/budget-server/internal/handlers/httperr"
	"github.com/carson-networks/budget-server/internal/service"
)

// GetUserInput is the Huma input for fetching a profile.
type GetUserInput struct {
	ID string `path:"id" doc:"User UUID"`
}

// GetUserOutput is the Huma output for fetching a profile.
type GetUserOutput struct {
	Body ProfileBody
}

// profileGetter is the interface for reading profiles.
type profileGetter interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*service.Profile, error)
}

// GetUserHandler handles GET /users/{id}.
type GetUserHandler struct {
	UserService profileGetter
}

// NewGetUserHandler creates a new GetUserHandler.
func NewGetUserHandler(svc profileGetter) *GetUserHandler {
	return &GetUserHandler{UserService: svc}
}

// Register registers the get user endpoint with the Huma API.
func (h *GetUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-user",
		Method:      http.MethodGet,
		Path:        "/users/{id}",
		Summary:     "Get user",
		Description: "Returns a user's profile. Users can only read their own profile.",
		Tags:        []string{"Users"},
		Security:    authn.Security,
	}, h.handle)
}

func (h *GetUserHandler) handle(ctx context.Context, input *GetUserInput) (*GetUserOutput, error) {
	subject, ok := authn.Subject(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "missing bearer token")
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid user id", err)
	}
	if id != subject {
		return nil, huma.NewError(http.StatusForbidden, "cannot read another user's profile")
	}

	profile, err := h.UserService.GetProfile(ctx, id)
	if err != nil {
		return nil, httperr.FromService(err, "failed to get user")
	}

	return &GetUserOutput{Body: profileBody(profile)}, nil
}
