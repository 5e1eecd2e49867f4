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

// UpdateUserNameBody is the request body for renaming the current user.
type UpdateUserNameBody struct {
	Name string `json:"name" required:"true" doc:"New display name"`
}

// UpdateUserNameInput is the Huma input for renaming the current user.
type UpdateUserNameInput struct {
	Body UpdateUserNameBody
}

// UpdateUserNameOutput is the Huma output for renaming the current user.
type UpdateUserNameOutput struct {
	Body ProfileBody
}

// nameUpdater is the interface for renaming users.
type nameUpdater interface {
	UpdateName(ctx context.Context, userID uuid.UUID, name string) (*service.Profile, error)
}

// UpdateUserNameHandler handles PUT /users/me/name.
type UpdateUserNameHandler struct {
	UserService nameUpdater
}

// NewUpdateUserNameHandler creates a new UpdateUserNameHandler.
func NewUpdateUserNameHandler(svc nameUpdater) *UpdateUserNameHandler {
	return &UpdateUserNameHandler{UserService: svc}
}

// Register registers the update name endpoint with the Huma API.
func (h *UpdateUserNameHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-user-name",
		Method:      http.MethodPut,
		Path:        "/users/me/name",
		Summary:     "Update display name",
		Description: "Replaces the calling user's display name.",
		Tags:        []string{"Users"},
		Security:    authn.Security,
	}, h.handle)
}

func (h *UpdateUserNameHandler) handle(ctx context.Context, input *UpdateUserNameInput) (*UpdateUserNameOutput, error) {
	subject, ok := authn.Subject(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "missing bearer token")
	}

	profile, err := h.UserService.UpdateName(ctx, subject, input.Body.Name)
	if err != nil {
		return nil, httperr.FromService(err, "failed to update name")
	}

	return &UpdateUserNameOutput{Body: profileBody(profile)}, nil
}
