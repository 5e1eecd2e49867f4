package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-server/internal/handlers/authn"
	"github.com/carson-networks/budget-server/internal/handlers/httperr"
)

// UpdateUserPasswordBody is the request body for changing the password.
type UpdateUserPasswordBody struct {
	OldPassword string `json:"old_password" required:"true" doc:"Current password"`
	NewPassword string `json:"new_password" required:"true" doc:"Replacement password"`
}

// UpdateUserPasswordInput is the Huma input for changing the password.
type UpdateUserPasswordInput struct {
	Body UpdateUserPasswordBody
}

// UpdateUserPasswordResponseBody is the response body for changing the password.
type UpdateUserPasswordResponseBody struct {
	Message string `json:"message" doc:"Confirmation message"`
}

// UpdateUserPasswordOutput is the Huma output for changing the password.
type UpdateUserPasswordOutput struct {
	Body UpdateUserPasswordResponseBody
}

// passwordChanger is the interface for changing passwords.
type passwordChanger interface {
	ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error
}

// UpdateUserPasswordHandler handles PUT /users/me/password.
type UpdateUserPasswordHandler struct {
	UserService passwordChanger
}

// NewUpdateUserPasswordHandler creates a new UpdateUserPasswordHandler.
func NewUpdateUserPasswordHandler(svc passwordChanger) *UpdateUserPasswordHandler {
	return &UpdateUserPasswordHandler{UserService: svc}
}

// Register registers the change password endpoint with the Huma API.
func (h *UpdateUserPasswordHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-user-password",
		Method:      http.MethodPut,
		Path:        "/users/me/password",
		Summary:     "Change password",
		Description: "Re-verifies the old password and replaces it.",
		Tags:        []string{"Users"},
		Security:    authn.Security,
	}, h.handle)
}

func (h *UpdateUserPasswordHandler) handle(ctx context.Context, input *UpdateUserPasswordInput) (*UpdateUserPasswordOutput, error) {
	subject, ok := authn.Subject(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "missing bearer token")
	}

	if err := h.UserService.ChangePassword(ctx, subject, input.Body.OldPassword, input.Body.NewPassword); err != nil {
		return nil, httperr.FromService(err, "failed to change password")
	}

	return &UpdateUserPasswordOutput{Body: UpdateUserPasswordResponseBody{
		Message: "password updated",
	}}, nil
}
