package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-server/internal/handlers/httperr"
	"github.com/carson-networks/budget-server/internal/service"
)

// RegisterUserBody is the request body for registering a user.
type RegisterUserBody struct {
	Name     string `json:"name" required:"true" doc:"Display name"`
	Email    string `json:"email" required:"true" doc:"Email address"`
	Password string `json:"password" required:"true" doc:"Plaintext password, stored only as a hash"`
}

// RegisterUserInput is the Huma input for registering a user.
type RegisterUserInput struct {
	Body RegisterUserBody
}

// RegisterUserOutput is the Huma output for registering a user.
type RegisterUserOutput struct {
	Body ProfileBody
}

// userRegisterer is the interface for registering users.
type userRegisterer interface {
	Register(ctx context.Context, name, email, password string) (*service.Profile, error)
}

// RegisterUserHandler handles POST /users/register.
type RegisterUserHandler struct {
	UserService userRegisterer
}

// NewRegisterUserHandler creates a new RegisterUserHandler.
func NewRegisterUserHandler(svc userRegisterer) *RegisterUserHandler {
	return &RegisterUserHandler{UserService: svc}
}

// Register registers the register user endpoint with the Huma API.
func (h *RegisterUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "register-user",
		Method:      http.MethodPost,
		Path:        "/users/register",
		Summary:     "Register user",
		Description: "Creates a new user account.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *RegisterUserHandler) handle(ctx context.Context, input *RegisterUserInput) (*RegisterUserOutput, error) {
	profile, err := h.UserService.Register(ctx, input.Body.Name, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, httperr.FromService(err, "failed to register user")
	}

	return &RegisterUserOutput{Body: profileBody(profile)}, nil
}
