package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-server/internal/handlers/httperr"
)

// LoginUserBody is the request body for logging in.
type LoginUserBody struct {
	Email    string `json:"email" required:"true" doc:"Email address"`
	Password string `json:"password" required:"true" doc:"Plaintext password"`
}

// LoginUserInput is the Huma input for logging in.
type LoginUserInput struct {
	Body LoginUserBody
}

// LoginUserResponseBody is the response body for logging in.
type LoginUserResponseBody struct {
	AccessToken string `json:"access_token" doc:"Signed bearer token"`
	TokenType   string `json:"token_type" doc:"Always bearer"`
}

// LoginUserOutput is the Huma output for logging in.
type LoginUserOutput struct {
	Body LoginUserResponseBody
}

// userAuthenticator is the interface for verifying credentials.
type userAuthenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// LoginUserHandler handles POST /users/login.
type LoginUserHandler struct {
	UserService userAuthenticator
}

// NewLoginUserHandler creates a new LoginUserHandler.
func NewLoginUserHandler(svc userAuthenticator) *LoginUserHandler {
	return &LoginUserHandler{UserService: svc}
}

// Register registers the login endpoint with the Huma API.
func (h *LoginUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login-user",
		Method:      http.MethodPost,
		Path:        "/users/login",
		Summary:     "Log in",
		Description: "Verifies credentials and returns an access token.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *LoginUserHandler) handle(ctx context.Context, input *LoginUserInput) (*LoginUserOutput, error) {
	accessToken, err := h.UserService.Login(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, httperr.FromService(err, "failed to log in")
	}

	return &LoginUserOutput{Body: LoginUserResponseBody{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}}, nil
}
