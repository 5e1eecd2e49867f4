package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-server/internal/config"
	"github.com/carson-networks/budget-server/internal/gateway"
	"github.com/carson-networks/budget-server/internal/handlers/authn"
	"github.com/carson-networks/budget-server/internal/handlers/category"
	"github.com/carson-networks/budget-server/internal/handlers/status"
	"github.com/carson-networks/budget-server/internal/handlers/transaction"
	"github.com/carson-networks/budget-server/internal/handlers/user"
	"github.com/carson-networks/budget-server/internal/logging"
	"github.com/carson-networks/budget-server/internal/service"
	"github.com/carson-networks/budget-server/internal/token"
)

// newRouter builds the chi router shared by every service: CORS for the
// browser client and the plain status endpoint outside the Huma API.
func newRouter(env *config.Config, log *logrus.Logger) *chi.Mux {
	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   env.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	statusHandler := status.NewHandler()
	router.HandleFunc("/status", logging.LoggingWrapper("Status", log, statusHandler.Handler))

	return router
}

// newAPI attaches a Huma API with the bearer security scheme and the
// authentication middleware to the router.
func newAPI(router chi.Router, title string, verifier token.Verifier) huma.API {
	humaConfig := huma.DefaultConfig(title, "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		authn.SecurityScheme: {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "JWT",
		},
	}

	humaAPI := humachi.New(router, humaConfig)
	humaAPI.UseMiddleware(authn.NewMiddleware(humaAPI, verifier))
	return humaAPI
}

// NewUserRouter builds the identity service router.
func NewUserRouter(env *config.Config, log *logrus.Logger, svc *service.Service, verifier token.Verifier) http.Handler {
	router := newRouter(env, log)
	humaAPI := newAPI(router, "Finance User Service", verifier)

	user.NewRegisterUserHandler(svc.User).Register(humaAPI)
	user.NewLoginUserHandler(svc.User).Register(humaAPI)
	user.NewGetUserHandler(svc.User).Register(humaAPI)
	user.NewUpdateUserNameHandler(svc.User).Register(humaAPI)
	user.NewUpdateUserPasswordHandler(svc.User).Register(humaAPI)

	return router
}

// NewTransactionRouter builds the transaction service router.
func NewTransactionRouter(env *config.Config, log *logrus.Logger, svc *service.Service, verifier token.Verifier) http.Handler {
	router := newRouter(env, log)
	humaAPI := newAPI(router, "Finance Transaction Service", verifier)

	transaction.NewCreateTransactionHandler(svc.Transaction).Register(humaAPI)
	transaction.NewListTransactionsHandler(svc.Transaction).Register(humaAPI)
	transaction.NewUpdateTransactionHandler(svc.Transaction).Register(humaAPI)
	transaction.NewDeleteTransactionHandler(svc.Transaction).Register(humaAPI)

	return router
}

// NewCategoryRouter builds the category service router.
func NewCategoryRouter(env *config.Config, log *logrus.Logger, svc *service.Service, verifier token.Verifier) http.Handler {
	router := newRouter(env, log)
	humaAPI := newAPI(router, "Finance Category Service", verifier)

	category.NewCreateCategoryHandler(svc.Category).Register(humaAPI)
	category.NewListCategoriesHandler(svc.Category).Register(humaAPI)
	category.NewUpdateCategoryHandler(svc.Category).Register(humaAPI)
	category.NewDeleteCategoryHandler(svc.Category).Register(humaAPI)

	return router
}

// NewGatewayRouter builds the public gateway router. The gateway never
// touches the database or verifies tokens; downstream services do both.
func NewGatewayRouter(env *config.Config, log *logrus.Logger) http.Handler {
	router := newRouter(env, log)

	gw := gateway.NewGateway(env.ServiceMap(), log)
	router.Handle("/api/{service}/*", logging.LoggingWrapper("Gateway", log, gw.Handler))

	return router
}
