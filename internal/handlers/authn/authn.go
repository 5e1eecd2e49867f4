// Package authn gates Huma operations behind bearer token authentication.
package authn

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-server/internal/token"
)

// SecurityScheme is the name of the bearer scheme in the OpenAPI document.
// Operations that declare it are enforced by the middleware; public
// operations simply omit the Security field.
const SecurityScheme = "bearerAuth"

type contextKey string

const subjectKey contextKey = "authn.subject"

// Security is the operation-level requirement handlers attach to protected
// endpoints.
var Security = []map[string][]string{{SecurityScheme: {}}}

// NewMiddleware returns a Huma middleware that verifies the Authorization
// header on operations declaring a security requirement and stores the
// token subject in the request context.
func NewMiddleware(api huma.API, verifier token.Verifier) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if len(ctx.Operation().Security) == 0 {
			next(ctx)
			return
		}

		header := ctx.Header("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			huma.WriteErr(api, ctx, http.StatusUnauthorized, "missing bearer token")
			return
		}

		subject, err := verifier.Verify(raw)
		if err != nil {
			huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		next(huma.WithValue(ctx, subjectKey, subject))
	}
}

// Subject returns the authenticated user id stored by the middleware.
func Subject(ctx context.Context) (uuid.UUID, bool) {
	subject, ok := ctx.Value(subjectKey).(uuid.UUID)
	return subject, ok
}

// WithSubject returns a context carrying the given subject. Tests use it to
// call handlers without going through the middleware.
func WithSubject(ctx context.Context, subject uuid.UUID) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}
