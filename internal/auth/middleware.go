package auth

import (
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/logging"
)

// SecurityScheme is the OpenAPI security scheme name protected operations declare.
const SecurityScheme = "bearer"

type verifier interface {
	Verify(token string) (Identity, error)
}

// Middleware authenticates operations that declare the bearer scheme and puts
// the caller's Identity in the request context. The token is read from the
// Authorization header, or from the access_token query parameter for clients
// such as EventSource that cannot set headers.
func Middleware(api huma.API, tokens verifier) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if !requiresAuth(ctx.Operation()) {
			next(ctx)
			return
		}

		token := bearerToken(ctx)
		if token == "" {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "missing bearer token")
			return
		}

		identity, err := tokens.Verify(token)
		if err != nil {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		logging.Data(ctx.Context(), "userID", identity.UserID.String())
		next(huma.WithContext(ctx, WithIdentity(ctx.Context(), identity)))
	}
}

func requiresAuth(op *huma.Operation) bool {
	if op == nil {
		return false
	}
	for _, requirement := range op.Security {
		if _, ok := requirement[SecurityScheme]; ok {
			return true
		}
	}
	return false
}

func bearerToken(ctx huma.Context) string {
	header := ctx.Header("Authorization")
	if scheme, token, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}
	return ctx.Query("access_token")
}

// Secured is the Security value for operations that need a caller.
var Secured = []map[string][]string{{SecurityScheme: {}}}
