package auth

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
)

// Identity is the authenticated caller. Handlers read it once and pass
// UserID down as the owner of every record they touch.
type Identity struct {
	UserID uuid.UUID
}

type identityKey struct{}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext returns the caller set by the middleware.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(Identity)
	return identity, ok && identity.UserID != uuid.Nil
}

// RequireOwner returns the caller's user id, or a 401 when the request was not authenticated.
func RequireOwner(ctx context.Context) (uuid.UUID, error) {
	identity, ok := IdentityFromContext(ctx)
	if !ok {
		return uuid.Nil, huma.Error401Unauthorized("authentication required")
	}
	return identity.UserID, nil
}
