package auth

import (
	"context"

	"github.com/gin-gonic/gin"
)

const identityKey = "auth_identity"

type identityCtxKey struct{}

// Identity is the authenticated caller, derived from a validated token on every request.
// It is passed by value so downstream code cannot alter it.
type Identity struct {
	UserID   uint   `json:"user_id" example:"7"`
	TenantID uint   `json:"tenant_id" example:"1"`
	Username string `json:"username" example:"alice"`
}

// WithIdentity returns a copy of ctx carrying the identity
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, identity)
}

// IdentityFromContext extracts the identity stored by WithIdentity
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey{}).(Identity)
	return identity, ok
}

// IdentityFrom returns the identity RequireAuth attached to the request
func IdentityFrom(c *gin.Context) (Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}

	identity, ok := value.(Identity)
	if !ok || identity.TenantID == 0 || identity.UserID == 0 {
		return Identity{}, false
	}
	return identity, true
}

// SetIdentity attaches an identity to the gin context and the request context
func SetIdentity(c *gin.Context, identity Identity) {
	c.Set(identityKey, identity)
	c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), identity))
}
