package auth

import (
	"net/http"
	"strings"

	"agrimanager-backend/internal/api/response"
	apperrors "agrimanager-backend/internal/errors"
	"agrimanager-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates the bearer token and attaches the caller identity.
// Preflight OPTIONS requests pass through unauthenticated.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Unauthorized(c, apperrors.ErrUnauthenticated.Error())
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			logger.WithContext(c.Request.Context()).WithError(err).Debug("rejected bearer token")
			response.Unauthorized(c, apperrors.ErrUnauthenticated.Error())
			return
		}

		identity := claims.Identity()
		SetIdentity(c, identity)
		c.Request = c.Request.WithContext(logger.NewContext(c.Request.Context(), logrus.Fields{
			"tenant_id": identity.TenantID,
			"user_id":   identity.UserID,
			"user":      identity.Username,
		}))

		c.Next()
	}
}

// bearerToken extracts the token of an "Authorization: Bearer <token>" header
func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
