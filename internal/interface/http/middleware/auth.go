package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/payflow/storepos/pkg/errors"
	"github.com/payflow/storepos/pkg/jwt"
	"github.com/payflow/storepos/pkg/response"
)

// AuthMiddleware validates the bearer token and injects the operator
// and store identity into the request context.
type AuthMiddleware struct {
	jwtManager *jwt.Manager
}

// NewAuthMiddleware creates the middleware.
func NewAuthMiddleware(jwtManager *jwt.Manager) *AuthMiddleware {
	return &AuthMiddleware{jwtManager: jwtManager}
}

// RequireAuth aborts the request unless a valid token is present.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.ErrorWithCode(c, apperrors.ErrCodeUnauthorized, "authentication required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.ErrorWithCode(c, apperrors.ErrCodeInvalidToken, "malformed authorization header")
			c.Abort()
			return
		}

		claims, err := m.jwtManager.ParseToken(parts[1])
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set("operator_id", claims.OperatorID)
		c.Set("store_id", claims.StoreID)

		c.Next()
	}
}

// GetOperatorID returns the authenticated operator id, zero when
// unauthenticated.
func GetOperatorID(c *gin.Context) uint {
	if v, exists := c.Get("operator_id"); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// GetStoreID returns the authenticated store id, zero when
// unauthenticated.
func GetStoreID(c *gin.Context) uint {
	if v, exists := c.Get("store_id"); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// MustGetOperatorID is GetOperatorID for handlers behind RequireAuth.
func MustGetOperatorID(c *gin.Context) uint {
	id := GetOperatorID(c)
	if id == 0 {
		panic("operator_id not found in context")
	}
	return id
}

// MustGetStoreID is GetStoreID for handlers behind RequireAuth.
func MustGetStoreID(c *gin.Context) uint {
	id := GetStoreID(c)
	if id == 0 {
		panic("store_id not found in context")
	}
	return id
}
