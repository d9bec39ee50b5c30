package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/voluntai/voluntai-api/internal/auth"
	"github.com/voluntai/voluntai-api/internal/constants"
	apierrors "github.com/voluntai/voluntai-api/internal/errors"
	"github.com/voluntai/voluntai-api/internal/models"
)

// RequireAuth verifies the bearer credential and stores the account id and
// kind in the request context. Ownership checks stay in the handlers.
func RequireAuth(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			apierrors.Unauthorized(c, "Token não enviado")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			apierrors.Unauthorized(c, "Token não enviado")
			c.Abort()
			return
		}

		claims, err := issuer.Verify(parts[1])
		if err != nil {
			apierrors.Unauthorized(c, "Token inválido")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUserKind, claims.Kind)
		c.Next()
	}
}

// GetUserID retrieves the current account id from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint64)
	return id, ok
}

// GetUserKind retrieves the current account kind from context
func GetUserKind(c *gin.Context) (models.UserKind, bool) {
	kind, exists := c.Get(constants.ContextKeyUserKind)
	if !exists {
		return "", false
	}

	k, ok := kind.(models.UserKind)
	return k, ok
}
