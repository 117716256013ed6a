package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/will4skill/diet-api/entity"
	"github.com/will4skill/diet-api/service"
)

// Authenticate verifies the x-auth-token header and attaches the decoded
// identity to the request context.
//
// The status asymmetry is part of the API contract: a missing token is
// 401, a token that fails verification is 400.
//
// auth_middleware_on=false disables enforcement entirely.
func Authenticate(tokens service.TokenService, config *entity.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !config.AuthMiddlewareOn {
			c.Next()
			return
		}

		tokenString := c.GetHeader("x-auth-token")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		identity, err := tokens.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Bad Request, Invalid JWT"})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireAdmin gates a route to admin identities. It runs after
// Authenticate. A request with no identity is rejected, which also covers
// the case where auth enforcement is on but the identity was never set.
func RequireAdmin(config *entity.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !config.AdminMiddlewareOn {
			c.Next()
			return
		}

		identity, ok := CurrentIdentity(c)
		if !ok || !identity.Admin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}
