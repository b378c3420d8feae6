package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbermatch/internal/auth"
	"github.com/BruksfildServices01/barbermatch/internal/domain/booking"
	"github.com/BruksfildServices01/barbermatch/internal/httperr"
	"github.com/BruksfildServices01/barbermatch/internal/usecase/profile"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

// AuthMiddleware verifies the bearer token and makes sure the caller has a
// profile. The stored role wins over whatever the token claims.
func AuthMiddleware(verifier auth.Verifier, ensure *profile.EnsureProfile) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Authentication required.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Authentication required.")
			c.Abort()
			return
		}

		id, err := verifier.Verify(c.Request.Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Invalid or expired token.")
			c.Abort()
			return
		}

		user, err := ensure.Execute(c.Request.Context(), id)
		if err != nil {
			httperr.FromError(c, err, "profile_unavailable")
			c.Abort()
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUserRole, user.Role)

		c.Next()
	}
}

// Actor reads the authenticated caller set by AuthMiddleware.
func Actor(c *gin.Context) booking.Actor {
	return booking.Actor{
		UserID: c.GetString(ContextUserID),
		Role:   c.GetString(ContextUserRole),
	}
}
