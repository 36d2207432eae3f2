package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mayowa-ojo/digibank/internal/domain/entity"
	domainerr "github.com/mayowa-ojo/digibank/internal/domain/error"
	coreport "github.com/mayowa-ojo/digibank/internal/domain/port/core"
	"github.com/mayowa-ojo/digibank/internal/domain/port/persistence"
	"github.com/mayowa-ojo/digibank/internal/infrastructure/adapter/api/dto"
)

// authUserKey is the gin context key holding the authenticated user
const authUserKey = "auth_user"

// RequireAuth verifies the Bearer token and loads the caller's user record.
// The role on the request is always the stored one, never a token claim,
// so a promotion or demotion takes effect on the next request.
func RequireAuth(tokens coreport.TokenProvider, users persistence.UserRepository, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
				Message: "Missing or malformed Authorization header",
			})
			return
		}

		userID, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
				Message: "Invalid or expired token",
			})
			return
		}

		user, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			logger.Warn("Token subject no longer exists", map[string]any{
				"user_id": userID,
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set(authUserKey, user)
		c.Next()
	}
}

// RequireAdmin rejects callers without the admin role. Must run after
// RequireAuth.
func RequireAdmin(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := AuthUser(c)
		if !ok || !user.IsAdmin() {
			if ok {
				logger.Warn("Non-admin attempted admin operation", map[string]any{
					"user_id": user.ID,
					"path":    c.Request.URL.Path,
				})
			}
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrForbidden),
				Message: "Admin role required",
			})
			return
		}

		c.Next()
	}
}

// AuthUser returns the authenticated user attached by RequireAuth
func AuthUser(c *gin.Context) (*entity.User, bool) {
	value, exists := c.Get(authUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*entity.User)
	return user, ok
}
