package middleware

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gadsdencode/pixprofolio/internal/logger"
	"github.com/gadsdencode/pixprofolio/internal/models"
	"github.com/gadsdencode/pixprofolio/internal/services"
	"github.com/gadsdencode/pixprofolio/pkg/apperrors"
)

const currentUserKey = "currentUser"

// Authenticate resolves the session cookie to a user and stores it on the
// context. Anonymous requests pass through; gating happens in
// RequireAuthenticated and RequireRole.
func Authenticate(sessionService services.SessionService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		db, ok := c.MustGet(DBKey).(*gorm.DB)
		if !ok {
			c.Next()
			return
		}

		user, err := sessionService.Resolve(db, token)
		if err != nil {
			// Stale cookie; the request proceeds anonymously.
			c.Next()
			return
		}

		c.Set(currentUserKey, user)
		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireAuthenticated rejects anonymous requests.
func RequireAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			apperrors.HandleError(c, apperrors.ErrNotAuthenticated)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole rejects anonymous requests as unauthenticated and
// wrong-role requests as denied.
func RequireRole(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			apperrors.HandleError(c, apperrors.ErrNotAuthenticated)
			c.Abort()
			return
		}
		if user.Role != role {
			apperrors.HandleError(c, apperrors.ErrAccessDenied)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user for this request, or nil.
func CurrentUser(c *gin.Context) *models.User {
	val, exists := c.Get(currentUserKey)
	if !exists {
		return nil
	}
	user, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return user
}
