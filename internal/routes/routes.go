package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/gadsdencode/pixprofolio/internal/handlers"
	"github.com/gadsdencode/pixprofolio/internal/logger"
)

// RegisterRoutes mounts every HTTP route under /api.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.InvoiceHandler.RegisterRoutes(api)
		appHandlers.PortfolioHandler.RegisterRoutes(api)
		appHandlers.ContactHandler.RegisterRoutes(api)

		if appHandlers.OAuthHandler != nil {
			appHandlers.OAuthHandler.RegisterRoutes(api)
		} else {
			logger.Warn("Google OAuth credentials not configured. OAuth routes disabled.")
		}
	}
}
