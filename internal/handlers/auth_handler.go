package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gadsdencode/pixprofolio/internal/config"
	"github.com/gadsdencode/pixprofolio/internal/logger"
	"github.com/gadsdencode/pixprofolio/internal/middleware"
	"github.com/gadsdencode/pixprofolio/internal/services"
	"github.com/gadsdencode/pixprofolio/internal/services/dto"
)

type AuthHandler struct {
	*BaseHandler
	cfg            *config.Config
	authService    services.AuthService
	sessionService services.SessionService
}

func NewAuthHandler(base *BaseHandler, cfg *config.Config, authService services.AuthService, sessionService services.SessionService) *AuthHandler {
	return &AuthHandler{
		BaseHandler:    base,
		cfg:            cfg,
		authService:    authService,
		sessionService: sessionService,
	}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.POST("/logout", h.Logout)
	rg.GET("/auth/status", h.Status)
}

// Register creates a client account. It does not establish a session; the
// frontend follows up with a login call.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	user, err := h.authService.Register(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
	})
}

// Login verifies credentials, persists a session and only then sets the
// cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	user, err := h.authService.AuthenticateLocal(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	session, err := h.sessionService.Establish(db, user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setSessionCookie(c, session.Token)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}

// Logout deletes the server-side session and expires the cookie. Logging out
// without a session still succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(h.cfg.Session.CookieName)
	if err == nil && token != "" {
		db := h.GetDB(c)
		if err := h.sessionService.Terminate(db, token); err != nil {
			logger.CtxWithError(c.Request.Context(), "Failed to terminate session", err)
		}
	}

	h.clearSessionCookie(c)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Status reports the session state; it never returns an error status.
func (h *AuthHandler) Status(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user": gin.H{
			"id":             user.ID,
			"email":          user.Email,
			"name":           user.Name,
			"role":           user.Role,
			"provider":       user.Provider,
			"profilePicture": user.ProfilePicture,
		},
	})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	maxAge := h.cfg.Session.TTLHours * 3600
	c.SetCookie(h.cfg.Session.CookieName, token, maxAge, "/", "", h.cfg.Session.Secure, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.Session.CookieName, "", -1, "/", "", h.cfg.Session.Secure, true)
}
