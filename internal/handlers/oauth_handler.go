package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gadsdencode/pixprofolio/internal/config"
	"github.com/gadsdencode/pixprofolio/internal/logger"
	"github.com/gadsdencode/pixprofolio/internal/models"
	"github.com/gadsdencode/pixprofolio/internal/oauth"
	"github.com/gadsdencode/pixprofolio/internal/services"
)

const oauthFailureRedirect = "/login?error=oauth_failed"

// OAuthHandler drives the Google sign-in round trip. Its routes are only
// registered when Google credentials are configured.
type OAuthHandler struct {
	*BaseHandler
	cfg            *config.Config
	google         *oauth.GoogleClient
	authService    services.AuthService
	sessionService services.SessionService
}

func NewOAuthHandler(base *BaseHandler, cfg *config.Config, google *oauth.GoogleClient, authService services.AuthService, sessionService services.SessionService) *OAuthHandler {
	return &OAuthHandler{
		BaseHandler:    base,
		cfg:            cfg,
		google:         google,
		authService:    authService,
		sessionService: sessionService,
	}
}

func (h *OAuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/google", h.Begin)
	rg.GET("/auth/google/callback", h.Callback)
}

// Begin redirects the browser to the Google consent page.
func (h *OAuthHandler) Begin(c *gin.Context) {
	state, err := h.google.NewState()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, h.google.AuthURL(state))
}

// Callback completes the flow. Every failure path redirects back to the
// login page; a browser mid-OAuth cannot do anything with a JSON error.
func (h *OAuthHandler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	if errParam := c.Query("error"); errParam != "" {
		logger.CtxWarn(ctx, "OAuth provider returned error", "error", errParam)
		c.Redirect(http.StatusTemporaryRedirect, oauthFailureRedirect)
		return
	}

	state := c.Query("state")
	if err := h.google.VerifyState(state); err != nil {
		logger.CtxWithError(ctx, "OAuth state verification failed", err)
		c.Redirect(http.StatusTemporaryRedirect, oauthFailureRedirect)
		return
	}

	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusTemporaryRedirect, oauthFailureRedirect)
		return
	}

	profile, err := h.google.Exchange(ctx, code)
	if err != nil {
		logger.CtxWithError(ctx, "OAuth code exchange failed", err)
		c.Redirect(http.StatusTemporaryRedirect, oauthFailureRedirect)
		return
	}

	db := h.GetDB(c)

	user, err := h.authService.AuthenticateGoogle(db, profile)
	if err != nil {
		logger.CtxWithError(ctx, "OAuth sign-in failed", err)
		c.Redirect(http.StatusTemporaryRedirect, oauthFailureRedirect)
		return
	}

	session, err := h.sessionService.Establish(db, user.ID)
	if err != nil {
		logger.CtxWithError(ctx, "OAuth session establish failed", err)
		c.Redirect(http.StatusTemporaryRedirect, oauthFailureRedirect)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	maxAge := h.cfg.Session.TTLHours * 3600
	c.SetCookie(h.cfg.Session.CookieName, session.Token, maxAge, "/", "", h.cfg.Session.Secure, true)

	if user.Role == models.UserRoleOwner {
		c.Redirect(http.StatusTemporaryRedirect, "/owner-dashboard")
	} else {
		c.Redirect(http.StatusTemporaryRedirect, "/client-dashboard")
	}
}
