package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/multinav_crm/internal/core/ports/services"
	"github.com/SscSPs/multinav_crm/internal/middleware"
	"github.com/SscSPs/multinav_crm/internal/platform/config"
	"github.com/SscSPs/multinav_crm/internal/utils"
)

const oauthStateCookie = "multinav_oauth_state"

// googleOAuthHandler handles the browser side of Google sign-in. Only
// existing, active staff accounts can sign in this way.
type googleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	staffService       portssvc.StaffAuthSvc
	tokenService       portssvc.TokenSvcFacade
	posthog            *utils.PosthogClientWrapper
	frontendBaseURL    string
	secureCookies      bool
}

func newGoogleOAuthHandler(cfg *config.Config, services *portssvc.ServiceContainer, posthog *utils.PosthogClientWrapper) *googleOAuthHandler {
	return &googleOAuthHandler{
		googleOAuthService: services.GoogleOAuthHandler,
		staffService:       services.Staff,
		tokenService:       services.TokenService,
		posthog:            posthog,
		frontendBaseURL:    strings.TrimRight(cfg.FrontendBaseURL, "/"),
		secureCookies:      cfg.IsProduction,
	}
}

// registerGoogleOAuthRoutes registers the Google OAuth routes.
func registerGoogleOAuthRoutes(rg *gin.RouterGroup, h *googleOAuthHandler) {
	googleRoutes := rg.Group("/auth/google")
	{
		googleRoutes.GET("/login", h.loginGoogle)
		googleRoutes.GET("/callback", h.callbackGoogle)
	}
}

// loginGoogle godoc
// @Summary Start Google sign-in
// @Description Redirects the browser to Google's consent screen.
// @Tags oauth
// @Success 307 "Redirect to Google"
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/login [get]
func (h *googleOAuthHandler) loginGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	state, err := h.googleOAuthService.GenerateStateString(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start Google sign-in"})
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, int((10 * time.Minute).Seconds()), "/", "", h.secureCookies, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuthService.GetGoogleLoginURL(ctx, state))
}

// callbackGoogle godoc
// @Summary Complete Google sign-in
// @Description Verifies the OAuth state, exchanges the code and redirects to the frontend with a session token in the URL fragment.
// @Tags oauth
// @Param state query string true "OAuth state"
// @Param code query string true "Authorization code"
// @Success 302 "Redirect to the frontend"
// @Router /auth/google/callback [get]
func (h *googleOAuthHandler) callbackGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	expected, err := c.Cookie(oauthStateCookie)
	c.SetCookie(oauthStateCookie, "", -1, "/", "", h.secureCookies, true)
	if err != nil || expected == "" || c.Query("state") != expected {
		logger.Warn("OAuth state mismatch")
		h.redirectWithError(c, "invalid_state")
		return
	}
	code := c.Query("code")
	if code == "" {
		logger.Warn("Authorization code missing from Google callback", slog.String("google_error", c.Query("error")))
		h.redirectWithError(c, "access_denied")
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, code)
	if err != nil {
		logger.Warn("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		h.redirectWithError(c, "exchange_failed")
		return
	}
	identity, err := h.googleOAuthService.VerifyIdentity(ctx, oauth2Token)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		h.redirectWithError(c, "invalid_token")
		return
	}

	staff, err := h.staffService.AuthenticateGoogle(ctx, *identity)
	if err != nil {
		if statusFor(err) == http.StatusUnauthorized {
			logger.Warn("Google identity has no active staff account", slog.String("error", err.Error()))
			h.redirectWithError(c, "not_registered")
			return
		}
		logger.Error("Failed to authenticate Google identity", slog.String("error", err.Error()))
		h.redirectWithError(c, "server_error")
		return
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(ctx, staff)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("user_id", staff.ID), slog.String("error", err.Error()))
		h.redirectWithError(c, "server_error")
		return
	}

	h.posthog.Enqueue(staff.ID, "staff_logged_in", map[string]any{"role": string(staff.Role), "method": "google"})
	logger.Info("Staff signed in with Google", slog.String("user_id", staff.ID))

	fragment := url.Values{}
	fragment.Set("token", token)
	fragment.Set("expiresAt", expiresAt.UTC().Format(time.RFC3339))
	c.Redirect(http.StatusFound, h.frontendBaseURL+"/auth/callback#"+fragment.Encode())
}

func (h *googleOAuthHandler) redirectWithError(c *gin.Context, reason string) {
	c.Redirect(http.StatusFound, h.frontendBaseURL+"/login?error="+url.QueryEscape(reason))
}
