package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	portssvc "github.com/SscSPs/multinav_crm/internal/core/ports/services"
	"github.com/SscSPs/multinav_crm/internal/dto"
	"github.com/SscSPs/multinav_crm/internal/middleware"
	"github.com/SscSPs/multinav_crm/internal/utils"
)

// authHandler handles authentication related requests.
type authHandler struct {
	staffService     portssvc.StaffAuthSvc
	tokenService     portssvc.TokenSvcFacade
	reportingService portssvc.ReportingService
	posthog          *utils.PosthogClientWrapper
}

func newAuthHandler(services *portssvc.ServiceContainer, posthog *utils.PosthogClientWrapper) *authHandler {
	return &authHandler{
		staffService:     services.Staff,
		tokenService:     services.TokenService,
		reportingService: services.Reporting,
		posthog:          posthog,
	}
}

// registerAuthRoutes sets up the public login route. The login endpoint is
// rate limited per client IP.
func registerAuthRoutes(rg *gin.RouterGroup, h *authHandler, loginLimiter *limiter.Limiter) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimit(loginLimiter), h.login)
	}
}

// registerSessionRoutes sets up routes that operate on the current session.
func registerSessionRoutes(rg *gin.RouterGroup, h *authHandler) {
	rg.POST("/auth/logout", h.logout)
	rg.GET("/me/capabilities", h.capabilities)
}

// login godoc
// @Summary Staff login
// @Description Authenticates a staff member by email and password and returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request body")
		return
	}

	staff, err := h.staffService.AuthenticateStaff(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if statusFor(err) == http.StatusUnauthorized {
			logger.Warn("Login rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
			return
		}
		respondError(c, err, "Failed to sign in")
		return
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), staff)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("user_id", staff.ID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	actor := staff.Actor()
	h.posthog.Enqueue(staff.ID, "staff_logged_in", map[string]any{"role": string(staff.Role), "method": "password"})
	logger.Info("Staff signed in", slog.String("user_id", staff.ID), slog.String("role", string(staff.Role)))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:        token,
		ExpiresAt:    expiresAt,
		Staff:        dto.ToStaffResponse(*staff),
		Capabilities: h.reportingService.Capabilities(c.Request.Context(), &actor).List(),
	})
}

// logout godoc
// @Summary Staff logout
// @Description Revokes the current session token. Demo sessions have nothing to revoke.
// @Tags auth
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	if _, ok := requireActor(c); !ok {
		return
	}
	session, ok := middleware.GetSessionFromCtx(c.Request.Context())
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	if err := h.tokenService.RevokeSession(c.Request.Context(), session); err != nil {
		respondError(c, err, "Failed to sign out")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Session revoked")
	c.Status(http.StatusNoContent)
}

// capabilities godoc
// @Summary List session capabilities
// @Description Returns the navigation surfaces the current session may open.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.CapabilitiesResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /me/capabilities [get]
func (h *authHandler) capabilities(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	resp := dto.CapabilitiesResponse{
		Demo:         actor == nil,
		Capabilities: h.reportingService.Capabilities(c.Request.Context(), actor).List(),
	}
	if actor != nil {
		resp.Role = actor.Role
	}
	c.JSON(http.StatusOK, resp)
}
