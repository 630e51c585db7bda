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

// portalHandler serves the client portal and the staff view of what clients
// submit through it.
type portalHandler struct {
	portalService portssvc.PortalSvcFacade
	tokenService  portssvc.TokenSvcFacade
	posthog       *utils.PosthogClientWrapper
}

func newPortalHandler(services *portssvc.ServiceContainer, posthog *utils.PosthogClientWrapper) *portalHandler {
	return &portalHandler{
		portalService: services.Portal,
		tokenService:  services.TokenService,
		posthog:       posthog,
	}
}

// registerPortalLoginRoutes sets up the public portal sign-in, rate limited
// like staff login.
func registerPortalLoginRoutes(rg *gin.RouterGroup, h *portalHandler, loginLimiter *limiter.Limiter) {
	rg.POST("/portal/login", middleware.RateLimit(loginLimiter), h.login)
}

// registerPortalRoutes sets up the authenticated portal routes.
func registerPortalRoutes(rg *gin.RouterGroup, h *portalHandler) {
	portal := rg.Group("/portal")
	{
		portal.GET("/me", h.profile)
		portal.GET("/experiences", h.listOwnExperiences)
		portal.POST("/experiences", h.submitExperience)
		portal.GET("/messages", h.listOwnMessages)
		portal.POST("/messages", h.sendMessage)
		portal.GET("/inbox", h.inbox)
	}

	clients := rg.Group("/clients/:id")
	{
		clients.GET("/experiences", h.listClientExperiences)
		clients.PUT("/experiences/:experienceId/read", h.markExperienceRead)
		clients.GET("/messages", h.listClientMessages)
		clients.POST("/messages", h.replyToClient)
		clients.PUT("/messages/:messageId/read", h.markMessageRead)
	}
}

// login godoc
// @Summary Client portal login
// @Description Authenticates a client by client ID and portal password.
// @Tags portal
// @Accept json
// @Produce json
// @Param login body dto.PortalLoginRequest true "Portal credentials"
// @Success 200 {object} dto.PortalLoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /portal/login [post]
func (h *portalHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PortalLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request body")
		return
	}

	client, err := h.portalService.AuthenticateClient(c.Request.Context(), req.ClientID, req.Password)
	if err != nil {
		if statusFor(err) == http.StatusUnauthorized {
			logger.Warn("Portal login rejected")
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid client ID or password"})
			return
		}
		respondError(c, err, "Failed to sign in")
		return
	}

	token, expiresAt, err := h.tokenService.GeneratePortalToken(c.Request.Context(), client)
	if err != nil {
		logger.Error("Failed to generate portal token", slog.String("client_id", client.ID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	h.posthog.Enqueue(middleware.PortalDistinctID, "client_portal_logged_in", map[string]any{"method": "password"})
	c.JSON(http.StatusOK, dto.PortalLoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Client:    dto.ToPortalProfile(*client),
	})
}

// profile godoc
// @Summary Signed-in client's profile
// @Tags portal
// @Produce json
// @Success 200 {object} dto.PortalProfile
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /portal/me [get]
func (h *portalHandler) profile(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	client, err := h.portalService.Profile(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "Failed to load profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToPortalProfile(*client))
}

// listOwnExperiences godoc
// @Summary List the signed-in client's experience entries
// @Tags portal
// @Produce json
// @Success 200 {array} domain.ExperienceEntry
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /portal/experiences [get]
func (h *portalHandler) listOwnExperiences(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	entries, err := h.portalService.ListOwnExperiences(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "Failed to list experiences")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// submitExperience godoc
// @Summary Submit an experience entry
// @Tags portal
// @Accept json
// @Produce json
// @Param entry body dto.CreateExperienceRequest true "Experience entry"
// @Success 201 {object} domain.ExperienceEntry
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /portal/experiences [post]
func (h *portalHandler) submitExperience(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}
	entry, err := h.portalService.SubmitExperience(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to submit experience")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// listOwnMessages godoc
// @Summary List the signed-in client's conversation
// @Tags portal
// @Produce json
// @Success 200 {array} domain.PortalMessage
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /portal/messages [get]
func (h *portalHandler) listOwnMessages(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	messages, err := h.portalService.ListOwnMessages(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "Failed to list messages")
		return
	}
	c.JSON(http.StatusOK, messages)
}

// sendMessage godoc
// @Summary Send a message to the navigation team
// @Tags portal
// @Accept json
// @Produce json
// @Param message body dto.SendMessageRequest true "Message"
// @Success 201 {object} domain.PortalMessage
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /portal/messages [post]
func (h *portalHandler) sendMessage(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}
	message, err := h.portalService.SendClientMessage(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to send message")
		return
	}
	c.JSON(http.StatusCreated, message)
}

// inbox godoc
// @Summary Portal submissions by client
// @Description Clients with experience entries or messages, with unread counts, most recent first.
// @Tags portal
// @Produce json
// @Success 200 {array} domain.PortalInboxEntry
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /portal/inbox [get]
func (h *portalHandler) inbox(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	inbox, err := h.portalService.PortalInbox(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "Failed to load portal inbox")
		return
	}
	c.JSON(http.StatusOK, inbox)
}

// listClientExperiences godoc
// @Summary List a client's experience entries
// @Tags portal
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {array} domain.ExperienceEntry
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/experiences [get]
func (h *portalHandler) listClientExperiences(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	entries, err := h.portalService.ListClientExperiences(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list experiences")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// markExperienceRead godoc
// @Summary Mark an experience entry read
// @Tags portal
// @Param id path string true "Client ID"
// @Param experienceId path string true "Experience ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/experiences/{experienceId}/read [put]
func (h *portalHandler) markExperienceRead(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.portalService.MarkExperienceRead(c.Request.Context(), actor, c.Param("id"), c.Param("experienceId")); err != nil {
		respondError(c, err, "Failed to mark experience read")
		return
	}
	c.Status(http.StatusNoContent)
}

// listClientMessages godoc
// @Summary List a client's portal conversation
// @Tags portal
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {array} domain.PortalMessage
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/messages [get]
func (h *portalHandler) listClientMessages(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	messages, err := h.portalService.ListClientMessages(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list messages")
		return
	}
	c.JSON(http.StatusOK, messages)
}

// replyToClient godoc
// @Summary Reply to a client through the portal
// @Tags portal
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param message body dto.SendMessageRequest true "Message"
// @Success 201 {object} domain.PortalMessage
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/messages [post]
func (h *portalHandler) replyToClient(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}
	message, err := h.portalService.ReplyToClient(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to send message")
		return
	}
	c.JSON(http.StatusCreated, message)
}

// markMessageRead godoc
// @Summary Mark a portal message read
// @Tags portal
// @Param id path string true "Client ID"
// @Param messageId path string true "Message ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/messages/{messageId}/read [put]
func (h *portalHandler) markMessageRead(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.portalService.MarkMessageRead(c.Request.Context(), actor, c.Param("id"), c.Param("messageId")); err != nil {
		respondError(c, err, "Failed to mark message read")
		return
	}
	c.Status(http.StatusNoContent)
}
