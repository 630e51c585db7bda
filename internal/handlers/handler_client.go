package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/multinav_crm/internal/core/ports/services"
	"github.com/SscSPs/multinav_crm/internal/dto"
	"github.com/SscSPs/multinav_crm/internal/export"
	"github.com/SscSPs/multinav_crm/internal/middleware"
)

// clientHandler handles HTTP requests related to client records.
type clientHandler struct {
	clientService portssvc.ClientSvcFacade
	now           func() time.Time
}

func newClientHandler(cs portssvc.ClientSvcFacade) *clientHandler {
	return &clientHandler{clientService: cs, now: time.Now}
}

// registerClientRoutes registers routes related to clients.
func registerClientRoutes(rg *gin.RouterGroup, clientService portssvc.ClientSvcFacade) {
	h := newClientHandler(clientService)

	clients := rg.Group("/clients")
	{
		clients.POST("", h.createClient)
		clients.GET("", h.listClients)
		clients.GET("/export.csv", h.exportClients)
		clients.GET("/:id", h.getClient)
		clients.PUT("/:id", h.updateClient)
		clients.DELETE("/:id", h.deleteClient)
	}
}

// createClient godoc
// @Summary Register a client
// @Tags clients
// @Accept json
// @Produce json
// @Param client body dto.CreateClientRequest true "Client details"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients [post]
func (h *clientHandler) createClient(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to create client")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Client created", slog.String("client_id", client.ID))
	c.JSON(http.StatusCreated, dto.ToClientResponse(*client))
}

// listClients godoc
// @Summary List clients
// @Tags clients
// @Produce json
// @Success 200 {array} dto.ClientResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients [get]
func (h *clientHandler) listClients(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	clients, err := h.clientService.ListClients(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "Failed to list clients")
		return
	}
	c.JSON(http.StatusOK, dto.ToListClientResponse(clients))
}

// exportClients godoc
// @Summary Export clients as CSV
// @Tags clients
// @Produce text/csv
// @Success 200 {file} file
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/export.csv [get]
func (h *clientHandler) exportClients(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	clients, err := h.clientService.ListClients(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "Failed to export clients")
		return
	}
	var buf bytes.Buffer
	if err := export.WriteClientsCSV(&buf, clients, h.now()); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to render clients CSV", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to export clients"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+export.ClientsCSVFileName+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// getClient godoc
// @Summary Get a client by ID
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} dto.ClientResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id} [get]
func (h *clientHandler) getClient(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	client, err := h.clientService.GetClient(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve client")
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(*client))
}

// updateClient godoc
// @Summary Update a client
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param client body dto.UpdateClientRequest true "Fields to change"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id} [put]
func (h *clientHandler) updateClient(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}
	client, err := h.clientService.UpdateClient(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update client")
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(*client))
}

// deleteClient godoc
// @Summary Delete a client
// @Description Removes the client record. Activities that reference it are kept.
// @Tags clients
// @Param id path string true "Client ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id} [delete]
func (h *clientHandler) deleteClient(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.clientService.DeleteClient(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete client")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Client deleted", slog.String("client_id", c.Param("id")))
	c.Status(http.StatusNoContent)
}
