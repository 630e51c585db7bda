package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/multinav_crm/internal/core/analytics"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
	portssvc "github.com/SscSPs/multinav_crm/internal/core/ports/services"
	"github.com/SscSPs/multinav_crm/internal/dto"
)

// workforceHandler handles the workforce snapshot.
type workforceHandler struct {
	workforceService portssvc.WorkforceSvcFacade
}

func newWorkforceHandler(ws portssvc.WorkforceSvcFacade) *workforceHandler {
	return &workforceHandler{workforceService: ws}
}

// registerWorkforceRoutes registers routes related to the workforce snapshot.
func registerWorkforceRoutes(rg *gin.RouterGroup, workforceService portssvc.WorkforceSvcFacade) {
	h := newWorkforceHandler(workforceService)

	workforce := rg.Group("/workforce")
	{
		workforce.GET("", h.getWorkforce)
		workforce.PUT("", h.replaceWorkforce)
		workforce.POST("/entries", h.createEntry)
		workforce.PUT("/entries/:id", h.updateEntry)
		workforce.DELETE("/entries/:id", h.deleteEntry)
	}
}

// getWorkforce godoc
// @Summary Get the workforce snapshot
// @Description Returns the north and south positions with FTE, ethnicity and language totals.
// @Tags workforce
// @Produce json
// @Success 200 {object} dto.WorkforceResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /workforce [get]
func (h *workforceHandler) getWorkforce(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	data, err := h.workforceService.GetWorkforce(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "Failed to retrieve workforce")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkforceResponse(data, analytics.SummarizeWorkforce(data)))
}

// replaceWorkforce godoc
// @Summary Replace the workforce snapshot
// @Description Replaces every position in one step. The list an entry is submitted under decides its partition.
// @Tags workforce
// @Accept json
// @Produce json
// @Param workforce body domain.WorkforceData true "Complete snapshot"
// @Success 200 {object} dto.WorkforceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /workforce [put]
func (h *workforceHandler) replaceWorkforce(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req domain.WorkforceData
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}
	data, err := h.workforceService.ReplaceWorkforce(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to replace workforce")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkforceResponse(data, analytics.SummarizeWorkforce(data)))
}

// createEntry godoc
// @Summary Add a workforce position
// @Tags workforce
// @Accept json
// @Produce json
// @Param entry body dto.CreateWorkforceEntryRequest true "Position details"
// @Success 201 {object} domain.WorkforceEntry
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /workforce/entries [post]
func (h *workforceHandler) createEntry(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateWorkforceEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}
	entry, err := h.workforceService.CreateWorkforceEntry(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to create workforce entry")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// updateEntry godoc
// @Summary Update a workforce position
// @Tags workforce
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param entry body dto.UpdateWorkforceEntryRequest true "Fields to change"
// @Success 200 {object} domain.WorkforceEntry
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /workforce/entries/{id} [put]
func (h *workforceHandler) updateEntry(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateWorkforceEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}
	entry, err := h.workforceService.UpdateWorkforceEntry(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update workforce entry")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// deleteEntry godoc
// @Summary Remove a workforce position
// @Tags workforce
// @Param id path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /workforce/entries/{id} [delete]
func (h *workforceHandler) deleteEntry(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.workforceService.DeleteWorkforceEntry(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete workforce entry")
		return
	}
	c.Status(http.StatusNoContent)
}
