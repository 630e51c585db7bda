package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/multinav_crm/internal/core/ports/services"
	"github.com/SscSPs/multinav_crm/internal/dto"
	"github.com/SscSPs/multinav_crm/internal/middleware"
)

// directoryHandler serves the reference pages navigators work from: the GP
// practice directory, the resource library and the local insights links.
type directoryHandler struct {
	practiceService      portssvc.PracticeSvcFacade
	resourceService      portssvc.ResourceSvcFacade
	localInsightsService portssvc.LocalInsightsSvc
}

func newDirectoryHandler(services *portssvc.ServiceContainer) *directoryHandler {
	return &directoryHandler{
		practiceService:      services.Practice,
		resourceService:      services.Resource,
		localInsightsService: services.LocalInsights,
	}
}

// registerDirectoryRoutes registers the practice, resource and local insights routes.
func registerDirectoryRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newDirectoryHandler(services)

	practices := rg.Group("/practices")
	{
		practices.POST("", h.createPractice)
		practices.GET("", h.listPractices)
		practices.GET("/:id", h.getPractice)
		practices.PUT("/:id", h.updatePractice)
		practices.DELETE("/:id", h.deletePractice)
	}

	resources := rg.Group("/resources")
	{
		resources.POST("", h.createResource)
		resources.GET("", h.listResources)
		resources.GET("/:id", h.getResource)
		resources.PUT("/:id", h.updateResource)
		resources.DELETE("/:id", h.deleteResource)
	}

	rg.GET("/local-insights", h.localInsights)
}

// createPractice godoc
// @Summary Add a GP practice
// @Tags practices
// @Accept json
// @Produce json
// @Param practice body dto.CreatePracticeRequest true "Practice details"
// @Success 201 {object} domain.GpPractice
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /practices [post]
func (h *directoryHandler) createPractice(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreatePracticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}
	practice, err := h.practiceService.CreatePractice(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to create practice")
		return
	}
	c.JSON(http.StatusCreated, practice)
}

// listPractices godoc
// @Summary List GP practices
// @Description Returns the practice directory ordered by name.
// @Tags practices
// @Produce json
// @Success 200 {array} domain.GpPractice
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /practices [get]
func (h *directoryHandler) listPractices(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	practices, err := h.practiceService.ListPractices(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "Failed to list practices")
		return
	}
	c.JSON(http.StatusOK, practices)
}

// getPractice godoc
// @Summary Get a GP practice
// @Tags practices
// @Produce json
// @Param id path string true "Practice ID"
// @Success 200 {object} domain.GpPractice
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /practices/{id} [get]
func (h *directoryHandler) getPractice(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	practice, err := h.practiceService.GetPractice(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve practice")
		return
	}
	c.JSON(http.StatusOK, practice)
}

// updatePractice godoc
// @Summary Update a GP practice
// @Tags practices
// @Accept json
// @Produce json
// @Param id path string true "Practice ID"
// @Param practice body dto.UpdatePracticeRequest true "Fields to change"
// @Success 200 {object} domain.GpPractice
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /practices/{id} [put]
func (h *directoryHandler) updatePractice(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdatePracticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}
	practice, err := h.practiceService.UpdatePractice(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update practice")
		return
	}
	c.JSON(http.StatusOK, practice)
}

// deletePractice godoc
// @Summary Delete a GP practice
// @Tags practices
// @Param id path string true "Practice ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /practices/{id} [delete]
func (h *directoryHandler) deletePractice(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.practiceService.DeletePractice(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete practice")
		return
	}
	c.Status(http.StatusNoContent)
}

// createResource godoc
// @Summary Record an uploaded resource
// @Description Stores the metadata of a file already uploaded to object storage.
// @Tags resources
// @Accept json
// @Produce json
// @Param resource body dto.CreateResourceRequest true "Resource details"
// @Success 201 {object} domain.ProgramResource
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /resources [post]
func (h *directoryHandler) createResource(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}
	resource, err := h.resourceService.CreateResource(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to add resource")
		return
	}
	c.JSON(http.StatusCreated, resource)
}

// listResources godoc
// @Summary List library resources
// @Tags resources
// @Produce json
// @Param category query string false "Library section"
// @Success 200 {array} domain.ProgramResource
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /resources [get]
func (h *directoryHandler) listResources(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var q dto.ResourceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err, "query parameters")
		return
	}
	resources, err := h.resourceService.ListResources(c.Request.Context(), actor, q.Category)
	if err != nil {
		respondError(c, err, "Failed to list resources")
		return
	}
	c.JSON(http.StatusOK, resources)
}

// getResource godoc
// @Summary Get a library resource
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} domain.ProgramResource
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /resources/{id} [get]
func (h *directoryHandler) getResource(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	resource, err := h.resourceService.GetResource(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve resource")
		return
	}
	c.JSON(http.StatusOK, resource)
}

// updateResource godoc
// @Summary Rename or re-file a library resource
// @Tags resources
// @Accept json
// @Produce json
// @Param id path string true "Resource ID"
// @Param resource body dto.UpdateResourceRequest true "Fields to change"
// @Success 200 {object} domain.ProgramResource
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /resources/{id} [put]
func (h *directoryHandler) updateResource(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}
	resource, err := h.resourceService.UpdateResource(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update resource")
		return
	}
	c.JSON(http.StatusOK, resource)
}

// deleteResource godoc
// @Summary Delete a library resource
// @Description Removes the record and returns it so the caller can delete the stored file.
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} domain.ProgramResource
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /resources/{id} [delete]
func (h *directoryHandler) deleteResource(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	resource, err := h.resourceService.DeleteResource(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to delete resource")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Resource removed",
		slog.String("resource_id", resource.ID))
	c.JSON(http.StatusOK, resource)
}

// localInsights godoc
// @Summary List local area social atlas links
// @Tags local-insights
// @Produce json
// @Success 200 {array} domain.LocalArea
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /local-insights [get]
func (h *directoryHandler) localInsights(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	areas, err := h.localInsightsService.LocalAreas(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "Failed to load local insights")
		return
	}
	c.JSON(http.StatusOK, areas)
}
