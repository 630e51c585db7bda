package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/multinav_crm/internal/core/ports/services"
	"github.com/SscSPs/multinav_crm/internal/dto"
	"github.com/SscSPs/multinav_crm/internal/middleware"
)

// activityHandler handles HTTP requests related to the activity log.
type activityHandler struct {
	activityService portssvc.ActivitySvcFacade
}

func newActivityHandler(as portssvc.ActivitySvcFacade) *activityHandler {
	return &activityHandler{activityService: as}
}

// registerActivityRoutes registers routes related to activities.
func registerActivityRoutes(rg *gin.RouterGroup, activityService portssvc.ActivitySvcFacade) {
	h := newActivityHandler(activityService)

	activities := rg.Group("/activities")
	{
		activities.POST("", h.createActivity)
		activities.GET("", h.listActivities)
		activities.GET("/:id", h.getActivity)
		activities.PUT("/:id", h.updateActivity)
		activities.DELETE("/:id", h.deleteActivity)
	}
}

// createActivity godoc
// @Summary Record an activity
// @Description Records a navigation activity. The signed-in staff member is recorded as its author.
// @Tags activities
// @Accept json
// @Produce json
// @Param activity body dto.CreateActivityRequest true "Activity details"
// @Success 201 {object} dto.ActivityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /activities [post]
func (h *activityHandler) createActivity(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}
	view, err := h.activityService.CreateActivity(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to create activity")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Activity created", slog.String("activity_id", view.ID))
	c.JSON(http.StatusCreated, dto.ToActivityResponse(*view))
}

// listActivities godoc
// @Summary List activities
// @Description Lists the activities visible to the session, newest first, one page at a time.
// @Tags activities
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Token from the previous page"
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Param region query string false "North, South or all"
// @Param location query string false "Activity location"
// @Param staff query string false "Staff email or name"
// @Param ethnicity query string false "Client ethnicity"
// @Param serviceType query string false "Navigation or service tag"
// @Success 200 {object} dto.ListActivitiesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /activities [get]
func (h *activityHandler) listActivities(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var params dto.ListActivitiesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "query parameters")
		return
	}
	criteria, err := params.ToCriteria()
	if err != nil {
		respondError(c, err, "Invalid activity filters")
		return
	}
	views, next, err := h.activityService.ListActivities(c.Request.Context(), actor, criteria, params.Limit, params.NextToken)
	if err != nil {
		respondError(c, err, "Failed to list activities")
		return
	}
	c.JSON(http.StatusOK, dto.ListActivitiesResponse{
		Activities: dto.ToListActivityResponse(views),
		NextToken:  next,
	})
}

// getActivity godoc
// @Summary Get an activity by ID
// @Tags activities
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} dto.ActivityResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /activities/{id} [get]
func (h *activityHandler) getActivity(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	view, err := h.activityService.GetActivity(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve activity")
		return
	}
	c.JSON(http.StatusOK, dto.ToActivityResponse(*view))
}

// updateActivity godoc
// @Summary Update an activity
// @Description Replaces the editable fields of an activity. Authorship never changes.
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param activity body dto.UpdateActivityRequest true "Activity details"
// @Success 200 {object} dto.ActivityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /activities/{id} [put]
func (h *activityHandler) updateActivity(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}
	view, err := h.activityService.UpdateActivity(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update activity")
		return
	}
	c.JSON(http.StatusOK, dto.ToActivityResponse(*view))
}

// deleteActivity godoc
// @Summary Delete an activity
// @Tags activities
// @Param id path string true "Activity ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /activities/{id} [delete]
func (h *activityHandler) deleteActivity(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.activityService.DeleteActivity(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete activity")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Activity deleted", slog.String("activity_id", c.Param("id")))
	c.Status(http.StatusNoContent)
}
