package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/multinav_crm/internal/core/ports/services"
	"github.com/SscSPs/multinav_crm/internal/dto"
	"github.com/SscSPs/multinav_crm/internal/middleware"
)

// staffHandler handles staff account administration.
type staffHandler struct {
	staffService portssvc.StaffSvcFacade
}

func newStaffHandler(ss portssvc.StaffSvcFacade) *staffHandler {
	return &staffHandler{staffService: ss}
}

// registerStaffRoutes registers routes related to staff accounts.
func registerStaffRoutes(rg *gin.RouterGroup, staffService portssvc.StaffSvcFacade) {
	h := newStaffHandler(staffService)

	staff := rg.Group("/staff")
	{
		staff.POST("", h.createStaff)
		staff.GET("", h.listStaff)
		staff.GET("/:id", h.getStaff)
		staff.PUT("/:id", h.updateStaff)
		staff.DELETE("/:id", h.deleteStaff)
	}
}

// createStaff godoc
// @Summary Create a staff account
// @Tags staff
// @Accept json
// @Produce json
// @Param staff body dto.CreateStaffRequest true "Account details"
// @Success 201 {object} dto.StaffResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff [post]
func (h *staffHandler) createStaff(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}
	account, err := h.staffService.CreateStaff(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to create staff account")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Staff account created",
		slog.String("staff_id", account.ID), slog.String("role", string(account.Role)))
	c.JSON(http.StatusCreated, dto.ToStaffResponse(*account))
}

// listStaff godoc
// @Summary List staff accounts
// @Tags staff
// @Produce json
// @Success 200 {array} dto.StaffResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff [get]
func (h *staffHandler) listStaff(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	accounts, err := h.staffService.ListStaff(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "Failed to list staff")
		return
	}
	c.JSON(http.StatusOK, dto.ToListStaffResponse(accounts))
}

// getStaff godoc
// @Summary Get a staff account
// @Tags staff
// @Produce json
// @Param id path string true "Staff ID"
// @Success 200 {object} dto.StaffResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff/{id} [get]
func (h *staffHandler) getStaff(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	account, err := h.staffService.GetStaff(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve staff account")
		return
	}
	c.JSON(http.StatusOK, dto.ToStaffResponse(*account))
}

// updateStaff godoc
// @Summary Update a staff account
// @Description Admins cannot demote or deactivate their own account.
// @Tags staff
// @Accept json
// @Produce json
// @Param id path string true "Staff ID"
// @Param staff body dto.UpdateStaffRequest true "Fields to change"
// @Success 200 {object} dto.StaffResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff/{id} [put]
func (h *staffHandler) updateStaff(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}
	account, err := h.staffService.UpdateStaff(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update staff account")
		return
	}
	c.JSON(http.StatusOK, dto.ToStaffResponse(*account))
}

// deleteStaff godoc
// @Summary Delete a staff account
// @Tags staff
// @Param id path string true "Staff ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff/{id} [delete]
func (h *staffHandler) deleteStaff(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.staffService.DeleteStaff(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete staff account")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Staff account deleted", slog.String("staff_id", c.Param("id")))
	c.Status(http.StatusNoContent)
}
