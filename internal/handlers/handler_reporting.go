package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/multinav_crm/internal/core/analytics"
	portssvc "github.com/SscSPs/multinav_crm/internal/core/ports/services"
	"github.com/SscSPs/multinav_crm/internal/dto"
	"github.com/SscSPs/multinav_crm/internal/export"
	"github.com/SscSPs/multinav_crm/internal/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// reportingHandler handles HTTP requests related to program reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to program reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/overview", h.getOverview)
		reportingGroup.GET("/program", h.getProgramReport)
		reportingGroup.GET("/program/insights", h.getProgramInsights)
		reportingGroup.GET("/unified", h.getUnifiedReport)
		reportingGroup.GET("/workforce", h.getWorkforceReport)
		reportingGroup.GET("/staff-performance", h.getStaffPerformance)
		reportingGroup.GET("/staff-performance/export.xlsx", h.exportStaffPerformance)
	}
}

// bindReportQuery parses the shared report filters. On failure it has
// already written the response.
func bindReportQuery(c *gin.Context) (dto.ReportQuery, analytics.Criteria, bool) {
	var q dto.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err, "query parameters")
		return q, analytics.Criteria{}, false
	}
	criteria, err := q.ToCriteria()
	if err != nil {
		respondError(c, err, "Invalid report filters")
		return q, analytics.Criteria{}, false
	}
	return q, criteria, true
}

// getOverview godoc
// @Summary Program overview dashboard
// @Description Headline totals, ethnicity and navigation distributions and the client population pyramid.
// @Tags reports
// @Produce json
// @Success 200 {object} domain.OverviewReport
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/overview [get]
func (h *reportingHandler) getOverview(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	report, err := h.reportingService.Overview(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "Failed to generate overview")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getProgramReport godoc
// @Summary Program report
// @Description Client, activity and workforce statistics for a reporting period.
// @Tags reports
// @Produce json
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date (YYYY-MM-DD)"
// @Param region query string false "North, South or all"
// @Success 200 {object} domain.ProgramReport
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "No data in the period"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/program [get]
func (h *reportingHandler) getProgramReport(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	_, criteria, ok := bindReportQuery(c)
	if !ok {
		return
	}
	report, err := h.reportingService.ProgramReport(c.Request.Context(), actor, criteria)
	if err != nil {
		respondError(c, err, "Failed to generate program report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getProgramInsights godoc
// @Summary AI insights for a program report
// @Description Sends a de-identified summary of the program report to the narrative service and returns its findings.
// @Tags reports
// @Produce json
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.InsightsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/program/insights [get]
func (h *reportingHandler) getProgramInsights(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	q, criteria, ok := bindReportQuery(c)
	if !ok {
		return
	}
	insights, err := h.reportingService.ProgramInsights(c.Request.Context(), actor, criteria)
	if err != nil {
		respondError(c, err, "Failed to generate insights")
		return
	}
	c.JSON(http.StatusOK, dto.InsightsResponse{StartDate: q.StartDate, EndDate: q.EndDate, Insights: insights})
}

// getUnifiedReport godoc
// @Summary Unified report
// @Description Filtered client and activity statistics. All filters are optional.
// @Tags reports
// @Produce json
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Param region query string false "North, South or all"
// @Param location query string false "Activity location"
// @Param staff query string false "Staff email or name"
// @Param ethnicity query string false "Client ethnicity"
// @Param serviceType query string false "Navigation or service tag"
// @Success 200 {object} domain.UnifiedReport
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/unified [get]
func (h *reportingHandler) getUnifiedReport(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	_, criteria, ok := bindReportQuery(c)
	if !ok {
		return
	}
	report, err := h.reportingService.UnifiedReport(c.Request.Context(), actor, criteria)
	if err != nil {
		respondError(c, err, "Failed to generate unified report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getWorkforceReport godoc
// @Summary Workforce summary
// @Tags reports
// @Produce json
// @Success 200 {object} domain.WorkforceSummary
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/workforce [get]
func (h *reportingHandler) getWorkforceReport(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	summary, err := h.reportingService.WorkforceReport(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "Failed to generate workforce summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getStaffPerformance godoc
// @Summary Staff performance report
// @Description Per-staff KPI rollups and the detailed activity log for a period.
// @Tags reports
// @Produce json
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date (YYYY-MM-DD)"
// @Param region query string false "North, South or all"
// @Param staff query string false "Staff email or name"
// @Success 200 {object} domain.StaffPerformanceReport
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/staff-performance [get]
func (h *reportingHandler) getStaffPerformance(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	_, criteria, ok := bindReportQuery(c)
	if !ok {
		return
	}
	report, err := h.reportingService.StaffPerformance(c.Request.Context(), actor, criteria)
	if err != nil {
		respondError(c, err, "Failed to generate staff performance report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// exportStaffPerformance godoc
// @Summary Export staff performance workbook
// @Description Downloads the staff performance report as an Excel workbook with summary and activity sheets.
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/staff-performance/export.xlsx [get]
func (h *reportingHandler) exportStaffPerformance(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	_, criteria, ok := bindReportQuery(c)
	if !ok {
		return
	}
	report, err := h.reportingService.StaffPerformance(c.Request.Context(), actor, criteria)
	if err != nil {
		respondError(c, err, "Failed to generate staff performance report")
		return
	}
	workbook, err := export.StaffWorkbook(report)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to render staff workbook", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to export staff performance report"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+export.StaffWorkbookFileName(report)+`"`)
	c.Data(http.StatusOK, xlsxContentType, workbook)
}
