package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/campuspulse/internal/controller"
	"github.com/lshigami/campuspulse/internal/dto"
	"github.com/lshigami/campuspulse/internal/service"
)

type AnalyticsController struct {
	analyticsService service.AnalyticsService
	insightService   service.InsightService
}

func NewAnalyticsController(analyticsService service.AnalyticsService, insightService service.InsightService) *AnalyticsController {
	return &AnalyticsController{analyticsService: analyticsService, insightService: insightService}
}

// GetStats godoc
// @Summary (Admin) Dashboard statistics
// @Description Totals, averages, department and category breakdowns, lowest performers and the ten newest responses.
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/stats [get]
func (c *AnalyticsController) GetStats(ctx *gin.Context) {
	d, err := c.analyticsService.Dashboard(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err, "dashboard")
		return
	}
	ctx.JSON(http.StatusOK, d)
}

// ListResponses godoc
// @Summary (Admin) List survey responses
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Param department query string false "Department name"
// @Param search query string false "Matches student name, roll number or department"
// @Success 200 {array} dto.SurveyResponseDTO
// @Router /admin/responses [get]
func (c *AnalyticsController) ListResponses(ctx *gin.Context) {
	var q dto.ResponseListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		controller.BindError(ctx, err, "list responses")
		return
	}
	rows, err := c.analyticsService.ListResponses(ctx.Request.Context(), q)
	if err != nil {
		controller.RespondError(ctx, err, "list responses")
		return
	}
	ctx.JSON(http.StatusOK, rows)
}

// GetResponse godoc
// @Summary (Admin) Response detail
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Param id path string true "Response ID"
// @Success 200 {object} dto.SurveyResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/responses/{id} [get]
func (c *AnalyticsController) GetResponse(ctx *gin.Context) {
	r, err := c.analyticsService.GetResponse(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		controller.RespondError(ctx, err, "get response")
		return
	}
	ctx.JSON(http.StatusOK, r)
}

// GetInsights godoc
// @Summary (Admin) Generated recommendations
// @Description Short recommendations for the lowest category and department. Requires GEMINI_API_KEY.
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.InsightResponse
// @Failure 502 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse "Insights not configured"
// @Router /admin/insights [get]
func (c *AnalyticsController) GetInsights(ctx *gin.Context) {
	out, err := c.insightService.Generate(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err, "insights")
		return
	}
	ctx.JSON(http.StatusOK, out)
}
