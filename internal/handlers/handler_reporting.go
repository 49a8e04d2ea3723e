package handlers

import (
	"net/http"

	portssvc "github.com/bilalcinal/WhereDoUSpend/internal/core/ports/services"
	"github.com/bilalcinal/WhereDoUSpend/internal/dto"
	"github.com/bilalcinal/WhereDoUSpend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for the read-only reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.monthlySummary)
		reports.GET("/cashflow", h.cashflow)
		reports.GET("/by-account", h.accountTotals)
		reports.GET("/budget-vs-actual", h.budgetVsActual)
	}
}

// monthlySummary godoc
// @Summary Monthly category summary
// @Description Totals the user's transactions by category and type for a calendar month
// @Tags reports
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} dto.MonthlySummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) monthlySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var params dto.MonthlySummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	rows, err := h.reportingService.MonthlySummary(c.Request.Context(), userID, params.Year, params.Month)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build monthly summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(params.Year, params.Month, rows))
}

// cashflow godoc
// @Summary Cashflow over time
// @Description Computes net income minus expense per day or per month over a date range
// @Tags reports
// @Produce json
// @Param from query string true "Start date (inclusive), YYYY-MM-DD"
// @Param to query string true "End date (inclusive), YYYY-MM-DD"
// @Param granularity query string false "Bucket size" Enums(day, month) default(day)
// @Success 200 {object} dto.CashflowResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/cashflow [get]
func (h *reportingHandler) cashflow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var params dto.CashflowParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	if params.To.Before(params.From) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "'to' must not be before 'from'"})
		return
	}

	points, err := h.reportingService.Cashflow(c.Request.Context(), userID, params.From, params.To, params.Granularity == "month")
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build cashflow report")
		return
	}

	c.JSON(http.StatusOK, dto.ToCashflowResponse(points))
}

// accountTotals godoc
// @Summary Net totals per account
// @Description Computes the net amount per account over a date range
// @Tags reports
// @Produce json
// @Param from query string true "Start date (inclusive), YYYY-MM-DD"
// @Param to query string true "End date (inclusive), YYYY-MM-DD"
// @Success 200 {object} dto.AccountTotalsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/by-account [get]
func (h *reportingHandler) accountTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var params dto.AccountTotalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	if params.To.Before(params.From) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "'to' must not be before 'from'"})
		return
	}

	totals, err := h.reportingService.AccountTotals(c.Request.Context(), userID, params.From, params.To)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build account totals report")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountTotalsResponse(totals))
}

// budgetVsActual godoc
// @Summary Budget vs actual spend
// @Description Compares each budgeted category's amount to its expense total for a calendar month
// @Tags reports
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} dto.BudgetVsActualResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/budget-vs-actual [get]
func (h *reportingHandler) budgetVsActual(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var params dto.MonthlySummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	rows, err := h.reportingService.BudgetVsActual(c.Request.Context(), userID, params.Year, params.Month)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build budget report")
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetVsActualResponse(params.Year, params.Month, rows))
}
