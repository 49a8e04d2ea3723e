package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/bilalcinal/WhereDoUSpend/internal/core/ports/services"
	"github.com/bilalcinal/WhereDoUSpend/internal/dto"
	"github.com/bilalcinal/WhereDoUSpend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// recurringHandler handles HTTP requests related to recurring transaction rules.
type recurringHandler struct {
	recurringService portssvc.RecurringSvcFacade
}

func newRecurringHandler(rs portssvc.RecurringSvcFacade) *recurringHandler {
	return &recurringHandler{recurringService: rs}
}

// RegisterRecurringRoutes registers routes related to recurring rules.
func RegisterRecurringRoutes(rg *gin.RouterGroup, recurringService portssvc.RecurringSvcFacade) {
	h := newRecurringHandler(recurringService)

	recurring := rg.Group("/recurring")
	{
		recurring.POST("", h.createRecurringRule)
		recurring.GET("", h.listRecurringRules)
		recurring.GET("/:id", h.getRecurringRule)
		recurring.DELETE("/:id", h.deleteRecurringRule)
		recurring.POST("/run-due", h.runDue)
	}
}

// runDueRequest optionally overrides the instant rules are evaluated against.
type runDueRequest struct {
	ReferenceInstant *time.Time `json:"referenceInstant"`
}

// createRecurringRule godoc
// @Summary Create a recurring rule
// @Description Creates a rule that materializes a transaction on a daily, weekly or monthly cadence
// @Tags recurring
// @Accept json
// @Produce json
// @Param rule body dto.CreateRecurringRequest true "Rule details"
// @Success 201 {object} dto.RecurringResponse
// @Failure 400 {object} ErrorResponse "Invalid input, unknown references, or archived account"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recurring [post]
func (h *recurringHandler) createRecurringRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.CreateRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRecurringRule", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	rule, err := h.recurringService.CreateRecurringRule(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create recurring rule")
		return
	}

	c.JSON(http.StatusCreated, dto.ToRecurringResponse(rule))
}

// listRecurringRules godoc
// @Summary List recurring rules
// @Description Retrieves all of the user's recurring rules ordered by next run time
// @Tags recurring
// @Produce json
// @Success 200 {object} dto.ListRecurringResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recurring [get]
func (h *recurringHandler) listRecurringRules(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	rules, err := h.recurringService.ListRecurringRules(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list recurring rules")
		return
	}

	c.JSON(http.StatusOK, dto.ToListRecurringResponse(rules))
}

// getRecurringRule godoc
// @Summary Get a recurring rule by ID
// @Description Retrieves a single recurring rule owned by the user
// @Tags recurring
// @Produce json
// @Param id path string true "Recurring rule ID"
// @Success 200 {object} dto.RecurringResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recurring/{id} [get]
func (h *recurringHandler) getRecurringRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	rule, err := h.recurringService.GetRecurringRuleByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve recurring rule")
		return
	}

	c.JSON(http.StatusOK, dto.ToRecurringResponse(rule))
}

// deleteRecurringRule godoc
// @Summary Delete a recurring rule
// @Description Soft deletes a recurring rule; transactions it already created are kept
// @Tags recurring
// @Param id path string true "Recurring rule ID"
// @Success 204 "Deleted"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recurring/{id} [delete]
func (h *recurringHandler) deleteRecurringRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.recurringService.DeleteRecurringRule(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete recurring rule")
		return
	}

	c.Status(http.StatusNoContent)
}

// runDue godoc
// @Summary Run due recurring rules
// @Description Materializes one transaction for each rule whose next run time is at or before the reference instant (now by default), advancing each rule one cadence step. The whole run commits atomically.
// @Tags recurring
// @Accept json
// @Produce json
// @Param run body runDueRequest false "Optional reference instant override"
// @Success 200 {object} dto.RunDueResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recurring/run-due [post]
func (h *recurringHandler) runDue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req runDueRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
			return
		}
	}

	created, err := h.recurringService.RunDue(c.Request.Context(), userID, req.ReferenceInstant)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to run due recurring rules")
		return
	}

	c.JSON(http.StatusOK, dto.RunDueResponse{Created: created})
}
