package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taxdesk/internal/service"
)

// CalculatorHandler handles GST calculation endpoints.
type CalculatorHandler struct {
	calcService service.CalculatorService
}

// NewCalculatorHandler creates a new CalculatorHandler.
func NewCalculatorHandler(calcService service.CalculatorService) *CalculatorHandler {
	return &CalculatorHandler{calcService: calcService}
}

// Calculate handles POST /api/v1/calculator/gst
// @Summary Calculate GST for an amount
// @Description Split an amount into taxable value and tax at a given rate
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body service.CalculateInput true "Amount, rate, and inclusive flag"
// @Success 200 {object} APIResponse{data=gst.Breakdown} "Tax breakdown"
// @Failure 400 {object} APIResponse "Invalid amount or rate"
// @Router /calculator/gst [post]
func (h *CalculatorHandler) Calculate(c *gin.Context) {
	var input service.CalculateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	breakdown, err := h.calcService.Calculate(input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, breakdown)
}

// CompareSlabs handles GET /api/v1/calculator/gst/slabs
// @Summary Compare all GST slabs
// @Description Compute the breakdown for one amount at every canonical slab rate
// @Tags calculator
// @Produce json
// @Param amount query number true "Amount to split"
// @Param inclusive query bool false "Treat amount as tax-inclusive"
// @Success 200 {object} APIResponse{data=[]gst.Breakdown} "One breakdown per slab"
// @Failure 400 {object} APIResponse "Invalid amount"
// @Router /calculator/gst/slabs [get]
func (h *CalculatorHandler) CompareSlabs(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_AMOUNT", "amount must be a number")
		return
	}
	inclusive := c.Query("inclusive") == "true"

	breakdowns, err := h.calcService.CompareSlabs(amount, inclusive)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, breakdowns)
}

// SummarizeItems handles POST /api/v1/calculator/items/summary
// @Summary Aggregate line items
// @Description Compute per-item tax and aggregate totals for a list of line items
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body []service.ItemInput true "Line items"
// @Success 200 {object} APIResponse{data=service.ItemSummaryOutput} "Items with totals"
// @Failure 400 {object} APIResponse "Invalid item"
// @Router /calculator/items/summary [post]
func (h *CalculatorHandler) SummarizeItems(c *gin.Context) {
	var inputs []service.ItemInput
	if err := c.ShouldBindJSON(&inputs); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	out, err := h.calcService.SummarizeItems(inputs)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, out)
}
