package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"taxdesk/internal/csvexport"
	"taxdesk/internal/service"
)

// MatchingHandler handles GSTR reconciliation endpoints.
type MatchingHandler struct {
	matchingService service.MatchingService
}

// NewMatchingHandler creates a new MatchingHandler.
func NewMatchingHandler(matchingService service.MatchingService) *MatchingHandler {
	return &MatchingHandler{matchingService: matchingService}
}

// Reconcile handles GET /api/v1/matching
// @Summary GSTR reconciliation
// @Description Classify every voucher against its GSTR-1/GSTR-2A states
// @Tags matching
// @Produce json
// @Success 200 {object} APIResponse{data=service.ReconciliationOutput} "Classified vouchers with summary counts"
// @Router /matching [get]
func (h *MatchingHandler) Reconcile(c *gin.Context) {
	out, err := h.matchingService.Reconcile(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, out)
}

// CreateVoucher handles POST /api/v1/matching/vouchers
func (h *MatchingHandler) CreateVoucher(c *gin.Context) {
	var input service.CreateVoucherInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	v, fieldErrs, err := h.matchingService.CreateVoucher(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	if !fieldErrs.Valid() {
		RespondFieldErrors(c, fieldErrs)
		return
	}

	RespondCreated(c, v)
}

// ExportCSV handles GET /api/v1/matching/export
// @Summary Export reconciliation CSV
// @Description Download the classified voucher list as a UTF-8 BOM CSV
// @Tags matching
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Router /matching/export [get]
func (h *MatchingHandler) ExportCSV(c *gin.Context) {
	filename := csvexport.BuildFilename("gstr_reconciliation")
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Status(http.StatusOK)

	if err := h.matchingService.ExportCSV(c.Request.Context(), c.Writer); err != nil {
		requestID, _ := c.Get("request_id")
		// Headers are already out; the best we can do is abort the stream.
		c.Error(fmt.Errorf("[%v] csv export: %w", requestID, err)) //nolint:errcheck
		c.Abort()
	}
}
