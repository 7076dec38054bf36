package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxdesk/internal/service"
)

// CMAHandler handles CMA report endpoints.
type CMAHandler struct {
	cmaService service.CMAService
}

// NewCMAHandler creates a new CMAHandler.
func NewCMAHandler(cmaService service.CMAService) *CMAHandler {
	return &CMAHandler{cmaService: cmaService}
}

// GetReport handles GET /api/v1/cma
// @Summary Get the CMA report
// @Description The full six-statement report grid; seeded on first access
// @Tags cma
// @Produce json
// @Success 200 {object} APIResponse{data=cma.Report} "Report state"
// @Router /cma [get]
func (h *CMAHandler) GetReport(c *gin.Context) {
	report, err := h.cmaService.GetReport(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, report)
}

// UpdateCell handles PUT /api/v1/cma/cell
// @Summary Edit one report cell
// @Description Replace a single year value on a single statement row
// @Tags cma
// @Accept json
// @Produce json
// @Param request body service.UpdateCellInput true "Cell address and value"
// @Success 200 {object} APIResponse{data=cma.Report} "Updated report"
// @Failure 404 {object} APIResponse "Unknown statement, row, or field"
// @Router /cma/cell [put]
func (h *CMAHandler) UpdateCell(c *gin.Context) {
	var input service.UpdateCellInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	report, err := h.cmaService.UpdateCell(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, report)
}

// Summary handles GET /api/v1/cma/summary
func (h *CMAHandler) Summary(c *gin.Context) {
	RespondOK(c, h.cmaService.ExecutiveSummary())
}

// ExportSnapshot handles POST /api/v1/cma/export
// @Summary Export a report snapshot
// @Description Upload the current report JSON to object storage and return a download link
// @Tags cma
// @Produce json
// @Success 200 {object} APIResponse{data=service.SnapshotOutput} "Snapshot key and presigned URL"
// @Failure 500 {object} APIResponse "Upload failed"
// @Router /cma/export [post]
func (h *CMAHandler) ExportSnapshot(c *gin.Context) {
	out, err := h.cmaService.ExportSnapshot(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, out)
}
