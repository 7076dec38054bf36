package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxdesk/internal/service"
)

// TDSReturnHandler handles Form 26Q endpoints.
type TDSReturnHandler struct {
	tdsReturnService service.TDSReturnService
}

// NewTDSReturnHandler creates a new TDSReturnHandler.
func NewTDSReturnHandler(tdsReturnService service.TDSReturnService) *TDSReturnHandler {
	return &TDSReturnHandler{tdsReturnService: tdsReturnService}
}

// GetByYear handles GET /api/v1/tds26q/:year
func (h *TDSReturnHandler) GetByYear(c *gin.Context) {
	ret, err := h.tdsReturnService.GetByYear(c.Request.Context(), c.Param("year"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, ret)
}

// Save handles POST /api/v1/tds26q
// @Summary Save a Form 26Q return
// @Description Upsert the return payload for an assessment year
// @Tags tds26q
// @Accept json
// @Produce json
// @Param request body service.SaveTDSReturnInput true "Assessment year and payload"
// @Success 200 {object} APIResponse{data=domain.TDSReturn26Q} "Saved return"
// @Failure 400 {object} APIResponse "Invalid assessment year"
// @Router /tds26q [post]
func (h *TDSReturnHandler) Save(c *gin.Context) {
	var input service.SaveTDSReturnInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	ret, err := h.tdsReturnService.Save(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, ret)
}
