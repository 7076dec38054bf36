package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taxdesk/internal/domain"
	"taxdesk/internal/service"
	"taxdesk/internal/tds"
)

// DeductionRequest is the body of a deduction computation request.
type DeductionRequest struct {
	Payment float64 `json:"payment" binding:"required"`
}

// DeducteeHandler handles deductee management endpoints.
type DeducteeHandler struct {
	deducteeService service.DeducteeService
}

// NewDeducteeHandler creates a new DeducteeHandler.
func NewDeducteeHandler(deducteeService service.DeducteeService) *DeducteeHandler {
	return &DeducteeHandler{deducteeService: deducteeService}
}

// Create handles POST /api/v1/deductees
// @Summary Create a deductee
// @Description Create a deductee record; field validation failures return 422
// @Tags deductees
// @Accept json
// @Produce json
// @Param request body tds.DeducteeInput true "Deductee details"
// @Success 201 {object} APIResponse{data=service.DeducteeMutationOutput} "Deductee created, with the refreshed list"
// @Failure 409 {object} APIResponse "Duplicate PAN"
// @Failure 422 {object} APIResponse "Field validation failed"
// @Router /deductees [post]
func (h *DeducteeHandler) Create(c *gin.Context) {
	var input tds.DeducteeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	out, fieldErrs, err := h.deducteeService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	if !fieldErrs.Valid() {
		RespondFieldErrors(c, fieldErrs)
		return
	}

	RespondCreated(c, out)
}

// List handles GET /api/v1/deductees
// @Summary List deductees
// @Description List deductees, optionally filtered by search text and category
// @Tags deductees
// @Produce json
// @Param search query string false "Match against name or PAN"
// @Param category query string false "Deductee category"
// @Success 200 {object} APIResponse{data=[]domain.Deductee} "Deductee list"
// @Router /deductees [get]
func (h *DeducteeHandler) List(c *gin.Context) {
	search := c.Query("search")
	category := domain.DeducteeCategory(c.Query("category"))

	deductees, err := h.deducteeService.List(c.Request.Context(), search, category)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, deductees)
}

// GetByID handles GET /api/v1/deductees/:id
func (h *DeducteeHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid deductee ID")
		return
	}

	d, err := h.deducteeService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, d)
}

// Update handles PUT /api/v1/deductees/:id
func (h *DeducteeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid deductee ID")
		return
	}

	var input tds.DeducteeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	out, fieldErrs, err := h.deducteeService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	if !fieldErrs.Valid() {
		RespondFieldErrors(c, fieldErrs)
		return
	}

	RespondOK(c, out)
}

// Delete handles DELETE /api/v1/deductees/:id
func (h *DeducteeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid deductee ID")
		return
	}

	deductees, err := h.deducteeService.Delete(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deductees": deductees})
}

// Deduction handles POST /api/v1/deductees/:id/deduction
// @Summary Compute TDS for a payment
// @Description TDS amount and net payable for a single payment to the deductee
// @Tags deductees
// @Accept json
// @Produce json
// @Param request body DeductionRequest true "Payment amount"
// @Success 200 {object} APIResponse{data=service.DeductionOutput} "Computed deduction"
// @Failure 400 {object} APIResponse "Invalid payment amount"
// @Router /deductees/{id}/deduction [post]
func (h *DeducteeHandler) Deduction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid deductee ID")
		return
	}

	var req DeductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	out, err := h.deducteeService.Deduction(c.Request.Context(), id, req.Payment)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, out)
}
