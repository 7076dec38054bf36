package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taxdesk/internal/service"
)

// ComplianceHandler handles compliance dashboard endpoints.
type ComplianceHandler struct {
	complianceService service.ComplianceService
	reminderToAddress string
}

// NewComplianceHandler creates a new ComplianceHandler. reminderToAddress
// is the configured recipient for deadline reminder emails.
func NewComplianceHandler(complianceService service.ComplianceService, reminderToAddress string) *ComplianceHandler {
	return &ComplianceHandler{
		complianceService: complianceService,
		reminderToAddress: reminderToAddress,
	}
}

// Dashboard handles GET /api/v1/compliance
// @Summary Compliance dashboard
// @Description Filing obligations with the aggregate score and upcoming deadlines
// @Tags compliance
// @Produce json
// @Success 200 {object} APIResponse{data=service.DashboardOutput} "Dashboard payload"
// @Router /compliance [get]
func (h *ComplianceHandler) Dashboard(c *gin.Context) {
	out, err := h.complianceService.Dashboard(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, out)
}

// CreateItem handles POST /api/v1/compliance/items
func (h *ComplianceHandler) CreateItem(c *gin.Context) {
	var input service.CreateComplianceItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	item, fieldErrs, err := h.complianceService.CreateItem(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	if !fieldErrs.Valid() {
		RespondFieldErrors(c, fieldErrs)
		return
	}

	RespondCreated(c, item)
}

// UpdateItem handles PUT /api/v1/compliance/items/:id
func (h *ComplianceHandler) UpdateItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid compliance item ID")
		return
	}

	var input service.UpdateComplianceItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	item, fieldErrs, err := h.complianceService.UpdateItem(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	if !fieldErrs.Valid() {
		RespondFieldErrors(c, fieldErrs)
		return
	}

	RespondOK(c, item)
}

// SendReminders handles POST /api/v1/compliance/reminders
// @Summary Send deadline reminders
// @Description Email the configured recipient the upcoming filing deadlines
// @Tags compliance
// @Produce json
// @Success 200 {object} APIResponse "Number of deadlines included"
// @Failure 400 {object} APIResponse "No reminder recipient configured"
// @Router /compliance/reminders [post]
func (h *ComplianceHandler) SendReminders(c *gin.Context) {
	if h.reminderToAddress == "" {
		RespondError(c, http.StatusBadRequest, "NO_RECIPIENT", "no reminder recipient configured")
		return
	}

	count, err := h.complianceService.SendReminders(c.Request.Context(), h.reminderToAddress)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"reminders_sent": count})
}
