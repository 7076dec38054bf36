package router

import (
	"github.com/gin-gonic/gin"

	"taxdesk/internal/config"
	"taxdesk/internal/handler"
	"taxdesk/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	healthH *handler.HealthHandler,
	calcH *handler.CalculatorHandler,
	deducteeH *handler.DeducteeHandler,
	complianceH *handler.ComplianceHandler,
	matchingH *handler.MatchingHandler,
	cmaH *handler.CMAHandler,
	tdsReturnH *handler.TDSReturnHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// GST calculator
	calc := v1.Group("/calculator")
	calc.POST("/gst", calcH.Calculate)
	calc.GET("/gst/slabs", calcH.CompareSlabs)
	calc.POST("/items/summary", calcH.SummarizeItems)

	// Deductee management
	deductees := v1.Group("/deductees")
	deductees.POST("", deducteeH.Create)
	deductees.GET("", deducteeH.List)
	deductees.GET("/:id", deducteeH.GetByID)
	deductees.PUT("/:id", deducteeH.Update)
	deductees.DELETE("/:id", deducteeH.Delete)
	deductees.POST("/:id/deduction", deducteeH.Deduction)

	// Compliance dashboard
	compliance := v1.Group("/compliance")
	compliance.GET("", complianceH.Dashboard)
	compliance.POST("/items", complianceH.CreateItem)
	compliance.PUT("/items/:id", complianceH.UpdateItem)
	compliance.POST("/reminders", complianceH.SendReminders)

	// GSTR reconciliation
	matching := v1.Group("/matching")
	matching.GET("", matchingH.Reconcile)
	matching.POST("/vouchers", matchingH.CreateVoucher)
	matching.GET("/export", matchingH.ExportCSV)

	// CMA report
	cma := v1.Group("/cma")
	cma.GET("", cmaH.GetReport)
	cma.PUT("/cell", cmaH.UpdateCell)
	cma.GET("/summary", cmaH.Summary)
	cma.POST("/export", cmaH.ExportSnapshot)

	// Form 26Q returns
	tds26q := v1.Group("/tds26q")
	tds26q.GET("/:year", tdsReturnH.GetByYear)
	tds26q.POST("", tdsReturnH.Save)

	return r
}
