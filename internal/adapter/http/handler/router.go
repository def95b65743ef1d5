package handler

import (
	"bancomeme-receipt-studio/internal/adapter/http/middleware"
	"bancomeme-receipt-studio/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	SessionSvc     ports.SessionService
	ExportSvc      ports.ExportService
	View           ports.ReceiptView  // nil = preview disabled
	AuditSvc       ports.AuditService // nil = audit logging disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(64 << 10)) // field edits are small

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	// Health check (verifies the export sink)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Swagger documentation
	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	receiptHandler := NewReceiptHandler(deps.SessionSvc)
	exportHandler := NewExportHandler(deps.ExportSvc)
	previewHandler := NewPreviewHandler(deps.SessionSvc, deps.View)

	receipt := v1.Group("/receipt")
	{
		receipt.GET("", receiptHandler.GetReceipt)
		receipt.PUT("/fields", receiptHandler.UpdateField)
		receipt.POST("/regenerate", receiptHandler.Regenerate)
		receipt.GET("/preview", previewHandler.Preview)
		receipt.POST("/export", exportHandler.Export)
	}

	return r
}
