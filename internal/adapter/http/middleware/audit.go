package middleware

import (
	"encoding/json"
	"time"

	"bancomeme-receipt-studio/internal/core/domain"
	"bancomeme-receipt-studio/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog creates an audit middleware that records successful receipt
// operations. It maps HTTP methods and paths to audit actions.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only audit successful operations (status 2xx)
		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}

		action, resourceType := mapPathToAction(c.Request.URL.Path, c.Request.Method, c.Query("format"))
		if action == "" {
			return
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditEvent{
			ID:           uuid.New(),
			Action:       action,
			ResourceType: resourceType,
			Details:      string(details),
			IPAddress:    c.ClientIP(),
			CreatedAt:    time.Now(),
		})
	}
}

func mapPathToAction(path, method, format string) (domain.AuditAction, string) {
	switch {
	case path == "/api/v1/receipt" && method == "GET":
		return domain.AuditActionView, "receipt"
	case path == "/api/v1/receipt/fields" && method == "PUT":
		return domain.AuditActionEditField, "receipt"
	case path == "/api/v1/receipt/regenerate" && method == "POST":
		return domain.AuditActionRegenerate, "receipt"
	case path == "/api/v1/receipt/export" && method == "POST":
		switch format {
		case "png":
			return domain.AuditActionExportPNG, "export"
		case "pdf":
			return domain.AuditActionExportPDF, "export"
		default:
			return domain.AuditActionExportJPEG, "export"
		}
	}
	return "", ""
}
