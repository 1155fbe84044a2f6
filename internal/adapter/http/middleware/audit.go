package middleware

import (
	"encoding/json"
	"net/http"

	"telco-billing/internal/core/domain"
	"telco-billing/internal/core/ports"

	"github.com/gin-gonic/gin"
)

// AuditLog creates an audit middleware that logs successful write operations.
// It maps HTTP methods and route templates to audit actions.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only audit successful write operations (status 2xx)
		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead || c.Request.Method == http.MethodOptions {
			return
		}

		action, resourceType := mapRouteToAction(c.FullPath(), c.Request.Method)
		if action == "" {
			return
		}

		resourceID := c.GetString(CtxResourceID)
		if resourceID == "" {
			resourceID = c.Param("id")
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"request_id": c.GetString(CtxRequestID),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			Actor:        ActorFrom(c),
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   resourceID,
			IPAddress:    c.ClientIP(),
			Details:      string(details),
		})
	}
}

func mapRouteToAction(route, method string) (domain.AuditAction, string) {
	switch {
	case route == "/api/v1/tfn/purchase" && method == http.MethodPost:
		return domain.AuditActionTFNPurchase, "tfn_order"
	case route == "/api/v1/vendors" && method == http.MethodPost:
		return domain.AuditActionVendorCreate, "vendor"
	case route == "/api/v1/vendors/:id/status" && method == http.MethodPatch:
		return domain.AuditActionVendorStatusChange, "vendor"
	case route == "/api/v1/cdrs" && method == http.MethodPost:
		return domain.AuditActionCDRCreate, "cdr"
	}
	return "", ""
}
