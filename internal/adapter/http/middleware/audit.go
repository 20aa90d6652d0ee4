package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"split-wallet-engine/internal/core/domain"
	"split-wallet-engine/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog records write requests that were refused for lack of
// credentials or permission. Successful writes are audited by the services.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status != http.StatusUnauthorized && status != http.StatusForbidden {
			return
		}
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead || c.Request.Method == http.MethodOptions {
			return
		}

		resourceType, resourceID := resourceOf(c)
		actorID, _ := UserID(c)

		details, _ := json.Marshal(map[string]interface{}{
			"method": c.Request.Method,
			"route":  c.FullPath(),
			"status": status,
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			ActorID:      actorID,
			Action:       domain.AuditActionDenied,
			ResourceType: resourceType,
			ResourceID:   resourceID,
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now().UTC(),
		})
	}
}

func resourceOf(c *gin.Context) (string, string) {
	path := c.Request.URL.Path
	switch {
	case strings.HasPrefix(path, "/internal/v1/roulette"):
		return "roulette", ""
	case strings.HasPrefix(path, "/api/v1/splits"):
		return "split_wallet", c.Param("id")
	}
	return "http", ""
}
