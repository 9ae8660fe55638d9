// File: handlers/health.go
package handlers

import (
	"net/http"

	"kaojai/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports service liveness and the latest dependency checks.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"service":      "webhook",
		"dependencies": utils.GetHealthStatus(),
	})
}
