// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-ledger/backend/internal/infra/db"
)

// HealthController handles health check endpoints.
type HealthController struct {
	database *db.Database
}

// NewHealthController creates a new health controller instance.
func NewHealthController(database *db.Database) *HealthController {
	return &HealthController{
		database: database,
	}
}

// Check handles GET /health requests.
func (c *HealthController) Check(ctx *gin.Context) {
	if !c.database.HealthCheck() {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "healthy",
	})
}
