// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smart-grocery/backend/internal/application/adapter"
)

// HealthController reports whether the API and its database are reachable.
type HealthController struct {
	dbHealthChecker func() bool
	clock           adapter.Clock
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbHealthChecker func() bool, clock adapter.Clock) *HealthController {
	return &HealthController{
		dbHealthChecker: dbHealthChecker,
		clock:           clock,
	}
}

// Check handles GET /health requests.
// The endpoint answers 200 even when the database is down; the body says which.
func (h *HealthController) Check(c *gin.Context) {
	dbStatus := "disconnected"
	if h.dbHealthChecker != nil && h.dbHealthChecker() {
		dbStatus = "connected"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Database:  dbStatus,
		Timestamp: h.clock.Now().UTC().Format(time.RFC3339),
	})
}
