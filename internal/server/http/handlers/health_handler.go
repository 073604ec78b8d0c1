package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthChecker verifies connectivity of a collaborator.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler reports readiness of the storage and cache collaborators.
type HealthHandler struct {
	storage HealthChecker
	cache   HealthChecker
}

// NewHealthHandler constructs HealthHandler.
func NewHealthHandler(storage, cache HealthChecker) *HealthHandler {
	return &HealthHandler{storage: storage, cache: cache}
}

// Ping handles GET /ping.
func (h *HealthHandler) Ping(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.storage.HealthCheck(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "component": "storage"})
		return
	}
	if err := h.cache.HealthCheck(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "component": "cache"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
