package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/catalogwatch/backend/internal/domain"
)

// WatchRunner is implemented by the watch pipeline service.
type WatchRunner interface {
	Run(ctx context.Context) (*domain.RunSummary, error)
	Snapshot(ctx context.Context, availableOnly bool) ([]domain.ProductRecord, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	watcher WatchRunner
}

// NewHandler creates a new HTTP handler
func NewHandler(watcher WatchRunner) *Handler {
	return &Handler{watcher: watcher}
}

// Root reports service readiness
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": "catalog watcher ready",
	})
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "catalogwatch-backend",
		"version": "1.0.0",
	})
}

// RunWatch executes the full pipeline: crawl, reconcile, diff, notify,
// persist. A baseline store fault and an empty catalog are reported with
// distinct statuses.
func (h *Handler) RunWatch(c *gin.Context) {
	summary, err := h.watcher.Run(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrStoreUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": err.Error()})
		case errors.Is(err, domain.ErrNoProducts):
			c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetSnapshot returns the current reconciled catalog state without diffing,
// notifying or persisting. mode=available narrows the result to in-stock
// records; mode=all (the default) returns the complete snapshot.
func (h *Handler) GetSnapshot(c *gin.Context) {
	mode := c.DefaultQuery("mode", "all")
	if mode != "all" && mode != "available" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": domain.ErrInvalidRequest.Error()})
		return
	}

	products, err := h.watcher.Snapshot(c.Request.Context(), mode == "available")
	if err != nil {
		if errors.Is(err, domain.ErrNoProducts) {
			c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"count":    len(products),
		"products": products,
	})
}
