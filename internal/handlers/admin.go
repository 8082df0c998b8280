package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"realestate-listings/internal/contact"
	"realestate-listings/internal/favorites"
	"realestate-listings/internal/logger"
	"realestate-listings/internal/ratelimit"
	"realestate-listings/internal/scheduler"
	"realestate-listings/internal/snapshot"

	"github.com/gin-gonic/gin"
)

// ReindexFunc re-pushes every listing to the search mirror.
type ReindexFunc func(ctx context.Context) (int, error)

// AdminHandler handles admin-related requests
type AdminHandler struct {
	snapshots   *snapshot.Service
	scheduler   *scheduler.Scheduler
	rateLimiter *ratelimit.RateLimiter
	contact     *contact.Service
	favorites   *favorites.Hub
	reindex     ReindexFunc
}

// NewAdminHandler creates a new admin handler. reindex is nil when
// Meilisearch is disabled.
func NewAdminHandler(
	snapshots *snapshot.Service,
	sched *scheduler.Scheduler,
	rateLimiter *ratelimit.RateLimiter,
	contactService *contact.Service,
	hub *favorites.Hub,
	reindex ReindexFunc,
) *AdminHandler {
	return &AdminHandler{
		snapshots:   snapshots,
		scheduler:   sched,
		rateLimiter: rateLimiter,
		contact:     contactService,
		favorites:   hub,
		reindex:     reindex,
	}
}

// GetStats returns a live catalog summary with service status
func (h *AdminHandler) GetStats(c *gin.Context) {
	current, err := h.snapshots.Current(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, msgStatsFailed, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"catalog":   current,
		"scheduler": h.scheduler.Status(),
		"favorites": gin.H{
			"clients": h.favorites.Clients(),
		},
		"search": gin.H{
			"enabled": h.reindex != nil,
		},
	})
}

// GetSnapshots returns the snapshot history, newest first
func (h *AdminHandler) GetSnapshots(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "30"))
	if err != nil || limit < 0 {
		limit = 30
	}
	snapshots := h.snapshots.Recent(limit)
	c.JSON(http.StatusOK, gin.H{
		"snapshots": snapshots,
		"count":     len(snapshots),
	})
}

// CreateSnapshot captures a snapshot immediately
func (h *AdminHandler) CreateSnapshot(c *gin.Context) {
	snap, err := h.snapshots.Capture(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, msgSnapshotFailed, err)
		return
	}
	c.JSON(http.StatusCreated, snap)
}

// TriggerScheduler runs the daily job now, in the background
func (h *AdminHandler) TriggerScheduler(c *gin.Context) {
	logger.Log.Info("Admin: Manual scheduler run requested")

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := h.scheduler.RunNow(ctx); err != nil {
			logger.Log.Errorf("Admin: Manual scheduler run failed: %v", err)
		} else {
			logger.Log.Info("Admin: Manual scheduler run completed successfully")
		}
	}()

	c.JSON(http.StatusAccepted, gin.H{
		"message": "Scheduler job started",
		"status":  "running",
	})
}

// GetRateLimitStats returns current rate limiter statistics
func (h *AdminHandler) GetRateLimitStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.rateLimiter.GetStats())
}

// GetContactStats returns contact dispatcher statistics
func (h *AdminHandler) GetContactStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.contact.Stats())
}

// Reindex pushes every listing to Meilisearch
func (h *AdminHandler) Reindex(c *gin.Context) {
	if h.reindex == nil {
		respondError(c, http.StatusServiceUnavailable, msgSearchDisabled, nil)
		return
	}

	n, err := h.reindex(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, msgReindexFailed, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Reindex completed",
		"count":   n,
	})
}
