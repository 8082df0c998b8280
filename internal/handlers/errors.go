package handlers

import (
	"github.com/gin-gonic/gin"
)

// Generic messages returned to clients; details only go to the log.
const (
	msgInvalidFilter      = "Invalid filter parameters"
	msgFetchProperties    = "Failed to fetch properties"
	msgFetchFeatured      = "Failed to fetch featured properties"
	msgFetchProperty      = "Failed to fetch property"
	msgPropertyNotFound   = "Property not found"
	msgSearchFailed       = "Failed to search properties"
	msgInvalidContact     = "Invalid contact message"
	msgContactUnavailable = "Contact service unavailable"
	msgContactFailed      = "Failed to send contact message"
	msgRateLimited        = "Rate limit exceeded"
	msgClientIDRequired   = "client_id is required"
	msgSearchDisabled     = "Search index is not configured"
	msgReindexFailed      = "Failed to reindex properties"
	msgSnapshotFailed     = "Failed to capture snapshot"
	msgStatsFailed        = "Failed to compute stats"
)

// respondError answers {"error": msg} and records err for the request logger.
func respondError(c *gin.Context, status int, msg string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
