package handlers

import (
	"net/http"
	"strings"
	"time"

	"realestate-listings/internal/logger"
	"realestate-listings/internal/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs every /api request with its status and duration.
// 5xx responses log at error level and 4xx at warn.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		if !strings.HasPrefix(path, "/api") {
			return
		}

		status := c.Writer.Status()
		entry := logger.Log.WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"path":      path,
			"status":    status,
			"duration":  time.Since(start).String(),
			"client_ip": c.ClientIP(),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}

		msg := c.Request.Method + " " + path
		switch {
		case status >= 500:
			entry.Error(msg)
		case status >= 400:
			entry.Warn(msg)
		default:
			entry.Info(msg)
		}
	}
}

// RateLimit rejects clients that exceed rl, keyed by client IP.
func RateLimit(rl *ratelimit.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			respondError(c, http.StatusTooManyRequests, msgRateLimited, nil)
			return
		}
		c.Next()
	}
}
