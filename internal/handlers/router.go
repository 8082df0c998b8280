package handlers

import (
	"net/http"
	"time"

	"realestate-listings/internal/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RouterConfig carries everything NewRouter mounts.
type RouterConfig struct {
	CORSOrigins []string
	LogRequests bool

	Properties *PropertyHandler
	Contact    *ContactHandler
	Favorites  *FavoritesHandler
	// Admin is nil when the admin routes are disabled.
	Admin *AdminHandler
	// ContactLimit guards POST /api/contact; nil disables it.
	ContactLimit gin.HandlerFunc
}

// NewRouter builds the gin engine with all routes.
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.LogRequests {
		r.Use(RequestLogger())
	}

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.CORSOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	}
	r.Use(cors.New(corsConfig))

	r.GET("/health", healthCheck)

	api := r.Group("/api")
	{
		api.GET("/properties", cfg.Properties.List)
		api.GET("/properties/featured", cfg.Properties.Featured)
		api.GET("/properties/:id", cfg.Properties.Get)
		api.GET("/search", cfg.Properties.Search)

		contactRoute := []gin.HandlerFunc{cfg.Contact.Submit}
		if cfg.ContactLimit != nil {
			contactRoute = append([]gin.HandlerFunc{cfg.ContactLimit}, contactRoute...)
		}
		api.POST("/contact", contactRoute...)

		fav := api.Group("/favorites")
		fav.GET("", cfg.Favorites.List)
		fav.GET("/ws", cfg.Favorites.Stream)
		fav.PUT("/:id", cfg.Favorites.Add)
		fav.DELETE("/:id", cfg.Favorites.Remove)
		fav.POST("/:id/toggle", cfg.Favorites.Toggle)
	}

	if cfg.Admin != nil {
		admin := api.Group("/admin")
		{
			admin.GET("/stats", cfg.Admin.GetStats)
			admin.GET("/snapshots", cfg.Admin.GetSnapshots)
			admin.POST("/snapshots", cfg.Admin.CreateSnapshot)
			admin.POST("/scheduler/run", cfg.Admin.TriggerScheduler)
			admin.GET("/ratelimit", cfg.Admin.GetRateLimitStats)
			admin.GET("/contact/stats", cfg.Admin.GetContactStats)
			admin.POST("/search/reindex", cfg.Admin.Reindex)
		}
		logger.Log.Info("Admin API routes registered at /api/admin/*")
	}

	return r
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now(),
	})
}
