package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"realestate-listings/internal/config"
	"realestate-listings/internal/contact"
	"realestate-listings/internal/database"
	"realestate-listings/internal/favorites"
	"realestate-listings/internal/handlers"
	"realestate-listings/internal/logger"
	"realestate-listings/internal/ratelimit"
	"realestate-listings/internal/scheduler"
	"realestate-listings/internal/search"
	"realestate-listings/internal/snapshot"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const appName = "realestate-listings"

func main() {
	// .env is optional; compose passes the same variables directly.
	_ = godotenv.Load()

	configPath := getEnv("CONFIG_PATH", "config/config.yaml")
	appConfig, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Log.Fatalf("Failed to load config from %s: %v", configPath, err)
	}
	appConfig.ApplyEnv()
	if err := appConfig.Validate(); err != nil {
		logger.Log.Fatalf("Invalid configuration: %v", err)
	}

	logger.Init(appName, appConfig.Logging.Level)
	logger.Log.Infof("Loaded configuration from %s", configPath)
	if appConfig.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	store, err := database.Open(ctx, appConfig.Database)
	if err != nil {
		logger.Log.Fatalf("Failed to open property store: %v", err)
	}
	defer store.Close()

	if appConfig.Database.Seed {
		n, err := database.SeedIfEmpty(ctx, store, time.Now())
		if err != nil {
			logger.Log.Fatalf("Failed to seed properties: %v", err)
		}
		if n > 0 {
			logger.Log.Infof("Seeded %d sample properties", n)
		}
	}

	// Left nil when Meilisearch is off; the handlers and scheduler treat nil
	// as "search mirror disabled".
	var (
		searcher handlers.IDSearcher
		reindex  func(context.Context) (int, error)
	)
	if ms := appConfig.Search.Meilisearch; ms.Enabled {
		idx := search.NewMeiliIndex(ms.Host, ms.APIKey, ms.Index)
		if err := idx.InitIndex(); err != nil {
			logger.Log.Warnf("Failed to initialize search index: %v", err)
		}
		base := store
		store = search.NewIndexingStore(base, idx)
		searcher = idx
		reindex = func(ctx context.Context) (int, error) {
			return search.Reindex(ctx, base, idx)
		}
		if n, err := reindex(ctx); err != nil {
			logger.Log.Warnf("Initial reindex failed: %v", err)
		} else {
			logger.Log.Infof("Indexed %d properties in Meilisearch", n)
		}
	}

	rl := appConfig.RateLimit
	rateLimiter := ratelimit.NewRateLimiter(rl.RequestsPerMinute, rl.RequestsPerHour, rl.RequestsPerDay, rl.Enabled)
	logger.Log.Infof("Rate limiter initialized: %d req/min, %d req/hour, %d req/day (enabled: %v)",
		rl.RequestsPerMinute, rl.RequestsPerHour, rl.RequestsPerDay, rl.Enabled)

	dispatcher := contact.NewDispatcher(contact.LogNotifier{}, contact.DispatcherConfig{
		QueueSize:  appConfig.Contact.QueueSize,
		Workers:    appConfig.Contact.Workers,
		MaxRetries: appConfig.Contact.MaxRetries,
		RetryDelay: appConfig.Contact.RetryDelay(),
	})
	dispatcher.Start()
	contactService := contact.NewService(store, dispatcher)

	hub := favorites.NewHub()
	snapshotService := snapshot.NewService(store, appConfig.Scheduler.HistoryLimit)

	appScheduler := scheduler.NewScheduler(appConfig.Scheduler, snapshotService, reindex)
	if err := appScheduler.Start(); err != nil {
		logger.Log.Warnf("Failed to start scheduler: %v", err)
	}

	routerConfig := handlers.RouterConfig{
		CORSOrigins: appConfig.Server.CORSOrigins,
		LogRequests: appConfig.Logging.LogRequests,
		Properties:  handlers.NewPropertyHandler(store, searcher),
		Contact:     handlers.NewContactHandler(contactService),
		Favorites:   handlers.NewFavoritesHandler(hub, store, appConfig.Server.CORSOrigins),
	}
	if rl.Enabled {
		routerConfig.ContactLimit = handlers.RateLimit(rateLimiter)
	}
	if appConfig.Admin.Enabled {
		routerConfig.Admin = handlers.NewAdminHandler(snapshotService, appScheduler, rateLimiter, contactService, hub, reindex)
	}

	srv := &http.Server{
		Addr:    ":" + appConfig.Server.Port,
		Handler: handlers.NewRouter(routerConfig),
	}

	go func() {
		logger.Log.Infof("Server starting on port %s", appConfig.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Log.Infof("Received %s, shutting down", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.Server.ShutdownTimeout())
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("Server shutdown: %v", err)
	}
	appScheduler.Stop()
	if err := dispatcher.Stop(shutdownCtx); err != nil {
		logger.Log.Warnf("Contact dispatcher did not drain: %v", err)
	}
	logger.Log.Info("Server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
