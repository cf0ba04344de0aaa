package api

import (
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"workspace-finder-backend/config"
	"workspace-finder-backend/internal/mw"
	"workspace-finder-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg *config.ServerConfig, s store.Store, webpushOptions *webpush.Options, snapshots SnapshotProvider, parser QueryParser) *gin.Engine {
	r := gin.Default()

	db := s.DB()
	handler := NewHandler(s, webpushOptions, snapshots, parser)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		// Query endpoints; never cached, every query runs fresh.
		api.POST("/query", handler.PostQuery)
		api.POST("/query/structured", handler.PostStructuredQuery)

		// Dataset browsing over the persisted snapshot.
		api.GET("/desks", caching, GetDesks(db))
		api.GET("/spaces", caching, GetSpaces(db))
		api.GET("/policies", caching, GetPolicies(db))
		api.GET("/forecast", caching, GetForecast(db))
		api.GET("/preferences", handler.GetPreferences)

		api.GET("/health", handler.GetHealth)

		// Desk availability push subscriptions.
		api.GET("/subscriptions", handler.GetSubscription)
		api.PUT("/subscriptions", handler.PutSubscription)
		api.DELETE("/subscriptions", handler.DeleteSubscription)
		api.GET("/vapid_public_key", handler.GetVAPIDPublicKey)
	}

	return r
}
