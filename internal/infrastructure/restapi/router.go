package restapi

import (
	"time"

	"witnet_addresses/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter configures and returns the Gin engine serving the registry API.
func SetupRouter(h *RegistryHandler, cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(corsConfig(cfg.Server.AllowedOrigins)))

	router.GET("/healthz", h.HealthHandler)
	if cfg.Metrics.Enabled {
		router.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	v1 := router.Group("/api/v1")
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter := NewClientRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst,
			time.Duration(cfg.RateLimit.IdleMinutes)*time.Minute)
		v1.Use(limiter.Middleware())
	}
	{
		v1.GET("/ecosystems", h.ListEcosystemsHandler)
		v1.GET("/ecosystems/:ecosystem/networks", h.ListNetworksHandler)
		v1.GET("/ecosystems/:ecosystem/networks/:network/contracts/:contract", h.GetAddressHandler)
		v1.GET("/networks/:network", h.GetNetworkHandler)
		v1.GET("/addresses", h.SnapshotHandler)
		v1.POST("/admin/reload", h.ReloadHandler)
	}

	return router
}

func corsConfig(origins []string) cors.Config {
	cc := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cc.AllowAllOrigins = true
			return cc
		}
	}
	cc.AllowOrigins = origins
	return cc
}
