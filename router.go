package main

import (
	"time"

	"github.com/campuslink/campuslink/backend/go-services/handlers"
	"github.com/campuslink/campuslink/backend/go-services/internal/config"
	"github.com/campuslink/campuslink/backend/go-services/internal/service"
	"github.com/campuslink/campuslink/backend/go-services/internal/store"
	"github.com/campuslink/campuslink/backend/go-services/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

// newRouter wires middleware and every route onto a fresh engine. rdb may be
// nil when Redis is not configured.
func newRouter(cfg *config.Config, st store.Store, rdb *redis.Client, gatherer prometheus.Gatherer) *gin.Engine {
	r := gin.New()

	// Global middlewares: request id + CORS + logging + recovery
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(cfg.CORS.Origins))
	r.Use(gin.Logger(), gin.Recovery())

	var limiterRedis *redis.Client
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && rdb != nil {
			limiterRedis = rdb
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(rdb, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	handlers.RegisterSystemRoutes(r, st, handlers.SystemInfo{
		DatabaseURLSet: cfg.MongoDB.URI != "",
		Started:        startTime,
		Redis:          limiterRedis,
	})
	handlers.RegisterCampusRoutes(r, service.New(st))
	handlers.RegisterSwagger(r)

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	return r
}
