package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campuslink/campuslink/backend/go-services/internal/config"
	"github.com/campuslink/campuslink/backend/go-services/internal/database"
	"github.com/campuslink/campuslink/backend/go-services/pkg/logger"
	"github.com/campuslink/campuslink/backend/go-services/pkg/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

var startTime = time.Now()

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())
	logger.Infof("config loaded: driver=%s mongo=%v redis=%v rate_limit=%v", cfg.Store.Driver, cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.RateLimit.Enabled)

	if cfg.Server.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	st, closeStore := database.OpenStore(ctx, cfg, database.DefaultRetry)
	defer closeStore(context.Background())

	// Redis is only needed by the shared rate limiter
	var rdb *redis.Client
	if cfg.Redis.Host != "" && cfg.RateLimit.Enabled && cfg.RateLimit.UseRedis {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr(), Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s): %v", cfg.Redis.Addr(), err)
		} else {
			logger.Infof("connected to Redis for rate limiting: %s", cfg.Redis.Addr())
		}
		defer func() { _ = rdb.Close() }()
	}

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r := newRouter(cfg, st, rdb, prometheus.DefaultGatherer)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Infof("CampusLink backend listening on %s (store=%s)", srv.Addr, st.Name())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("server forced to shutdown: %v", err)
		return
	}
	logger.Infof("server exited gracefully")
}
