package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/campuslink/campuslink/backend/go-services/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const maxDiagnosticCollections = 10

// SystemInfo carries the process facts reported by the diagnostic endpoints.
type SystemInfo struct {
	DatabaseURLSet bool
	Started        time.Time
	// Redis is checked by /ready when the rate limiter depends on it.
	Redis *redis.Client
}

// RegisterSystemRoutes registers the root banner, /test diagnostics, /health
// and /ready.
func RegisterSystemRoutes(r gin.IRouter, st store.Store, info SystemInfo) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "CampusLink backend running"})
	})

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, diagnostics(c.Request.Context(), st, info))
	})

	// ready only when every dependency in use answers a ping
	r.GET("/ready", func(c *gin.Context) {
		ctx := c.Request.Context()
		deps := map[string]bool{"store": st.Ping(ctx) == nil}
		if info.Redis != nil {
			deps["redis"] = info.Redis.Ping(ctx).Err() == nil
		}
		ready := true
		for _, ok := range deps {
			ready = ready && ok
		}
		uptime := time.Since(info.Started).String()
		if !ready {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": uptime})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": uptime})
	})
}

func diagnostics(ctx context.Context, st store.Store, info SystemInfo) gin.H {
	out := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_url":      "not set",
		"database_name":     nil,
		"connection_status": "not connected",
		"collections":       []string{},
	}
	if info.DatabaseURLSet {
		out["database_url"] = "set"
	}
	if err := st.Ping(ctx); err != nil {
		out["error"] = truncate(err.Error(), 50)
		return out
	}
	out["database"] = "available"
	out["database_name"] = st.Name()
	out["connection_status"] = "connected"

	names, err := st.CollectionNames(ctx)
	if err != nil {
		out["database"] = "connected but error: " + truncate(err.Error(), 50)
		return out
	}
	if names == nil {
		names = []string{}
	}
	if len(names) > maxDiagnosticCollections {
		names = names[:maxDiagnosticCollections]
	}
	out["collections"] = names
	out["database"] = "connected and working"
	return out
}

// truncate keeps at most n runes of s.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
