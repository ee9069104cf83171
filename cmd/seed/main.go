package main

import (
	"context"
	"os"
	"time"

	"github.com/campuslink/campuslink/backend/go-services/internal/config"
	"github.com/campuslink/campuslink/backend/go-services/internal/database"
	"github.com/campuslink/campuslink/backend/go-services/internal/service"
	"github.com/campuslink/campuslink/backend/go-services/pkg/logger"
)

// seed inserts a small demo community (a student, a company, a post with a
// comment thread and an offer) into the configured store.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	st, closeStore := database.OpenStore(ctx, cfg, database.Retry{Attempts: 3, Backoff: time.Second})
	defer closeStore(context.Background())

	ids, err := seed(ctx, service.New(st))
	if err != nil {
		logger.Errorf("seed failed: %v", err)
		closeStore(context.Background())
		os.Exit(1)
	}
	for _, k := range []string{"student", "company", "post", "comment", "reply", "offer"} {
		logger.Infof("created %s %s", k, ids[k])
	}
}
