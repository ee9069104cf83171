package database

import (
	"context"

	"github.com/campuslink/campuslink/backend/go-services/internal/config"
	"github.com/campuslink/campuslink/backend/go-services/internal/store"
	"github.com/campuslink/campuslink/backend/go-services/pkg/logger"
)

// OpenStore builds the document store selected by cfg. A Mongo store that
// cannot connect is returned disconnected instead of failing, so the process
// still serves and reports StoreUnavailable per request. The returned func
// releases the connection.
func OpenStore(ctx context.Context, cfg *config.Config, retry Retry) (store.Store, func(context.Context)) {
	opts := []store.Option{store.WithTimeout(cfg.MongoDB.Timeout)}
	noop := func(context.Context) {}

	if cfg.Store.Driver == config.DriverMemory {
		logger.Warnf("using in-memory document store; data is lost on restart")
		return store.Instrument(store.NewMemoryStore(opts...)), noop
	}

	if cfg.MongoDB.URI == "" {
		logger.Warnf("MONGODB_URI is not set; store operations will report store_unavailable")
		return store.Instrument(store.NewMongoStore(nil, opts...)), noop
	}

	client, err := ConnectMongoWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, retry)
	if err != nil {
		logger.Errorf("%v", err)
		return store.Instrument(store.NewMongoStore(nil, opts...)), noop
	}
	logger.Infof("connected to MongoDB database %q", cfg.MongoDB.Database)
	st := store.NewMongoStore(client.Database(cfg.MongoDB.Database), opts...)
	return store.Instrument(st), func(ctx context.Context) {
		if err := client.Disconnect(ctx); err != nil {
			logger.Warnf("mongo disconnect: %v", err)
		}
	}
}
