// Package store is the generic document access layer: it inserts typed
// records into named collections and reads them back through exact-match
// filters with a hard result limit.
package store

import (
	"context"
	"time"

	"github.com/campuslink/campuslink/backend/go-services/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is implemented by MongoStore and MemoryStore.
//
// Insert persists a prepared record and returns its new identifier. Query
// returns at most limit documents matching filter, in no particular order, and
// an empty slice when nothing matches. Both fail with an apperror
// ErrStoreUnavailable error when the store has no live connection.
type Store interface {
	Insert(ctx context.Context, collection string, rec models.Record) (primitive.ObjectID, error)
	Query(ctx context.Context, collection string, filter Filter, limit int64) ([]Document, error)
	Ping(ctx context.Context) error
	CollectionNames(ctx context.Context) ([]string, error)
	Name() string
}

type storeConfig struct {
	now     func() time.Time
	timeout time.Duration
}

// Option configures a store.
type Option func(*storeConfig)

// WithClock replaces the timestamp source used for created_at.
func WithClock(now func() time.Time) Option {
	return func(c *storeConfig) {
		if now != nil {
			c.now = now
		}
	}
}

// WithTimeout bounds every call to the database. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *storeConfig) {
		c.timeout = d
	}
}

func newConfig(opts []Option) storeConfig {
	c := storeConfig{now: time.Now}
	for _, o := range opts {
		o(&c)
	}
	return c
}
