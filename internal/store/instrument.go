package store

import (
	"context"
	"time"

	"github.com/campuslink/campuslink/backend/go-services/internal/apperror"
	"github.com/campuslink/campuslink/backend/go-services/internal/models"
	"github.com/campuslink/campuslink/backend/go-services/pkg/metrics"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type instrumented struct {
	Store
}

// Instrument wraps s so inserts and queries are counted and timed in the
// collectors of pkg/metrics.
func Instrument(s Store) Store {
	return &instrumented{Store: s}
}

func observe(op, collection string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = apperror.Kind(err)
	}
	metrics.StoreOperations.WithLabelValues(op, collection, result).Inc()
	metrics.StoreOperationSeconds.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (i *instrumented) Insert(ctx context.Context, collection string, rec models.Record) (primitive.ObjectID, error) {
	start := time.Now()
	id, err := i.Store.Insert(ctx, collection, rec)
	observe("insert", collection, start, err)
	return id, err
}

func (i *instrumented) Query(ctx context.Context, collection string, filter Filter, limit int64) ([]Document, error) {
	start := time.Now()
	docs, err := i.Store.Query(ctx, collection, filter, limit)
	observe("query", collection, start, err)
	if err == nil {
		metrics.QueryResultSize.WithLabelValues(collection).Observe(float64(len(docs)))
	}
	return docs, err
}
