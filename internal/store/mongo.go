package store

import (
	"context"

	"github.com/campuslink/campuslink/backend/go-services/internal/apperror"
	"github.com/campuslink/campuslink/backend/go-services/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements Store on a MongoDB database. A MongoStore built with a
// nil database is valid and reports every call as store unavailable.
type MongoStore struct {
	db  *mongo.Database
	cfg storeConfig
}

func NewMongoStore(db *mongo.Database, opts ...Option) *MongoStore {
	return &MongoStore{db: db, cfg: newConfig(opts)}
}

// Connected reports whether the store holds a database handle.
func (s *MongoStore) Connected() bool {
	return s != nil && s.db != nil
}

func (s *MongoStore) Name() string {
	if !s.Connected() {
		return ""
	}
	return s.db.Name()
}

func (s *MongoStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.timeout > 0 {
		return context.WithTimeout(ctx, s.cfg.timeout)
	}
	return context.WithCancel(ctx)
}

func (s *MongoStore) Insert(ctx context.Context, collection string, rec models.Record) (primitive.ObjectID, error) {
	if !s.Connected() {
		return primitive.NilObjectID, apperror.StoreUnavailable("insert", nil)
	}
	id, doc, err := newDocument(rec, s.cfg.now())
	if err != nil {
		return primitive.NilObjectID, apperror.Write(collection, err)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if _, err := s.db.Collection(collection).InsertOne(ctx, doc); err != nil {
		return primitive.NilObjectID, apperror.Write(collection, err)
	}
	return id, nil
}

func (s *MongoStore) Query(ctx context.Context, collection string, filter Filter, limit int64) ([]Document, error) {
	if !s.Connected() {
		return nil, apperror.StoreUnavailable("query", nil)
	}
	if err := checkLimit(limit); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	cur, err := s.db.Collection(collection).Find(ctx, filter.bsonFilter(), options.Find().SetLimit(limit))
	if err != nil {
		return nil, apperror.StoreUnavailable("query "+collection, err)
	}
	var raw []bson.M
	if err := cur.All(ctx, &raw); err != nil {
		return nil, apperror.StoreUnavailable("query "+collection, err)
	}
	out := make([]Document, 0, len(raw))
	for _, d := range raw {
		out = append(out, Document(d))
	}
	return out, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	if !s.Connected() {
		return apperror.StoreUnavailable("ping", nil)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.db.Client().Ping(ctx, nil); err != nil {
		return apperror.StoreUnavailable("ping", err)
	}
	return nil
}

func (s *MongoStore) CollectionNames(ctx context.Context) ([]string, error) {
	if !s.Connected() {
		return nil, apperror.StoreUnavailable("list collections", nil)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, apperror.StoreUnavailable("list collections", err)
	}
	return names, nil
}
