package store

import (
	"context"
	"testing"
	"time"

	"github.com/campuslink/campuslink/backend/go-services/internal/apperror"
	"github.com/campuslink/campuslink/backend/go-services/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoStoreWithoutConnection(t *testing.T) {
	ctx := context.Background()
	s := NewMongoStore(nil)
	require.False(t, s.Connected())
	require.Empty(t, s.Name())

	_, err := s.Insert(ctx, models.UserCollection, &models.User{Name: "a", Email: "a@b.co", Role: models.RoleStudent})
	require.ErrorIs(t, err, apperror.ErrStoreUnavailable)
	_, err = s.Query(ctx, models.UserCollection, nil, 10)
	require.ErrorIs(t, err, apperror.ErrStoreUnavailable)
	require.ErrorIs(t, s.Ping(ctx), apperror.ErrStoreUnavailable)
	_, err = s.CollectionNames(ctx)
	require.ErrorIs(t, err, apperror.ErrStoreUnavailable)
}

func TestMongoStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("insert returns new id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		s := NewMongoStore(mt.DB, WithTimeout(time.Second))

		id, err := s.Insert(context.Background(), models.PostCollection, &models.Post{Type: models.PostQuestion, Title: "t", Content: "c", Tags: []string{}, CreatedBy: "u"})
		require.NoError(mt, err)
		require.False(mt, id.IsZero())
	})

	mt.Run("insert write error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key error"}))
		s := NewMongoStore(mt.DB)

		_, err := s.Insert(context.Background(), models.UserCollection, &models.User{Name: "a", Email: "a@b.co", Role: models.RoleStudent})
		require.ErrorIs(mt, err, apperror.ErrWrite)
		require.Contains(mt, err.Error(), "duplicate key")
	})

	mt.Run("query returns documents", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		created := primitive.NewDateTimeFromTime(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "campuslink.post", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: oid}, {Key: "title", Value: "GC"}, {Key: "tags", Value: bson.A{"go"}}, {Key: "created_at", Value: created}},
		))
		s := NewMongoStore(mt.DB)

		docs, err := s.Query(context.Background(), models.PostCollection, Filter{"tags": In("go")}, 50)
		require.NoError(mt, err)
		require.Len(mt, docs, 1)
		assert.Equal(mt, oid, docs[0][IDField])
		assert.Equal(mt, "GC", docs[0]["title"])
		assert.Equal(mt, created, docs[0][CreatedAtField])
	})

	mt.Run("query with no match is empty", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "campuslink.comment", mtest.FirstBatch))
		s := NewMongoStore(mt.DB)

		docs, err := s.Query(context.Background(), models.CommentCollection, Filter{"post_id": "nope"}, 100)
		require.NoError(mt, err)
		require.NotNil(mt, docs)
		require.Empty(mt, docs)
	})

	mt.Run("query driver error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 91, Name: "ShutdownInProgress", Message: "shutting down"}))
		s := NewMongoStore(mt.DB)

		_, err := s.Query(context.Background(), models.OfferCollection, nil, 100)
		require.ErrorIs(mt, err, apperror.ErrStoreUnavailable)
	})

	mt.Run("query rejects unbounded limit", func(mt *mtest.T) {
		s := NewMongoStore(mt.DB)
		_, err := s.Query(context.Background(), models.OfferCollection, nil, 0)
		require.ErrorIs(mt, err, apperror.ErrValidation)
	})

	mt.Run("ping and collection names", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, "campuslink.$cmd.listCollections", mtest.FirstBatch,
				bson.D{{Key: "name", Value: "post"}},
				bson.D{{Key: "name", Value: "user"}},
			),
		)
		s := NewMongoStore(mt.DB)

		require.NoError(mt, s.Ping(context.Background()))
		names, err := s.CollectionNames(context.Background())
		require.NoError(mt, err)
		require.ElementsMatch(mt, []string{"post", "user"}, names)
	})
}

func TestFilterTranslation(t *testing.T) {
	q := Filter{"type": "question", "tags": In("go", "db")}.bsonFilter()
	assert.Equal(t, "question", q["type"])
	assert.Equal(t, bson.M{"$in": []any{"go", "db"}}, q["tags"])

	empty := Filter{"tags": In()}.bsonFilter()
	assert.Equal(t, bson.M{"$in": []any{}}, empty["tags"])
	assert.Empty(t, Filter(nil).bsonFilter())
}
