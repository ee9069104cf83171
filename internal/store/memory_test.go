package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/campuslink/campuslink/backend/go-services/internal/apperror"
	"github.com/campuslink/campuslink/backend/go-services/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

func strPtr(s string) *string { return &s }

func TestMemoryStoreInsertQuery(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	s := NewMemoryStore(WithClock(func() time.Time { return now }))

	id, err := s.Insert(ctx, models.UserCollection, &models.User{Name: "Asha", Email: "asha@campus.edu", Role: models.RoleStudent, College: strPtr("IIT")})
	require.NoError(t, err)
	require.False(t, id.IsZero())

	docs, err := s.Query(ctx, models.UserCollection, Filter{"role": "student"}, 10)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	d := docs[0]
	assert.Equal(t, id, d[IDField])
	assert.Equal(t, "Asha", d["name"])
	assert.Equal(t, "asha@campus.edu", d["email"])
	assert.Equal(t, "student", d["role"])
	assert.Equal(t, "IIT", d["college"])
	assert.Nil(t, d["department"])
	assert.Equal(t, false, d["verified"])
	assert.Equal(t, primitive.NewDateTimeFromTime(now), d[CreatedAtField])
	assert.Equal(t, d[CreatedAtField], d[UpdatedAtField])
}

func TestMemoryStoreEveryEntityRoundTrips(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	cases := []struct {
		rec    models.Record
		filter Filter
	}{
		{&models.User{Name: "Prof", Email: "prof@campus.edu", Role: models.RoleProfessor}, Filter{"role": "professor"}},
		{&models.Post{Type: models.PostQuestion, Title: "t", Content: "c", Tags: []string{"go"}, CreatedBy: "u1"}, Filter{"type": "question", "created_by": "u1"}},
		{&models.Comment{PostID: "p1", Content: "c", CreatedBy: "u2"}, Filter{"post_id": "p1"}},
		{&models.Offer{Title: "Intern", Description: "d", PostID: strPtr("p1"), CreatedBy: "u3"}, Filter{"post_id": "p1", "created_by": "u3"}},
	}
	for _, tc := range cases {
		require.NoError(t, models.Prepare(tc.rec))
		id, err := s.Insert(ctx, tc.rec.Collection(), tc.rec)
		require.NoError(t, err)
		docs, err := s.Query(ctx, tc.rec.Collection(), tc.filter, 50)
		require.NoError(t, err)
		require.Len(t, docs, 1, "%T", tc.rec)
		assert.Equal(t, id, docs[0][IDField])
	}
}

func TestMemoryStoreNoMatchIsEmpty(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	_, err := s.Insert(ctx, models.CommentCollection, &models.Comment{PostID: "p1", Content: "c", CreatedBy: "u"})
	require.NoError(t, err)

	for _, f := range []Filter{{"post_id": "p2"}, {"no_such_field": "x"}} {
		docs, err := s.Query(ctx, models.CommentCollection, f, 10)
		require.NoError(t, err)
		require.NotNil(t, docs)
		require.Empty(t, docs)
	}

	docs, err := s.Query(ctx, "never_written", nil, 10)
	require.NoError(t, err)
	require.Empty(t, docs)
}

func TestMemoryStoreTagMembership(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	_, err := s.Insert(ctx, models.PostCollection, &models.Post{Type: models.PostDiscussion, Title: "t", Content: "c", Tags: []string{"a", "b"}, CreatedBy: "u"})
	require.NoError(t, err)

	for tag, want := range map[string]int{"a": 1, "b": 1, "c": 0} {
		docs, err := s.Query(ctx, models.PostCollection, Filter{"tags": In(tag)}, 10)
		require.NoError(t, err)
		assert.Len(t, docs, want, "tag %q", tag)
	}
	// a literal on an array field matches an element, as in Mongo
	docs, err := s.Query(ctx, models.PostCollection, Filter{"tags": "b"}, 10)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestMemoryStoreLimit(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	for i := 0; i < 7; i++ {
		_, err := s.Insert(ctx, models.OfferCollection, &models.Offer{Title: fmt.Sprintf("o%d", i), Description: "d", CreatedBy: "acme"})
		require.NoError(t, err)
	}
	docs, err := s.Query(ctx, models.OfferCollection, Filter{"created_by": "acme"}, 5)
	require.NoError(t, err)
	require.Len(t, docs, 5)

	_, err = s.Query(ctx, models.OfferCollection, nil, 0)
	require.ErrorIs(t, err, apperror.ErrValidation)
}

func TestMemoryStoreCanceledContext(t *testing.T) {
	s := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Insert(ctx, models.PostCollection, &models.Post{})
	require.ErrorIs(t, err, apperror.ErrWrite)
	_, err = s.Query(ctx, models.PostCollection, nil, 1)
	require.ErrorIs(t, err, apperror.ErrStoreUnavailable)
}

func TestMemoryStoreConcurrentInsertsGetDistinctIDs(t *testing.T) {
	const m = 64
	s := NewMemoryStore()
	var (
		mu  sync.Mutex
		ids = map[primitive.ObjectID]bool{}
	)
	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < m; i++ {
		i := i
		g.Go(func() error {
			id, err := s.Insert(ctx, models.CommentCollection, &models.Comment{PostID: "p", Content: fmt.Sprint(i), CreatedBy: "u"})
			if err != nil {
				return err
			}
			mu.Lock()
			ids[id] = true
			mu.Unlock()
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.Len(t, ids, m)

	docs, err := s.Query(context.Background(), models.CommentCollection, Filter{"post_id": "p"}, 500)
	require.NoError(t, err)
	require.Len(t, docs, m)
}

func TestMemoryStoreCollectionNames(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Ping(ctx))
	_, err := s.Insert(ctx, models.PostCollection, &models.Post{Type: models.PostQuestion, Title: "t", Content: "c", CreatedBy: "u"})
	require.NoError(t, err)
	_, err = s.Insert(ctx, models.CommentCollection, &models.Comment{PostID: "p", Content: "c", CreatedBy: "u"})
	require.NoError(t, err)

	names, err := s.CollectionNames(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"comment", "post"}, names)
	require.Equal(t, "memory", s.Name())
}
