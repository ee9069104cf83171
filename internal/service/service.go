// Package service implements the campus operations on top of the generic
// document store: create a record, or list records of one kind filtered by
// query parameters and ordered for presentation.
package service

import (
	"context"
	"fmt"

	"github.com/campuslink/campuslink/backend/go-services/internal/apperror"
	"github.com/campuslink/campuslink/backend/go-services/internal/models"
	"github.com/campuslink/campuslink/backend/go-services/internal/serialize"
	"github.com/campuslink/campuslink/backend/go-services/internal/store"
)

// Limits bounds the result count of one list operation.
type Limits struct {
	Default int64
	Max     int64
}

var (
	UserLimits    = Limits{Default: 200, Max: 200}
	PostLimits    = Limits{Default: 50, Max: 200}
	CommentLimits = Limits{Default: 100, Max: 500}
	OfferLimits   = Limits{Default: 100, Max: 300}
)

// resolve returns the default for a nil limit and rejects values outside
// [1, Max].
func (l Limits) resolve(limit *int64) (int64, error) {
	if limit == nil {
		return l.Default, nil
	}
	if *limit < 1 {
		return 0, apperror.InvalidField("limit", "min=1")
	}
	if *limit > l.Max {
		return 0, apperror.InvalidField("limit", fmt.Sprintf("max=%d", l.Max))
	}
	return *limit, nil
}

type UserQuery struct {
	Role  string
	Limit *int64
}

type PostQuery struct {
	Type      string
	Tag       string
	CreatedBy string
	Limit     *int64
}

type CommentQuery struct {
	PostID string
	Limit  *int64
}

type OfferQuery struct {
	PostID    string
	CreatedBy string
	Limit     *int64
}

type Service struct {
	store store.Store
}

func New(s store.Store) *Service {
	return &Service{store: s}
}

// Create validates rec and inserts it into its collection, returning the
// public form of the new identifier. Referenced ids are not checked.
func (s *Service) Create(ctx context.Context, rec models.Record) (string, error) {
	if err := models.Prepare(rec); err != nil {
		return "", err
	}
	id, err := s.store.Insert(ctx, rec.Collection(), rec)
	if err != nil {
		return "", err
	}
	return serialize.IDString(id), nil
}

// ListUsers returns users in store order.
func (s *Service) ListUsers(ctx context.Context, q UserQuery) ([]map[string]any, error) {
	limit, err := UserLimits.resolve(q.Limit)
	if err != nil {
		return nil, err
	}
	f := store.Filter{}
	if q.Role != "" {
		f["role"] = q.Role
	}
	docs, err := s.store.Query(ctx, models.UserCollection, f, limit)
	if err != nil {
		return nil, err
	}
	return serialize.Docs(docs), nil
}

// ListPosts returns posts newest first. Tag matches posts whose tags contain it.
func (s *Service) ListPosts(ctx context.Context, q PostQuery) ([]map[string]any, error) {
	limit, err := PostLimits.resolve(q.Limit)
	if err != nil {
		return nil, err
	}
	f := store.Filter{}
	if q.Type != "" {
		f["type"] = q.Type
	}
	if q.CreatedBy != "" {
		f["created_by"] = q.CreatedBy
	}
	if q.Tag != "" {
		f["tags"] = store.In(q.Tag)
	}
	return s.list(ctx, models.PostCollection, f, limit, newestFirst)
}

// ListComments returns the comments of one post oldest first.
func (s *Service) ListComments(ctx context.Context, q CommentQuery) ([]map[string]any, error) {
	if q.PostID == "" {
		return nil, apperror.InvalidField("post_id", "required")
	}
	limit, err := CommentLimits.resolve(q.Limit)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, models.CommentCollection, store.Filter{"post_id": q.PostID}, limit, oldestFirst)
}

// ListOffers returns offers newest first.
func (s *Service) ListOffers(ctx context.Context, q OfferQuery) ([]map[string]any, error) {
	limit, err := OfferLimits.resolve(q.Limit)
	if err != nil {
		return nil, err
	}
	f := store.Filter{}
	if q.PostID != "" {
		f["post_id"] = q.PostID
	}
	if q.CreatedBy != "" {
		f["created_by"] = q.CreatedBy
	}
	return s.list(ctx, models.OfferCollection, f, limit, newestFirst)
}

func (s *Service) list(ctx context.Context, collection string, f store.Filter, limit int64, dir direction) ([]map[string]any, error) {
	docs, err := s.store.Query(ctx, collection, f, limit)
	if err != nil {
		return nil, err
	}
	sortByCreatedAt(docs, dir)
	return serialize.Docs(docs), nil
}
