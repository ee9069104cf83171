package store

import (
	"time"

	"github.com/campuslink/campuslink/backend/go-services/internal/apperror"
	"github.com/campuslink/campuslink/backend/go-services/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Field names the adapter writes on every inserted document.
const (
	IDField        = "_id"
	CreatedAtField = "created_at"
	UpdatedAtField = "updated_at"
)

// Document is the generic key/value form of a stored record. It only exists at
// the adapter boundary; typed records live in the models package.
type Document map[string]any

// Filter maps a field name to either a literal (exact match) or a Membership
// predicate built with In. Field names are not checked: a key that matches no
// stored field selects nothing.
type Filter map[string]any

// Membership matches a field whose value, or any element of an array value,
// is one of Values.
type Membership struct {
	Values []any
}

// In builds a membership predicate, e.g. Filter{"tags": In("go")}.
func In(values ...any) Membership {
	return Membership{Values: values}
}

// bsonFilter translates f into a Mongo query document.
func (f Filter) bsonFilter() bson.M {
	q := bson.M{}
	for k, v := range f {
		if m, ok := v.(Membership); ok {
			vals := m.Values
			if vals == nil {
				vals = []any{}
			}
			q[k] = bson.M{"$in": vals}
			continue
		}
		q[k] = v
	}
	return q
}

// newDocument converts rec through its bson tags and stamps identity and
// creation time.
func newDocument(rec models.Record, now time.Time) (primitive.ObjectID, bson.M, error) {
	raw, err := bson.Marshal(rec)
	if err != nil {
		return primitive.NilObjectID, nil, err
	}
	doc := bson.M{}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return primitive.NilObjectID, nil, err
	}
	id := primitive.NewObjectID()
	// Mongo keeps millisecond precision; match it so both stores agree.
	ts := now.UTC().Truncate(time.Millisecond)
	doc[IDField] = id
	doc[CreatedAtField] = ts
	doc[UpdatedAtField] = ts
	return id, doc, nil
}

func checkLimit(limit int64) error {
	if limit < 1 {
		return apperror.InvalidField("limit", "min=1")
	}
	return nil
}
