// Package serialize turns stored documents into their public, transport-safe
// form: ObjectIDs become hex strings and the _id field becomes id.
package serialize

import (
	"github.com/campuslink/campuslink/backend/go-services/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PublicIDField is the name clients see for a document's identity.
const PublicIDField = "id"

// Doc returns a new map; d is left untouched. Serializing an already
// serialized document returns an equal document.
func Doc(d store.Document) map[string]any {
	out := make(map[string]any, len(d))
	for k, v := range d {
		out[k] = value(v)
	}
	if id, ok := out[store.IDField]; ok {
		delete(out, store.IDField)
		out[PublicIDField] = id
	}
	return out
}

// Docs serializes docs, keeping their order.
func Docs(docs []store.Document) []map[string]any {
	out := make([]map[string]any, 0, len(docs))
	for _, d := range docs {
		out = append(out, Doc(d))
	}
	return out
}

// IDString is the canonical string form of an identifier.
func IDString(id primitive.ObjectID) string {
	return id.Hex()
}

func value(v any) any {
	switch t := v.(type) {
	case primitive.ObjectID:
		return IDString(t)
	case primitive.DateTime:
		return t.Time().UTC()
	case primitive.A:
		return list(t)
	case []any:
		return list(t)
	case primitive.M:
		return nested(t)
	case map[string]any:
		return nested(t)
	case store.Document:
		return nested(t)
	case primitive.D:
		m := make(map[string]any, len(t))
		for _, e := range t {
			m[e.Key] = value(e.Value)
		}
		return m
	}
	return v
}

func list(in []any) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = value(v)
	}
	return out
}

func nested(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = value(v)
	}
	return out
}
