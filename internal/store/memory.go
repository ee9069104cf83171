package store

import (
	"context"
	"reflect"
	"sort"
	"sync"

	"github.com/campuslink/campuslink/backend/go-services/internal/apperror"
	"github.com/campuslink/campuslink/backend/go-services/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-process Store used by tests and by STORE_DRIVER=memory.
// Documents are kept as encoded bson in insertion order, so reads see the same
// value types a Mongo read would.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]bson.Raw
	cfg         storeConfig
}

func NewMemoryStore(opts ...Option) *MemoryStore {
	return &MemoryStore{collections: make(map[string][]bson.Raw), cfg: newConfig(opts)}
}

func (m *MemoryStore) Name() string { return "memory" }

func (m *MemoryStore) Insert(ctx context.Context, collection string, rec models.Record) (primitive.ObjectID, error) {
	if err := ctx.Err(); err != nil {
		return primitive.NilObjectID, apperror.Write(collection, err)
	}
	id, doc, err := newDocument(rec, m.cfg.now())
	if err != nil {
		return primitive.NilObjectID, apperror.Write(collection, err)
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		return primitive.NilObjectID, apperror.Write(collection, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[collection] = append(m.collections[collection], raw)
	return id, nil
}

func (m *MemoryStore) Query(ctx context.Context, collection string, filter Filter, limit int64) ([]Document, error) {
	if err := checkLimit(limit); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, apperror.StoreUnavailable("query "+collection, err)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []Document{}
	for _, raw := range m.collections[collection] {
		if int64(len(out)) >= limit {
			break
		}
		doc := Document{}
		if err := bson.Unmarshal(raw, &doc); err != nil {
			return nil, apperror.StoreUnavailable("query "+collection, err)
		}
		if matches(doc, filter) {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (m *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

func (m *MemoryStore) CollectionNames(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// matches follows Mongo's equality rules: a literal matches an equal scalar or
// any element of an array, a missing field only matches nil.
func matches(doc Document, filter Filter) bool {
	for field, want := range filter {
		got, ok := doc[field]
		if m, isIn := want.(Membership); isIn {
			if !matchesAny(got, ok, m.Values) {
				return false
			}
			continue
		}
		if !matchesAny(got, ok, []any{want}) {
			return false
		}
	}
	return true
}

func matchesAny(got any, present bool, wants []any) bool {
	for _, want := range wants {
		if !present {
			if want == nil {
				return true
			}
			continue
		}
		if equal(got, want) {
			return true
		}
		if arr, ok := got.(primitive.A); ok {
			for _, el := range arr {
				if equal(el, want) {
					return true
				}
			}
		}
	}
	return false
}

func equal(a, b any) bool {
	if fa, ok := number(a); ok {
		fb, ok := number(b)
		return ok && fa == fb
	}
	return reflect.DeepEqual(a, b)
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
