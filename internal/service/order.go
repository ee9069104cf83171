package service

import (
	"bytes"
	"sort"
	"time"

	"github.com/campuslink/campuslink/backend/go-services/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type direction int

const (
	oldestFirst direction = iota
	newestFirst
)

// sortByCreatedAt orders docs in place. Equal timestamps are ordered by _id in
// the same direction, since ObjectIDs minted by one process increase. Documents
// without a usable created_at go last in either direction, and documents that
// still tie keep the order the store returned.
func sortByCreatedAt(docs []store.Document, dir direction) {
	sort.SliceStable(docs, func(i, j int) bool {
		ti, okI := createdAt(docs[i])
		tj, okJ := createdAt(docs[j])
		switch {
		case !okI:
			return false
		case !okJ:
			return true
		}
		c := ti.Compare(tj)
		if c == 0 {
			c = compareIDs(docs[i], docs[j])
		}
		if dir == newestFirst {
			return c > 0
		}
		return c < 0
	})
}

func createdAt(d store.Document) (time.Time, bool) {
	switch v := d[store.CreatedAtField].(type) {
	case primitive.DateTime:
		return v.Time(), true
	case time.Time:
		return v, true
	}
	return time.Time{}, false
}

// compareIDs returns 0 unless both documents carry an ObjectID.
func compareIDs(a, b store.Document) int {
	ia, okA := a[store.IDField].(primitive.ObjectID)
	ib, okB := b[store.IDField].(primitive.ObjectID)
	if !okA || !okB {
		return 0
	}
	return bytes.Compare(ia[:], ib[:])
}
