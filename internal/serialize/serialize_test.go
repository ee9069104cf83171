package serialize

import (
	"testing"
	"time"

	"github.com/campuslink/campuslink/backend/go-services/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDocRenamesIDAndStringifiesObjectIDs(t *testing.T) {
	oid := primitive.NewObjectID()
	ref := primitive.NewObjectID()
	created := time.Date(2026, 5, 4, 3, 2, 1, 0, time.UTC)
	in := store.Document{
		"_id":        oid,
		"title":      "Internship at Acme",
		"created_by": ref,
		"tags":       primitive.A{"go", ref},
		"meta":       primitive.D{{Key: "owner", Value: ref}},
		"created_at": primitive.NewDateTimeFromTime(created),
		"stipend":    nil,
	}

	out := Doc(in)

	assert.Equal(t, oid.Hex(), out["id"])
	assert.NotContains(t, out, "_id")
	assert.Equal(t, ref.Hex(), out["created_by"])
	assert.Equal(t, []any{"go", ref.Hex()}, out["tags"])
	assert.Equal(t, map[string]any{"owner": ref.Hex()}, out["meta"])
	ts, ok := out["created_at"].(time.Time)
	require.True(t, ok)
	assert.True(t, created.Equal(ts))
	assert.Contains(t, out, "stipend")
	assert.Nil(t, out["stipend"])

	// input is not modified
	assert.Equal(t, oid, in["_id"])
}

func TestDocIsIdempotent(t *testing.T) {
	once := Doc(store.Document{"_id": primitive.NewObjectID(), "post_id": "p1", "tags": primitive.A{"a"}})
	twice := Doc(store.Document(once))
	require.Equal(t, once, twice)
	require.NotContains(t, twice, "_id")
}

func TestDocWithoutIdentity(t *testing.T) {
	out := Doc(store.Document{"name": "x"})
	assert.Equal(t, map[string]any{"name": "x"}, out)
}

func TestDocsPreservesOrder(t *testing.T) {
	ids := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()}
	docs := []store.Document{{"_id": ids[2]}, {"_id": ids[0]}, {"_id": ids[1]}}

	out := Docs(docs)
	require.Len(t, out, 3)
	assert.Equal(t, ids[2].Hex(), out[0]["id"])
	assert.Equal(t, ids[0].Hex(), out[1]["id"])
	assert.Equal(t, ids[1].Hex(), out[2]["id"])

	require.NotNil(t, Docs(nil))
	require.Empty(t, Docs(nil))
}

func TestIDString(t *testing.T) {
	oid, err := primitive.ObjectIDFromHex("65f1c2a9b3e4d5f6a7b8c9d0")
	require.NoError(t, err)
	assert.Equal(t, "65f1c2a9b3e4d5f6a7b8c9d0", IDString(oid))
}
