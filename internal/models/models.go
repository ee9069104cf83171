// Package models holds the typed records stored by the campus API. Each record
// maps to one collection, named by Collection.
package models

// Collection names.
const (
	UserCollection    = "user"
	PostCollection    = "post"
	CommentCollection = "comment"
	OfferCollection   = "offer"
)

// Record is implemented by every storable entity.
type Record interface {
	Collection() string
}

// defaulter is implemented by records with fields that need a default
// before they are validated and stored.
type defaulter interface {
	applyDefaults()
}
