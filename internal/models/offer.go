package models

// Offer is an internship offer, optionally attached to a post.
type Offer struct {
	Title       string  `json:"title" bson:"title" validate:"required"`
	Description string  `json:"description" bson:"description" validate:"required"`
	Location    *string `json:"location,omitempty" bson:"location"`
	Stipend     *string `json:"stipend,omitempty" bson:"stipend"`
	PostID      *string `json:"post_id,omitempty" bson:"post_id"`
	CreatedBy   string  `json:"created_by" bson:"created_by" validate:"required"`
}

func (*Offer) Collection() string { return OfferCollection }
