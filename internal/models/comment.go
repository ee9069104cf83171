package models

// Comment belongs to a post; ParentID, when set, points at another comment
// to form a thread.
type Comment struct {
	PostID    string  `json:"post_id" bson:"post_id" validate:"required"`
	Content   string  `json:"content" bson:"content" validate:"required"`
	CreatedBy string  `json:"created_by" bson:"created_by" validate:"required"`
	ParentID  *string `json:"parent_id,omitempty" bson:"parent_id"`
}

func (*Comment) Collection() string { return CommentCollection }
