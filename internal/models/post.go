package models

// PostType distinguishes the kinds of posts.
type PostType string

const (
	PostQuestion          PostType = "question"
	PostInternshipRequest PostType = "internship_request"
	PostDiscussion        PostType = "discussion"
)

// Post is a question, internship request or discussion thread.
// CreatedBy holds a user id and is never checked against the user collection.
type Post struct {
	Type      PostType `json:"type" bson:"type" validate:"required,oneof=question internship_request discussion"`
	Title     string   `json:"title" bson:"title" validate:"required"`
	Content   string   `json:"content" bson:"content" validate:"required"`
	Tags      []string `json:"tags" bson:"tags"`
	CreatedBy string   `json:"created_by" bson:"created_by" validate:"required"`
}

func (*Post) Collection() string { return PostCollection }

func (p *Post) applyDefaults() {
	if p.Tags == nil {
		p.Tags = []string{}
	}
}
