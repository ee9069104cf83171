package models

// Role of a platform user.
type Role string

const (
	RoleStudent   Role = "student"
	RoleProfessor Role = "professor"
	RoleCompany   Role = "company"
)

// User represents a student, professor or company account.
// Verified is accepted on write but nothing sets it afterwards.
type User struct {
	Name        string  `json:"name" bson:"name" validate:"required"`
	Email       string  `json:"email" bson:"email" validate:"required,email"`
	Role        Role    `json:"role" bson:"role" validate:"required,oneof=student professor company"`
	College     *string `json:"college,omitempty" bson:"college"`
	Department  *string `json:"department,omitempty" bson:"department"`
	CompanyName *string `json:"company_name,omitempty" bson:"company_name"`
	Headline    *string `json:"headline,omitempty" bson:"headline"`
	Verified    bool    `json:"verified" bson:"verified"`
}

func (*User) Collection() string { return UserCollection }
