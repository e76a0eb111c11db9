package models

// User roles.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// UserModel represents an admin/editor account. There is no public signup;
// users are created by the seed tool only.
type UserModel struct {
	Base
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-"     gorm:"not null"`
	Role     string `json:"role"  gorm:"default:'admin'"`
}

func (UserModel) TableName() string { return "users" }
