package models

// User roles. Tokens are minted by the hosted auth provider; we only read
// the role claim back out of them.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

// UserModel mirrors the auth provider's user record locally so analytics and
// the tutor can resolve display names without a remote round trip.
type UserModel struct {
	Base
	Name  string `json:"name"  gorm:"not null"`
	Email string `json:"email" gorm:"uniqueIndex;not null"`
	Role  string `json:"role"  gorm:"default:'student';index"`
}

func (UserModel) TableName() string { return "users" }
