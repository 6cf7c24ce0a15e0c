package auth

import "time"

type UserRole string

const (
	RoleModel        UserRole = "model"
	RoleProfessional UserRole = "professional"
)

func (r UserRole) Valid() bool {
	return r == RoleModel || r == RoleProfessional
}

// User is the shared account record. Role-specific attributes live in the
// profile domain.
type User struct {
	ID           int64     `gorm:"column:id;primaryKey" json:"id"`
	Email        string    `gorm:"column:email;uniqueIndex" json:"email" validate:"required,email"`
	PasswordHash string    `gorm:"column:password_hash" json:"-"`
	Role         UserRole  `gorm:"column:role" json:"role"`
	Name         string    `gorm:"column:name" json:"name"`
	Phone        string    `gorm:"column:phone" json:"phone,omitempty"`
	AvatarID     string    `gorm:"column:avatar_id" json:"avatar_id,omitempty"` // FK -> uploads.id
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string { return "users" }
