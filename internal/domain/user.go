package domain

import "time"

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleEditor   UserRole = "editor"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AdminAllowlistEntry is the cross-check table for admin access. A profile row
// that says "admin" still needs a matching allow-list row before the role
// resolver grants admin routes.
type AdminAllowlistEntry struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	AddedBy   string    `json:"added_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (AdminAllowlistEntry) TableName() string { return "admin_allowlist" }
