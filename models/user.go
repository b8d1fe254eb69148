package models

import "time"

const UserTable = "lf_users"

// Roles a user can register with.
const (
	RoleFinder  = "finder"
	RoleClaimer = "claimer"
	RoleAdmin   = "admin"
)

type User struct {
	ID    string `gorm:"type:uuid;primaryKey" json:"id"`
	Name  string `gorm:"size:255;not null" json:"name"`
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Role  string `gorm:"size:20;not null" json:"role"`

	LastSeenAt *time.Time `gorm:"index" json:"lastSeenAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string { return UserTable }

func ValidRole(role string) bool {
	switch role {
	case RoleFinder, RoleClaimer, RoleAdmin:
		return true
	}
	return false
}
