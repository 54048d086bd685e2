package models

import "time"

// Role names seeded at setup. Roles are reference data: the application reads
// them but never creates new ones through its own flows.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"

	// GuardWeb is the single guard scope roles are registered under.
	GuardWeb = "web"
)

type Role struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"size:100;not null;uniqueIndex:idx_roles_name_guard" json:"name"`
	GuardName string    `gorm:"size:100;not null;uniqueIndex:idx_roles_name_guard" json:"guard_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
