package models

import "time"

// User is an application account. Password holds the bcrypt hash, never the
// plain text, and is omitted from JSON responses. Although the join table
// allows many roles, the application assigns exactly one at a time.
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Roles     []Role    `gorm:"many2many:user_roles" json:"roles,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RoleName returns the user's single role name, or "" when none is assigned.
func (u *User) RoleName() string {
	if len(u.Roles) == 0 {
		return ""
	}
	return u.Roles[0].Name
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	for _, r := range u.Roles {
		if r.Name == RoleAdmin {
			return true
		}
	}
	return false
}
