package models

import (
	"time"
)

const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

type User struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	Username     string           `gorm:"uniqueIndex;size:100" json:"username"`
	Email        string           `gorm:"uniqueIndex;size:100" json:"email"`
	PasswordHash string           `gorm:"size:255" json:"-"`
	Role         string           `gorm:"size:20;default:'user'" json:"role"`
	IsActive     bool             `gorm:"default:true" json:"is_active"`
	ProviderID   *uint            `gorm:"uniqueIndex" json:"provider_id"`
	Provider     *ServiceProvider `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

// IsAdmin reports whether the user holds admin privileges.
// Super-admins pass every admin check.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}

func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// OwnsProvider reports whether the user is the linked owner of the
// given provider. Ownership is the only path to provider updates;
// role is deliberately not consulted here.
func (u *User) OwnsProvider(providerID uint) bool {
	return u.ProviderID != nil && *u.ProviderID == providerID
}
