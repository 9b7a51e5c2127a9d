package model

import (
	"time"

	"gorm.io/gorm"
)

// Admin represents an administrator account for the school dashboard
type Admin struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Username     string         `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string         `gorm:"not null" json:"-"` // Never expose password in JSON
	DisplayName  string         `gorm:"not null" json:"display_name"`
	TokenVersion int            `gorm:"default:0" json:"-"` // Increment to invalidate all admin tokens

	// Relationships
	AuditLogs      []AdminAuditLog     `gorm:"foreignKey:AdminID;constraint:OnDelete:CASCADE" json:"-"`
	TokenBlacklist []JWTTokenBlacklist `gorm:"foreignKey:AdminID;constraint:OnDelete:CASCADE" json:"-"`
}
