package model

import (
	"time"

	"gorm.io/gorm"
)

// Banner represents a promotional image shown as a modal on the public site.
// Only banners with IsActive=true (and inside their validity window, when one
// is set) are eligible for the popup.
type Banner struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"type:varchar(255)" json:"title"`
	Message   string         `gorm:"type:text" json:"message"`
	ImageURL  string         `gorm:"type:varchar(512);not null" json:"image_url"`
	IsActive  bool           `gorm:"default:true;index" json:"is_active"`
	StartsAt  *time.Time     `json:"starts_at,omitempty"`
	EndsAt    *time.Time     `json:"ends_at,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// InWindow reports whether the banner's validity window covers t.
// Banners with no window set are always in window.
func (b *Banner) InWindow(t time.Time) bool {
	if b.StartsAt != nil && t.Before(*b.StartsAt) {
		return false
	}
	if b.EndsAt != nil && t.After(*b.EndsAt) {
		return false
	}
	return true
}
