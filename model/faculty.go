package model

import (
	"time"

	"gorm.io/gorm"
)

// Faculty represents a teaching staff profile on the public site.
// Listings are ordered by DisplayOrder ascending, newest first within a tie.
type Faculty struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"type:varchar(255);not null" json:"name"`
	Degree       string         `gorm:"type:varchar(255);not null" json:"degree"`
	Experience   int            `gorm:"not null;default:0" json:"experience"` // years, >= 0
	Subject      string         `gorm:"type:varchar(255);not null" json:"subject"`
	Description  string         `gorm:"type:text;not null" json:"description"`
	ImageURL     string         `gorm:"type:varchar(512);not null" json:"image_url"`
	DisplayOrder int            `gorm:"default:0;index" json:"display_order"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Faculty
func (Faculty) TableName() string {
	return "faculty"
}
