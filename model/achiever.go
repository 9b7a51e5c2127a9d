package model

import (
	"time"

	"gorm.io/gorm"
)

// StudentAchiever represents a student achievement highlight on the public site
type StudentAchiever struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"type:varchar(255);not null" json:"name"`
	ImageURL     string         `gorm:"type:varchar(512);not null" json:"image_url"`
	Heading      string         `gorm:"type:varchar(255);not null" json:"heading"`
	Description  string         `gorm:"type:text;not null" json:"description"`
	DisplayOrder int            `gorm:"default:0;index" json:"display_order"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
