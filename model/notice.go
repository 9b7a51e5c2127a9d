package model

import (
	"time"

	"gorm.io/gorm"
)

// Notice represents a dated announcement, optionally carrying a downloadable PDF.
// The most recent notice drives the public site's notice popup.
type Notice struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"type:varchar(255);not null" json:"title"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	Date      time.Time      `gorm:"not null;index" json:"date"`
	PDFURL    string         `gorm:"type:varchar(512)" json:"pdf_url,omitempty"`
	PDFName   string         `gorm:"type:varchar(255)" json:"pdf_name,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
