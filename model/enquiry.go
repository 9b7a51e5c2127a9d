package model

import (
	"time"

	"gorm.io/gorm"
)

// TimeSlot represents a preferred visit time slot
type TimeSlot string

const (
	TimeSlotMorning   TimeSlot = "morning"
	TimeSlotAfternoon TimeSlot = "afternoon"
	TimeSlotEvening   TimeSlot = "evening"
)

// VisitReason represents the reason for a campus visit
type VisitReason string

const (
	VisitReasonAdmission  VisitReason = "admission"
	VisitReasonCampusTour VisitReason = "campus_tour"
	VisitReasonMeeting    VisitReason = "meeting"
	VisitReasonOther      VisitReason = "other"
)

// CampusVisitEnquiry is a public form submission requesting a campus visit.
// Enquiries are created by visitors, read and deleted by admins, never updated.
type CampusVisitEnquiry struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	Name              string         `gorm:"type:varchar(255);not null" json:"name"`
	Phone             string         `gorm:"type:varchar(20);not null" json:"phone"`
	Email             string         `gorm:"type:varchar(255)" json:"email,omitempty"`
	Grade             string         `gorm:"type:varchar(50);not null" json:"grade"`
	VisitReason       VisitReason    `gorm:"type:varchar(20);not null" json:"visit_reason"`
	PreferredTimeSlot TimeSlot       `gorm:"type:varchar(20);not null" json:"preferred_time_slot"`
	Message           string         `gorm:"type:text" json:"message,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for CampusVisitEnquiry
func (CampusVisitEnquiry) TableName() string {
	return "campus_visit_enquiries"
}

// AdmissionEnquiry is a public form submission asking about admission
type AdmissionEnquiry struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Name       string         `gorm:"type:varchar(255);not null" json:"name"`
	ParentName string         `gorm:"type:varchar(255)" json:"parent_name,omitempty"`
	Phone      string         `gorm:"type:varchar(20);not null" json:"phone"`
	Email      string         `gorm:"type:varchar(255)" json:"email,omitempty"`
	Grade      string         `gorm:"type:varchar(50);not null" json:"grade"`
	Message    string         `gorm:"type:text" json:"message,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for AdmissionEnquiry
func (AdmissionEnquiry) TableName() string {
	return "admission_enquiries"
}

// FeesEnquiry is a public form submission asking about the fee structure
type FeesEnquiry struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	Phone     string         `gorm:"type:varchar(20);not null" json:"phone"`
	Email     string         `gorm:"type:varchar(255)" json:"email,omitempty"`
	Class     string         `gorm:"type:varchar(50);not null" json:"class"`
	Message   string         `gorm:"type:text" json:"message,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for FeesEnquiry
func (FeesEnquiry) TableName() string {
	return "fees_enquiries"
}

// ContactEnquiry is a general contact form submission
type ContactEnquiry struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	Email     string         `gorm:"type:varchar(255);not null" json:"email"`
	Phone     string         `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Message   string         `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for ContactEnquiry
func (ContactEnquiry) TableName() string {
	return "contact_enquiries"
}
