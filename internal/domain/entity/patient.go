package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatientStatus represents whether a patient account is active
type PatientStatus string

const (
	PatientStatusActive   PatientStatus = "Active"
	PatientStatusInactive PatientStatus = "Inactive"
)

// Patient represents a registered clinic patient
type Patient struct {
	ID                uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name              string        `gorm:"type:varchar(255);not null" json:"name"`
	Email             string        `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone             string        `gorm:"type:varchar(20);not null" json:"phone"`
	DateOfBirth       time.Time     `gorm:"type:date;not null" json:"date_of_birth"`
	Address           string        `gorm:"type:text" json:"address,omitempty"`
	InsuranceProvider string        `gorm:"type:varchar(100)" json:"insurance_provider,omitempty"`
	InsuranceID       string        `gorm:"type:varchar(50)" json:"insurance_id,omitempty"`
	LastVisit         *time.Time    `gorm:"type:date" json:"last_visit,omitempty"`
	Status            PatientStatus `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
	CreatedAt         time.Time     `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
