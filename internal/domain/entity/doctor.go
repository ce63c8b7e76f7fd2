package entity

import (
	"time"

	"github.com/google/uuid"
)

// DoctorStatus represents whether a doctor is accepting appointments
type DoctorStatus string

const (
	DoctorStatusActive   DoctorStatus = "Active"
	DoctorStatusInactive DoctorStatus = "Inactive"
)

// Doctor represents a practitioner in the clinic
type Doctor struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string       `gorm:"type:varchar(255);not null" json:"name"`
	Specialty   string       `gorm:"type:varchar(100);not null;index" json:"specialty"`
	Email       string       `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone       string       `gorm:"type:varchar(20);not null" json:"phone"`
	OfficeHours string       `gorm:"type:varchar(100)" json:"office_hours,omitempty"`
	Status      DoctorStatus `gorm:"type:varchar(20);not null;default:'Active';index" json:"status"`
	CreatedAt   time.Time    `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	AvailabilityRules []AvailabilityRule `gorm:"foreignKey:DoctorID" json:"availability_rules,omitempty"`
	TimeOffIntervals  []TimeOffInterval  `gorm:"foreignKey:DoctorID" json:"time_off_intervals,omitempty"`
	Appointments      []Appointment      `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// IsActive checks if the doctor is accepting appointments
func (d *Doctor) IsActive() bool {
	return d.Status == DoctorStatusActive
}
