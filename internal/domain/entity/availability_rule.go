package entity

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityRule is a doctor's recurring weekly working-hours template for one
// day of the week (0=Sunday..6=Saturday). At most one rule exists per
// (doctor, day_of_week) pair.
type AvailabilityRule struct {
	ID              int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_doctor_day" json:"doctor_id"`
	DayOfWeek       int       `gorm:"not null;uniqueIndex:idx_doctor_day" json:"day_of_week"`
	StartTime       string    `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime         string    `gorm:"type:varchar(5);not null" json:"end_time"`
	BreakStart      *string   `gorm:"type:varchar(5)" json:"break_start,omitempty"`
	BreakEnd        *string   `gorm:"type:varchar(5)" json:"break_end,omitempty"`
	IsAvailable     *bool     `gorm:"not null;default:true" json:"is_available"`
	MaxAppointments int       `gorm:"not null;default:8" json:"max_appointments"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (AvailabilityRule) TableName() string {
	return "doctor_availability_rules"
}

// HasBreak checks whether the rule defines a break window
func (r *AvailabilityRule) HasBreak() bool {
	return r.BreakStart != nil && r.BreakEnd != nil
}

// Available reports whether the rule marks the day as bookable
func (r *AvailabilityRule) Available() bool {
	return r.IsAvailable == nil || *r.IsAvailable
}
