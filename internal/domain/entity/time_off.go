package entity

import (
	"time"

	"github.com/google/uuid"
)

// TimeOffInterval is a doctor-specific date range (inclusive on both ends) during
// which no bookings are permitted regardless of the weekly rule.
type TimeOffInterval struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	StartDate time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null" json:"end_date"`
	Reason    string    `gorm:"type:text" json:"reason,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (TimeOffInterval) TableName() string {
	return "doctor_time_off"
}

// Covers checks whether the interval includes the given calendar date
func (t *TimeOffInterval) Covers(date time.Time) bool {
	d := date.Truncate(24 * time.Hour)
	return !d.Before(t.StartDate) && !d.After(t.EndDate)
}
