package entity

import (
	"time"

	"github.com/google/uuid"
)

// MedicalRecord is a procedure history entry for a patient
type MedicalRecord struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID     uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID      uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	ProcedureType string    `gorm:"type:varchar(100);not null" json:"procedure_type"`
	ProcedureDate time.Time `gorm:"type:date;not null" json:"procedure_date"`
	Diagnosis     string    `gorm:"type:text" json:"diagnosis,omitempty"`
	Treatment     string    `gorm:"type:text" json:"treatment,omitempty"`
	Notes         string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}
