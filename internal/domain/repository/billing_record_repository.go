package repository

import (
	"dental-office-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BillingRecordRepository interface {
	Create(db *gorm.DB, record *entity.BillingRecord) error
	FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.BillingRecord, error)
	CancelByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) error
}
