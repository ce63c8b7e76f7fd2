package repository

import (
	"errors"

	"dental-office-backend/internal/domain/entity"
	domainRepo "dental-office-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type billingRecordRepository struct{}

func NewBillingRecordRepository() domainRepo.BillingRecordRepository {
	return &billingRecordRepository{}
}

func (r *billingRecordRepository) Create(db *gorm.DB, record *entity.BillingRecord) error {
	return db.Create(record).Error
}

func (r *billingRecordRepository) FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.BillingRecord, error) {
	var record entity.BillingRecord
	err := db.Where("appointment_id = ?", appointmentID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *billingRecordRepository) CancelByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) error {
	return db.Model(&entity.BillingRecord{}).
		Where("appointment_id = ?", appointmentID).
		Update("status", entity.BillingStatusCancelled).Error
}
