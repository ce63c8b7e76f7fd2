package repository

import (
	"errors"
	"time"

	"dental-office-backend/internal/domain/entity"
	domainRepo "dental-office-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type timeOffRepository struct{}

func NewTimeOffRepository() domainRepo.TimeOffRepository {
	return &timeOffRepository{}
}

func (r *timeOffRepository) Create(db *gorm.DB, interval *entity.TimeOffInterval) error {
	return db.Create(interval).Error
}

func (r *timeOffRepository) FindActive(db *gorm.DB, doctorID uuid.UUID, date time.Time) (*entity.TimeOffInterval, error) {
	var interval entity.TimeOffInterval
	err := db.Where("doctor_id = ? AND ? BETWEEN start_date AND end_date", doctorID, date).
		First(&interval).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &interval, nil
}

func (r *timeOffRepository) FindByDoctor(db *gorm.DB, doctorID uuid.UUID) ([]entity.TimeOffInterval, error) {
	var intervals []entity.TimeOffInterval
	err := db.Where("doctor_id = ?", doctorID).Order("start_date ASC").Find(&intervals).Error
	if err != nil {
		return nil, err
	}
	return intervals, nil
}
