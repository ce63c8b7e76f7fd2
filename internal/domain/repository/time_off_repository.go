package repository

import (
	"time"

	"dental-office-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TimeOffRepository interface {
	Create(db *gorm.DB, interval *entity.TimeOffInterval) error
	// FindActive returns any interval covering the given date, nil when none does.
	FindActive(db *gorm.DB, doctorID uuid.UUID, date time.Time) (*entity.TimeOffInterval, error)
	FindByDoctor(db *gorm.DB, doctorID uuid.UUID) ([]entity.TimeOffInterval, error)
}
