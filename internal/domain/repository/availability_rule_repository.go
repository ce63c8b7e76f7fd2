package repository

import (
	"dental-office-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AvailabilityRuleRepository interface {
	Upsert(db *gorm.DB, rule *entity.AvailabilityRule) error
	FindByDoctorAndDay(db *gorm.DB, doctorID uuid.UUID, dayOfWeek int) (*entity.AvailabilityRule, error)
	// FindByDoctorAndDayForUpdate locks the rule row for the rest of the
	// surrounding transaction. Bookings against the same doctor-day serialize on
	// this lock, which is what keeps the capacity count race-free.
	FindByDoctorAndDayForUpdate(db *gorm.DB, doctorID uuid.UUID, dayOfWeek int) (*entity.AvailabilityRule, error)
	FindByDoctor(db *gorm.DB, doctorID uuid.UUID) ([]entity.AvailabilityRule, error)
}
