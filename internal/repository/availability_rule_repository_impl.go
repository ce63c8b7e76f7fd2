package repository

import (
	"errors"

	"dental-office-backend/internal/domain/entity"
	domainRepo "dental-office-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type availabilityRuleRepository struct{}

func NewAvailabilityRuleRepository() domainRepo.AvailabilityRuleRepository {
	return &availabilityRuleRepository{}
}

// Upsert writes the weekly rule, replacing the existing row for the same
// (doctor, day_of_week) pair.
func (r *availabilityRuleRepository) Upsert(db *gorm.DB, rule *entity.AvailabilityRule) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "doctor_id"}, {Name: "day_of_week"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"start_time", "end_time", "break_start", "break_end",
			"is_available", "max_appointments",
		}),
	}).Create(rule).Error
}

func (r *availabilityRuleRepository) FindByDoctorAndDay(db *gorm.DB, doctorID uuid.UUID, dayOfWeek int) (*entity.AvailabilityRule, error) {
	return r.findByDoctorAndDay(db, doctorID, dayOfWeek)
}

func (r *availabilityRuleRepository) FindByDoctorAndDayForUpdate(db *gorm.DB, doctorID uuid.UUID, dayOfWeek int) (*entity.AvailabilityRule, error) {
	return r.findByDoctorAndDay(db.Clauses(clause.Locking{Strength: "UPDATE"}), doctorID, dayOfWeek)
}

func (r *availabilityRuleRepository) findByDoctorAndDay(db *gorm.DB, doctorID uuid.UUID, dayOfWeek int) (*entity.AvailabilityRule, error) {
	var rule entity.AvailabilityRule
	err := db.Where("doctor_id = ? AND day_of_week = ?", doctorID, dayOfWeek).First(&rule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rule, nil
}

func (r *availabilityRuleRepository) FindByDoctor(db *gorm.DB, doctorID uuid.UUID) ([]entity.AvailabilityRule, error) {
	var rules []entity.AvailabilityRule
	err := db.Where("doctor_id = ?", doctorID).Order("day_of_week ASC").Find(&rules).Error
	if err != nil {
		return nil, err
	}
	return rules, nil
}
