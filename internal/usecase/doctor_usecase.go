package usecase

import (
	"context"
	"errors"
	"time"

	"dental-office-backend/internal/converter"
	"dental-office-backend/internal/delivery/dto"
	"dental-office-backend/internal/domain/entity"
	"dental-office-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidRuleWindow   = errors.New("start time must be before end time and break must fall inside working hours")
	ErrInvalidTimeOffRange = errors.New("start date must not be after end date")
)

type DoctorUsecase interface {
	ListDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	UpsertAvailabilityRule(ctx context.Context, doctorID uuid.UUID, req *dto.UpsertAvailabilityRuleRequest) (*dto.AvailabilityRuleResponse, error)
	ListAvailabilityRules(ctx context.Context, doctorID uuid.UUID) ([]dto.AvailabilityRuleResponse, error)
	AddTimeOff(ctx context.Context, doctorID uuid.UUID, req *dto.CreateTimeOffRequest) (*dto.TimeOffResponse, error)
	ListTimeOff(ctx context.Context, doctorID uuid.UUID) (*dto.TimeOffListResponse, error)
}

type doctorUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	doctorRepo  repository.DoctorRepository
	ruleRepo    repository.AvailabilityRuleRepository
	timeOffRepo repository.TimeOffRepository
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	ruleRepo repository.AvailabilityRuleRepository,
	timeOffRepo repository.TimeOffRepository,
) DoctorUsecase {
	return &doctorUsecase{
		db:          db,
		log:         log,
		doctorRepo:  doctorRepo,
		ruleRepo:    ruleRepo,
		timeOffRepo: timeOffRepo,
	}
}

func (u *doctorUsecase) ListDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}
	responses := converter.DoctorsToResponses(doctors)
	return &dto.DoctorListResponse{Doctors: responses, Total: len(responses)}, nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToResponse(doctor), nil
}

// UpsertAvailabilityRule writes a doctor's weekly rule for one day. The
// (doctor, day_of_week) pair is unique, so a second write for the same day
// replaces the first.
func (u *doctorUsecase) UpsertAvailabilityRule(ctx context.Context, doctorID uuid.UUID, req *dto.UpsertAvailabilityRuleRequest) (*dto.AvailabilityRuleResponse, error) {
	if !validRuleWindow(req) {
		return nil, ErrInvalidRuleWindow
	}

	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByID(db, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	rule := &entity.AvailabilityRule{
		DoctorID:        doctorID,
		DayOfWeek:       *req.DayOfWeek,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		BreakStart:      req.BreakStart,
		BreakEnd:        req.BreakEnd,
		IsAvailable:     req.IsAvailable,
		MaxAppointments: req.MaxAppointments,
	}
	if err := u.ruleRepo.Upsert(db, rule); err != nil {
		u.log.Errorf("Failed to upsert availability rule for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	u.log.Infof("Availability rule saved: doctor=%s, day=%d, window=%s-%s",
		doctorID, rule.DayOfWeek, rule.StartTime, rule.EndTime)

	return converter.RuleToResponse(rule), nil
}

func (u *doctorUsecase) ListAvailabilityRules(ctx context.Context, doctorID uuid.UUID) ([]dto.AvailabilityRuleResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByID(db, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	rules, err := u.ruleRepo.FindByDoctor(db, doctorID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.AvailabilityRuleResponse, 0, len(rules))
	for i := range rules {
		responses = append(responses, *converter.RuleToResponse(&rules[i]))
	}
	return responses, nil
}

func (u *doctorUsecase) AddTimeOff(ctx context.Context, doctorID uuid.UUID, req *dto.CreateTimeOffRequest) (*dto.TimeOffResponse, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if startDate.After(endDate) {
		return nil, ErrInvalidTimeOffRange
	}

	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByID(db, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	interval := &entity.TimeOffInterval{
		DoctorID:  doctorID,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    req.Reason,
	}
	if err := u.timeOffRepo.Create(db, interval); err != nil {
		u.log.Errorf("Failed to create time off for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	u.log.Infof("Time off added: doctor=%s, range=%s..%s", doctorID, req.StartDate, req.EndDate)

	return converter.TimeOffToResponse(interval), nil
}

func (u *doctorUsecase) ListTimeOff(ctx context.Context, doctorID uuid.UUID) (*dto.TimeOffListResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByID(db, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	intervals, err := u.timeOffRepo.FindByDoctor(db, doctorID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TimeOffResponse, 0, len(intervals))
	for i := range intervals {
		responses = append(responses, *converter.TimeOffToResponse(&intervals[i]))
	}
	return &dto.TimeOffListResponse{Intervals: responses, Total: len(responses)}, nil
}

// validRuleWindow checks start < end and, when a break is set, that both ends
// are present and the break sits inside the working window. Times are HH:MM
// strings, so lexicographic comparison matches chronological order.
func validRuleWindow(req *dto.UpsertAvailabilityRuleRequest) bool {
	if req.StartTime >= req.EndTime {
		return false
	}
	if (req.BreakStart == nil) != (req.BreakEnd == nil) {
		return false
	}
	if req.BreakStart != nil {
		if *req.BreakStart >= *req.BreakEnd {
			return false
		}
		if *req.BreakStart < req.StartTime || *req.BreakEnd > req.EndTime {
			return false
		}
	}
	return true
}
