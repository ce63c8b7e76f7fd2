package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
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
	ErrDoctorNotFound  = errors.New("doctor not found")
	ErrPatientNotFound = errors.New("patient not found")
	ErrInvalidDate     = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTime     = errors.New("invalid time format, use HH:MM")
)

// Rejection reasons returned by the evaluator. These are data, not errors:
// an unavailable slot is an expected outcome, and callers surface the reason
// string to the client verbatim.
const (
	ReasonDayUnavailable = "Doctor is not available on this day"
	ReasonOutsideHours   = "Requested time is outside doctor's working hours or during break"
	ReasonTimeOff        = "Doctor is on time off during this period"
	ReasonNoSlots        = "No available slots at this time"
)

// Evaluation is the evaluator's verdict for one (doctor, date, time) slot.
// Rule carries the matched weekly rule when one was found.
type Evaluation struct {
	Available bool
	Reason    string
	Rule      *entity.AvailabilityRule
}

type AvailabilityUsecase interface {
	CheckAvailability(ctx context.Context, req *dto.CheckAvailabilityRequest) (*dto.AvailabilityResponse, error)
	GetDaySlots(ctx context.Context, doctorID uuid.UUID, date string) (*dto.DaySlotsResponse, error)

	// EvaluateSlot runs the availability decision on the given handle, which may
	// be a transaction. excludeID leaves one appointment out of the capacity
	// count so a reschedule does not conflict with itself.
	EvaluateSlot(db *gorm.DB, doctorID uuid.UUID, date time.Time, timeOfDay string, excludeID *uuid.UUID) (*Evaluation, error)

	// EvaluateSlotForUpdate is EvaluateSlot with the doctor's rule row locked
	// for the rest of the surrounding transaction, serializing concurrent
	// bookings against the same doctor-day.
	EvaluateSlotForUpdate(db *gorm.DB, doctorID uuid.UUID, date time.Time, timeOfDay string, excludeID *uuid.UUID) (*Evaluation, error)
}

type availabilityUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	ruleRepo        repository.AvailabilityRuleRepository
	timeOffRepo     repository.TimeOffRepository
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	ruleRepo repository.AvailabilityRuleRepository,
	timeOffRepo repository.TimeOffRepository,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:              db,
		log:             log,
		ruleRepo:        ruleRepo,
		timeOffRepo:     timeOffRepo,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
	}
}

func (u *availabilityUsecase) CheckAvailability(ctx context.Context, req *dto.CheckAvailabilityRequest) (*dto.AvailabilityResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	timeOfDay, err := canonicalTime(req.Time)
	if err != nil {
		return nil, ErrInvalidTime
	}

	eval, err := u.EvaluateSlot(u.db.WithContext(ctx), req.DoctorID, date, timeOfDay, nil)
	if err != nil {
		u.log.Warnf("Failed to evaluate slot for doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}

	if !eval.Available {
		return &dto.AvailabilityResponse{Available: false, Reason: eval.Reason}, nil
	}
	return &dto.AvailabilityResponse{
		Available:    true,
		Availability: converter.RuleToWindow(eval.Rule),
	}, nil
}

func (u *availabilityUsecase) GetDaySlots(ctx context.Context, doctorID uuid.UUID, dateStr string) (*dto.DaySlotsResponse, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, ErrInvalidDate
	}

	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	response := &dto.DaySlotsResponse{
		DoctorID: doctorID,
		Date:     dateStr,
		Slots:    []dto.SlotResponse{},
	}

	rule, err := u.ruleRepo.FindByDoctorAndDay(db, doctorID, int(date.Weekday()))
	if err != nil {
		return nil, err
	}
	if rule == nil || !rule.Available() {
		return response, nil
	}

	timeOff, err := u.timeOffRepo.FindActive(db, doctorID, date)
	if err != nil {
		return nil, err
	}
	if timeOff != nil {
		return response, nil
	}

	appointments, err := u.appointmentRepo.FindByDoctorAndDate(db, doctorID, date)
	if err != nil {
		return nil, err
	}

	response.Slots = buildDaySlots(rule, appointments)
	return response, nil
}

func (u *availabilityUsecase) EvaluateSlot(db *gorm.DB, doctorID uuid.UUID, date time.Time, timeOfDay string, excludeID *uuid.UUID) (*Evaluation, error) {
	return u.evaluate(db, doctorID, date, timeOfDay, excludeID, false)
}

func (u *availabilityUsecase) EvaluateSlotForUpdate(db *gorm.DB, doctorID uuid.UUID, date time.Time, timeOfDay string, excludeID *uuid.UUID) (*Evaluation, error) {
	return u.evaluate(db, doctorID, date, timeOfDay, excludeID, true)
}

// evaluate applies the availability checks in strict order; the first failing
// check wins and later checks are skipped.
func (u *availabilityUsecase) evaluate(db *gorm.DB, doctorID uuid.UUID, date time.Time, timeOfDay string, excludeID *uuid.UUID, forUpdate bool) (*Evaluation, error) {
	dayOfWeek := int(date.Weekday())

	var rule *entity.AvailabilityRule
	var err error
	if forUpdate {
		rule, err = u.ruleRepo.FindByDoctorAndDayForUpdate(db, doctorID, dayOfWeek)
	} else {
		rule, err = u.ruleRepo.FindByDoctorAndDay(db, doctorID, dayOfWeek)
	}
	if err != nil {
		return nil, err
	}
	if rule == nil || !rule.Available() {
		return &Evaluation{Reason: ReasonDayUnavailable}, nil
	}

	if !withinWorkingHours(rule, timeOfDay) || inBreak(rule, timeOfDay) {
		return &Evaluation{Reason: ReasonOutsideHours, Rule: rule}, nil
	}

	timeOff, err := u.timeOffRepo.FindActive(db, doctorID, date)
	if err != nil {
		return nil, err
	}
	if timeOff != nil {
		return &Evaluation{Reason: ReasonTimeOff, Rule: rule}, nil
	}

	count, err := u.appointmentRepo.CountAtSlot(db, doctorID, date, timeOfDay, excludeID)
	if err != nil {
		return nil, err
	}
	if count >= int64(rule.MaxAppointments) {
		return &Evaluation{Reason: ReasonNoSlots, Rule: rule}, nil
	}

	return &Evaluation{Available: true, Rule: rule}, nil
}

// canonicalTime parses an HH:MM string and returns it zero-padded. time.Parse
// accepts a single-digit hour, so "9:00" must not be stored or counted
// verbatim or it would form a different slot key than "09:00".
func canonicalTime(timeOfDay string) (string, error) {
	t, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		return "", err
	}
	return t.Format("15:04"), nil
}

// hourOf extracts the hour component of an HH:MM string. Malformed input maps
// to -1, which fails every window check.
func hourOf(timeOfDay string) int {
	h, err := strconv.Atoi(strings.SplitN(timeOfDay, ":", 2)[0])
	if err != nil {
		return -1
	}
	return h
}

// withinWorkingHours checks the requested time against the rule's working
// hours. Only the hour component is compared at the boundaries: an end time of
// 17:00 rejects both 17:00 and 17:45 identically, and an end time of 17:30
// still uses hour 17 as the cutoff, admitting 17:00 and 17:15. Known
// limitation kept for compatibility with existing schedules; a fix would
// compare full times.
func withinWorkingHours(rule *entity.AvailabilityRule, timeOfDay string) bool {
	hour := hourOf(timeOfDay)
	return hour >= hourOf(rule.StartTime) && hour < hourOf(rule.EndTime)
}

// inBreak checks whether the requested hour falls inside the rule's break
// window, with the same hour-only comparison as withinWorkingHours.
func inBreak(rule *entity.AvailabilityRule, timeOfDay string) bool {
	if !rule.HasBreak() {
		return false
	}
	hour := hourOf(timeOfDay)
	return hour >= hourOf(*rule.BreakStart) && hour < hourOf(*rule.BreakEnd)
}

// buildDaySlots walks the half-hour grid of a working day and marks each slot
// against the day's booked appointments. Break hours are skipped entirely.
// Per-slot semantics match evaluate: a slot is unavailable once the count of
// non-cancelled appointments at its exact time reaches the rule's capacity.
func buildDaySlots(rule *entity.AvailabilityRule, appointments []entity.Appointment) []dto.SlotResponse {
	booked := make(map[string]int)
	for _, a := range appointments {
		if a.Status != entity.AppointmentStatusCancelled {
			booked[a.AppointmentTime]++
		}
	}

	var slots []dto.SlotResponse
	for hour := hourOf(rule.StartTime); hour < hourOf(rule.EndTime); hour++ {
		if rule.HasBreak() && hour >= hourOf(*rule.BreakStart) && hour < hourOf(*rule.BreakEnd) {
			continue
		}
		for _, minutes := range []string{"00", "30"} {
			slot := fmt.Sprintf("%02d:%s", hour, minutes)
			if booked[slot] < rule.MaxAppointments {
				slots = append(slots, dto.SlotResponse{Time: slot, Available: true})
			} else {
				slots = append(slots, dto.SlotResponse{Time: slot, Available: false, Reason: ReasonNoSlots})
			}
		}
	}
	return slots
}
