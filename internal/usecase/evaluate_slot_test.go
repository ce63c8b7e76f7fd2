package usecase

import (
	"io"
	"testing"
	"time"

	"dental-office-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type stubRuleRepo struct {
	rule      *entity.AvailabilityRule
	lockCalls int
}

func (s *stubRuleRepo) Upsert(db *gorm.DB, rule *entity.AvailabilityRule) error { return nil }

func (s *stubRuleRepo) FindByDoctorAndDay(db *gorm.DB, doctorID uuid.UUID, dayOfWeek int) (*entity.AvailabilityRule, error) {
	return s.rule, nil
}

func (s *stubRuleRepo) FindByDoctorAndDayForUpdate(db *gorm.DB, doctorID uuid.UUID, dayOfWeek int) (*entity.AvailabilityRule, error) {
	s.lockCalls++
	return s.rule, nil
}

func (s *stubRuleRepo) FindByDoctor(db *gorm.DB, doctorID uuid.UUID) ([]entity.AvailabilityRule, error) {
	return nil, nil
}

type stubTimeOffRepo struct {
	active    *entity.TimeOffInterval
	consulted bool
}

func (s *stubTimeOffRepo) Create(db *gorm.DB, interval *entity.TimeOffInterval) error { return nil }

func (s *stubTimeOffRepo) FindActive(db *gorm.DB, doctorID uuid.UUID, date time.Time) (*entity.TimeOffInterval, error) {
	s.consulted = true
	return s.active, nil
}

func (s *stubTimeOffRepo) FindByDoctor(db *gorm.DB, doctorID uuid.UUID) ([]entity.TimeOffInterval, error) {
	return nil, nil
}

type stubAppointmentCounter struct {
	count         int64
	countCalls    int
	lastTime      string
	lastExcludeID *uuid.UUID
}

func (s *stubAppointmentCounter) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return nil
}

func (s *stubAppointmentCounter) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentCounter) CountAtSlot(db *gorm.DB, doctorID uuid.UUID, date time.Time, timeOfDay string, excludeID *uuid.UUID) (int64, error) {
	s.countCalls++
	s.lastTime = timeOfDay
	s.lastExcludeID = excludeID
	return s.count, nil
}

func (s *stubAppointmentCounter) FindByDoctorAndDate(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]entity.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentCounter) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentCounter) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return nil
}

type stubDoctorRepo struct{}

func (s *stubDoctorRepo) Create(db *gorm.DB, doctor *entity.Doctor) error { return nil }

func (s *stubDoctorRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	return nil, nil
}

func (s *stubDoctorRepo) FindAllActive(db *gorm.DB) ([]entity.Doctor, error) { return nil, nil }

func newEvaluator(rules *stubRuleRepo, timeOff *stubTimeOffRepo, appointments *stubAppointmentCounter) AvailabilityUsecase {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewAvailabilityUsecase(nil, log, rules, timeOff, appointments, &stubDoctorRepo{})
}

func boolPtr(b bool) *bool { return &b }

// 2026-09-07 is a Monday.
var evalDate = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func TestEvaluateSlotNoRule(t *testing.T) {
	timeOff := &stubTimeOffRepo{}
	appointments := &stubAppointmentCounter{}
	u := newEvaluator(&stubRuleRepo{rule: nil}, timeOff, appointments)

	eval, err := u.EvaluateSlot(nil, uuid.New(), evalDate, "10:00", nil)
	if err != nil {
		t.Fatalf("EvaluateSlot: %v", err)
	}
	if eval.Available {
		t.Error("slot available without a weekly rule")
	}
	if eval.Reason != ReasonDayUnavailable {
		t.Errorf("reason = %q, want %q", eval.Reason, ReasonDayUnavailable)
	}
	if timeOff.consulted {
		t.Error("time off consulted before the rule check decided")
	}
	if appointments.countCalls != 0 {
		t.Error("capacity counted before the rule check decided")
	}
}

func TestEvaluateSlotDayMarkedUnavailable(t *testing.T) {
	r := rule("09:00", "17:00", nil, nil, 8)
	r.IsAvailable = boolPtr(false)
	u := newEvaluator(&stubRuleRepo{rule: r}, &stubTimeOffRepo{}, &stubAppointmentCounter{})

	eval, err := u.EvaluateSlot(nil, uuid.New(), evalDate, "10:00", nil)
	if err != nil {
		t.Fatalf("EvaluateSlot: %v", err)
	}
	if eval.Available || eval.Reason != ReasonDayUnavailable {
		t.Errorf("got (%v, %q), want unavailable with %q", eval.Available, eval.Reason, ReasonDayUnavailable)
	}
}

func TestEvaluateSlotOutsideHours(t *testing.T) {
	timeOff := &stubTimeOffRepo{}
	appointments := &stubAppointmentCounter{}
	u := newEvaluator(&stubRuleRepo{rule: rule("09:00", "17:00", nil, nil, 8)}, timeOff, appointments)

	eval, err := u.EvaluateSlot(nil, uuid.New(), evalDate, "18:00", nil)
	if err != nil {
		t.Fatalf("EvaluateSlot: %v", err)
	}
	if eval.Available || eval.Reason != ReasonOutsideHours {
		t.Errorf("got (%v, %q), want unavailable with %q", eval.Available, eval.Reason, ReasonOutsideHours)
	}
	if timeOff.consulted {
		t.Error("time off consulted for a time outside working hours")
	}
	if appointments.countCalls != 0 {
		t.Error("capacity counted for a time outside working hours")
	}
}

func TestEvaluateSlotDuringBreak(t *testing.T) {
	r := rule("09:00", "17:00", strPtr("12:00"), strPtr("13:00"), 8)
	u := newEvaluator(&stubRuleRepo{rule: r}, &stubTimeOffRepo{}, &stubAppointmentCounter{})

	eval, err := u.EvaluateSlot(nil, uuid.New(), evalDate, "12:30", nil)
	if err != nil {
		t.Fatalf("EvaluateSlot: %v", err)
	}
	if eval.Available || eval.Reason != ReasonOutsideHours {
		t.Errorf("got (%v, %q), want unavailable with %q", eval.Available, eval.Reason, ReasonOutsideHours)
	}
}

func TestEvaluateSlotTimeOff(t *testing.T) {
	appointments := &stubAppointmentCounter{}
	timeOff := &stubTimeOffRepo{active: &entity.TimeOffInterval{Reason: "Conference"}}
	u := newEvaluator(&stubRuleRepo{rule: rule("09:00", "17:00", nil, nil, 8)}, timeOff, appointments)

	eval, err := u.EvaluateSlot(nil, uuid.New(), evalDate, "10:00", nil)
	if err != nil {
		t.Fatalf("EvaluateSlot: %v", err)
	}
	if eval.Available || eval.Reason != ReasonTimeOff {
		t.Errorf("got (%v, %q), want unavailable with %q", eval.Available, eval.Reason, ReasonTimeOff)
	}
	if appointments.countCalls != 0 {
		t.Error("capacity counted for a doctor on time off")
	}
}

func TestEvaluateSlotAtCapacity(t *testing.T) {
	appointments := &stubAppointmentCounter{count: 2}
	u := newEvaluator(&stubRuleRepo{rule: rule("09:00", "17:00", nil, nil, 2)}, &stubTimeOffRepo{}, appointments)

	eval, err := u.EvaluateSlot(nil, uuid.New(), evalDate, "10:00", nil)
	if err != nil {
		t.Fatalf("EvaluateSlot: %v", err)
	}
	if eval.Available || eval.Reason != ReasonNoSlots {
		t.Errorf("got (%v, %q), want unavailable with %q", eval.Available, eval.Reason, ReasonNoSlots)
	}
}

func TestEvaluateSlotOpen(t *testing.T) {
	r := rule("09:00", "17:00", strPtr("12:00"), strPtr("13:00"), 8)
	appointments := &stubAppointmentCounter{count: 3}
	u := newEvaluator(&stubRuleRepo{rule: r}, &stubTimeOffRepo{}, appointments)

	eval, err := u.EvaluateSlot(nil, uuid.New(), evalDate, "10:00", nil)
	if err != nil {
		t.Fatalf("EvaluateSlot: %v", err)
	}
	if !eval.Available {
		t.Fatalf("slot unavailable: %q", eval.Reason)
	}
	if eval.Rule != r {
		t.Error("verdict does not carry the matched rule")
	}
	if appointments.lastTime != "10:00" {
		t.Errorf("capacity counted at %q, want %q", appointments.lastTime, "10:00")
	}
}

func TestEvaluateSlotExcludesAppointment(t *testing.T) {
	appointments := &stubAppointmentCounter{}
	u := newEvaluator(&stubRuleRepo{rule: rule("09:00", "17:00", nil, nil, 1)}, &stubTimeOffRepo{}, appointments)

	excludeID := uuid.New()
	if _, err := u.EvaluateSlot(nil, uuid.New(), evalDate, "10:00", &excludeID); err != nil {
		t.Fatalf("EvaluateSlot: %v", err)
	}
	if appointments.lastExcludeID == nil || *appointments.lastExcludeID != excludeID {
		t.Errorf("excludeID %v not passed through to the capacity count", excludeID)
	}

	if _, err := u.EvaluateSlot(nil, uuid.New(), evalDate, "10:00", nil); err != nil {
		t.Fatalf("EvaluateSlot: %v", err)
	}
	if appointments.lastExcludeID != nil {
		t.Error("nil excludeID not passed through to the capacity count")
	}
}

func TestEvaluateSlotForUpdateLocksRule(t *testing.T) {
	rules := &stubRuleRepo{rule: rule("09:00", "17:00", nil, nil, 8)}
	u := newEvaluator(rules, &stubTimeOffRepo{}, &stubAppointmentCounter{})

	if _, err := u.EvaluateSlot(nil, uuid.New(), evalDate, "10:00", nil); err != nil {
		t.Fatalf("EvaluateSlot: %v", err)
	}
	if rules.lockCalls != 0 {
		t.Error("plain evaluation locked the rule row")
	}

	if _, err := u.EvaluateSlotForUpdate(nil, uuid.New(), evalDate, "10:00", nil); err != nil {
		t.Fatalf("EvaluateSlotForUpdate: %v", err)
	}
	if rules.lockCalls != 1 {
		t.Errorf("lock acquired %d times, want 1", rules.lockCalls)
	}
}

func TestEvaluateSlotRepeatable(t *testing.T) {
	// Evaluation has no side effects on its inputs, so re-checking the same
	// slot yields the same verdict.
	u := newEvaluator(&stubRuleRepo{rule: rule("09:00", "17:00", nil, nil, 2)}, &stubTimeOffRepo{}, &stubAppointmentCounter{count: 1})

	doctorID := uuid.New()
	first, err := u.EvaluateSlot(nil, doctorID, evalDate, "10:00", nil)
	if err != nil {
		t.Fatalf("EvaluateSlot: %v", err)
	}
	second, err := u.EvaluateSlot(nil, doctorID, evalDate, "10:00", nil)
	if err != nil {
		t.Fatalf("EvaluateSlot: %v", err)
	}
	if first.Available != second.Available || first.Reason != second.Reason {
		t.Errorf("verdict changed on re-check: (%v, %q) then (%v, %q)",
			first.Available, first.Reason, second.Available, second.Reason)
	}
}
