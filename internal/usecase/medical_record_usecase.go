package usecase

import (
	"context"
	"time"

	"dental-office-backend/internal/converter"
	"dental-office-backend/internal/delivery/dto"
	"dental-office-backend/internal/domain/entity"
	"dental-office-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type MedicalRecordUsecase interface {
	Create(ctx context.Context, patientID uuid.UUID, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) (*dto.MedicalRecordListResponse, error)
}

type medicalRecordUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	recordRepo  repository.MedicalRecordRepository
	patientRepo repository.PatientRepository
	doctorRepo  repository.DoctorRepository
}

func NewMedicalRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	recordRepo repository.MedicalRecordRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		db:          db,
		log:         log,
		recordRepo:  recordRepo,
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
	}
}

func (u *medicalRecordUsecase) Create(ctx context.Context, patientID uuid.UUID, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	procedureDate, err := time.Parse("2006-01-02", req.ProcedureDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctor, err := u.doctorRepo.FindByID(db, req.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	record := &entity.MedicalRecord{
		PatientID:     patientID,
		DoctorID:      req.DoctorID,
		ProcedureType: req.ProcedureType,
		ProcedureDate: procedureDate,
		Diagnosis:     req.Diagnosis,
		Treatment:     req.Treatment,
		Notes:         req.Notes,
	}
	if err := u.recordRepo.Create(db, record); err != nil {
		u.log.Errorf("Failed to create medical record for patient %s: %+v", patientID, err)
		return nil, err
	}

	u.log.Infof("Medical record created: patient=%s, doctor=%s, procedure=%s",
		patientID, req.DoctorID, req.ProcedureType)

	record.Doctor = *doctor
	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) ListByPatient(ctx context.Context, patientID uuid.UUID) (*dto.MedicalRecordListResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	records, err := u.recordRepo.FindByPatientID(db, patientID)
	if err != nil {
		return nil, err
	}

	responses := converter.MedicalRecordsToResponses(records)
	return &dto.MedicalRecordListResponse{Records: responses, Total: len(responses)}, nil
}
