package main

import (
	"fmt"
	"time"

	"dental-office-backend/config"
	"dental-office-backend/internal/domain/entity"
	"dental-office-backend/internal/infrastructure/database"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seeds the database with the clinic roster, weekly availability rules and a
// handful of fake patients. Safe to run repeatedly: roster rows are upserted
// by email and fake patients are only added up to the target count.
func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := migrate(db); err != nil {
		logrus.Fatalf("Failed to migrate schema: %v", err)
	}

	if err := seedRoles(db); err != nil {
		logrus.Fatalf("Failed to seed roles: %v", err)
	}
	if err := seedDoctors(db); err != nil {
		logrus.Fatalf("Failed to seed doctors: %v", err)
	}
	if err := seedPatients(db, 20); err != nil {
		logrus.Fatalf("Failed to seed patients: %v", err)
	}

	logrus.Info("Seeding complete")
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Role{},
		&entity.User{},
		&entity.Doctor{},
		&entity.Patient{},
		&entity.AvailabilityRule{},
		&entity.TimeOffInterval{},
		&entity.Appointment{},
		&entity.BillingRecord{},
		&entity.MedicalRecord{},
	)
}

func seedRoles(db *gorm.DB) error {
	roles := []entity.Role{
		{ID: entity.RoleIDAdmin, RoleName: entity.RoleAdmin, Description: "Clinic administrator"},
		{ID: entity.RoleIDDoctor, RoleName: entity.RoleDoctor, Description: "Practitioner"},
		{ID: entity.RoleIDPatient, RoleName: entity.RolePatient, Description: "Registered patient"},
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&roles).Error
}

func seedDoctors(db *gorm.DB) error {
	type rosterEntry struct {
		name      string
		specialty string
	}
	roster := []rosterEntry{
		{"Dr. Sarah Johnson", "General Dentistry"},
		{"Dr. Michael Chen", "Orthodontics"},
		{"Dr. Emily Rodriguez", "Periodontics"},
		{"Dr. James Wilson", "Oral Surgery"},
		{"Dr. Lisa Thompson", "Pediatric Dentistry"},
	}

	breakStart, breakEnd := "12:00", "13:00"
	available := true

	for i, entry := range roster {
		doctor := entity.Doctor{
			Name:        entry.name,
			Specialty:   entry.specialty,
			Email:       fmt.Sprintf("doctor%d@dentaloffice.example", i+1),
			Phone:       gofakeit.Phone(),
			OfficeHours: "Mon-Fri 9:00-17:00",
			Status:      entity.DoctorStatusActive,
		}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "specialty", "office_hours"}),
		}).Create(&doctor).Error
		if err != nil {
			return err
		}

		// Monday through Friday, 9 to 5 with a lunch break
		for day := 1; day <= 5; day++ {
			rule := entity.AvailabilityRule{
				DoctorID:        doctor.ID,
				DayOfWeek:       day,
				StartTime:       "09:00",
				EndTime:         "17:00",
				BreakStart:      &breakStart,
				BreakEnd:        &breakEnd,
				IsAvailable:     &available,
				MaxAppointments: 8,
			}
			err := db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "doctor_id"}, {Name: "day_of_week"}},
				DoUpdates: clause.AssignmentColumns([]string{"start_time", "end_time", "break_start", "break_end", "is_available", "max_appointments"}),
			}).Create(&rule).Error
			if err != nil {
				return err
			}
		}

		if err := seedUser(db, doctor.Email, doctor.Name, entity.RoleIDDoctor, &doctor.ID, nil); err != nil {
			return err
		}

		logrus.Infof("Seeded doctor %s (%s)", doctor.Name, doctor.Specialty)
	}

	return nil
}

func seedPatients(db *gorm.DB, target int64) error {
	var count int64
	if err := db.Model(&entity.Patient{}).Count(&count).Error; err != nil {
		return err
	}

	for ; count < target; count++ {
		person := gofakeit.Person()
		patient := entity.Patient{
			Name:              person.FirstName + " " + person.LastName,
			Email:             gofakeit.Email(),
			Phone:             gofakeit.Phone(),
			DateOfBirth:       gofakeit.DateRange(dateOfBirthRange()),
			Address:           gofakeit.Address().Address,
			InsuranceProvider: gofakeit.Company(),
			InsuranceID:       gofakeit.LetterN(3) + gofakeit.DigitN(6),
			Status:            entity.PatientStatusActive,
		}
		if err := db.Create(&patient).Error; err != nil {
			return err
		}
		if err := seedUser(db, patient.Email, patient.Name, entity.RoleIDPatient, nil, &patient.ID); err != nil {
			return err
		}
	}

	logrus.Infof("Patient count is %d", count)
	return nil
}

func seedUser(db *gorm.DB, email, fullName string, roleID int, doctorID, patientID *uuid.UUID) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := entity.User{
		RoleID:    roleID,
		Email:     email,
		Password:  string(hashed),
		FullName:  fullName,
		DoctorID:  doctorID,
		PatientID: patientID,
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&user).Error
}

func dateOfBirthRange() (time.Time, time.Time) {
	now := time.Now().UTC()
	return now.AddDate(-80, 0, 0), now.AddDate(-18, 0, 0)
}
