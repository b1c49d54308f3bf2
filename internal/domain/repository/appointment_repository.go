package repository

import (
	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	// FindBySlot matches the exact (doctor, date, time) tuple regardless of
	// appointment status.
	FindBySlot(db *gorm.DB, doctorProfileID uuid.UUID, date, time string) (*entity.Appointment, error)
	FindByPatientProfileID(db *gorm.DB, patientProfileID uuid.UUID) ([]entity.Appointment, error)
	FindByDoctorProfileID(db *gorm.DB, doctorProfileID uuid.UUID) ([]entity.Appointment, error)
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
}
