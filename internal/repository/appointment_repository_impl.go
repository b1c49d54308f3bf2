package repository

import (
	"errors"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Doctor").Preload("Patient").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindBySlot(db *gorm.DB, doctorProfileID uuid.UUID, date, time string) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("doctor_profile_id = ? AND date = ? AND time = ?", doctorProfileID, date, time).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByPatientProfileID(db *gorm.DB, patientProfileID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Doctor").
		Where("patient_profile_id = ?", patientProfileID).
		Order("date ASC, time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctorProfileID(db *gorm.DB, doctorProfileID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Patient").
		Where("doctor_profile_id = ?", doctorProfileID).
		Order("date ASC, time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Doctor").Preload("Patient").
		Order("date ASC, time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Save(appointment).Error
}
