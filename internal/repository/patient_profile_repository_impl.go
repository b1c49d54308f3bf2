package repository

import (
	"errors"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientProfileRepository struct{}

func NewPatientProfileRepository() domainRepo.PatientProfileRepository {
	return &patientProfileRepository{}
}

func (r *patientProfileRepository) Create(db *gorm.DB, profile *entity.PatientProfile) error {
	return db.Create(profile).Error
}

func (r *patientProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error) {
	var profile entity.PatientProfile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *patientProfileRepository) FindAll(db *gorm.DB) ([]entity.PatientProfile, error) {
	var profiles []entity.PatientProfile
	err := db.Preload("User").Order("full_name ASC").Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
