package repository

import (
	"errors"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorProfileRepository struct{}

func NewDoctorProfileRepository() domainRepo.DoctorProfileRepository {
	return &doctorProfileRepository{}
}

func (r *doctorProfileRepository) Create(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Create(profile).Error
}

func (r *doctorProfileRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := db.Preload("User").Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *doctorProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *doctorProfileRepository) FindAll(db *gorm.DB) ([]entity.DoctorProfile, error) {
	var profiles []entity.DoctorProfile
	err := db.Preload("User").Order("full_name ASC").Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *doctorProfileRepository) Update(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Save(profile).Error
}
