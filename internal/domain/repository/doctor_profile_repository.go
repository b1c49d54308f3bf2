package repository

import (
	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorProfileRepository interface {
	Create(db *gorm.DB, profile *entity.DoctorProfile) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.DoctorProfile, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error)
	FindAll(db *gorm.DB) ([]entity.DoctorProfile, error)
	Update(db *gorm.DB, profile *entity.DoctorProfile) error
}
