package repository

import (
	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByUsername(db *gorm.DB, username string) (*entity.User, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	CountByRole(db *gorm.DB, role string) (int64, error)
}
