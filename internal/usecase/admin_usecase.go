package usecase

import (
	"context"

	"hospital-management-api/internal/converter"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AdminUsecase interface {
	CreateDoctor(ctx context.Context, actor entity.Actor, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	Dashboard(ctx context.Context, actor entity.Actor) (*dto.AdminDashboardResponse, error)
}

type adminUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	userRepo           repository.UserRepository
	doctorProfileRepo  repository.DoctorProfileRepository
	patientProfileRepo repository.PatientProfileRepository
	appointmentRepo    repository.AppointmentRepository
}

func NewAdminUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	patientProfileRepo repository.PatientProfileRepository,
	appointmentRepo repository.AppointmentRepository,
) AdminUsecase {
	return &adminUsecase{
		db:                 db,
		log:                log,
		userRepo:           userRepo,
		doctorProfileRepo:  doctorProfileRepo,
		patientProfileRepo: patientProfileRepo,
		appointmentRepo:    appointmentRepo,
	}
}

// CreateDoctor provisions a doctor account plus its profile in one
// transaction. A duplicate username is always an explicit error, never a
// silent skip.
func (u *adminUsecase) CreateDoctor(ctx context.Context, actor entity.Actor, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	if err := requireRole(actor, entity.RoleAdmin); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user := &entity.User{
		Username: req.Username,
		Password: string(hashedPassword),
		Role:     entity.RoleDoctor,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "username") {
			return nil, ErrUsernameAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	doctorProfile := &entity.DoctorProfile{
		UserID:          user.ID,
		FullName:        req.FullName,
		Specialization:  req.Specialization,
		ConsultationFee: req.ConsultationFee,
		IsAvailable:     true,
	}

	if err := u.doctorProfileRepo.Create(tx, doctorProfile); err != nil {
		u.log.Warnf("Failed to create doctor profile: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	doctorProfile.User = *user
	u.log.Infof("Doctor account created: username=%s, specialization=%s", user.Username, req.Specialization)
	return converter.DoctorProfileToResponse(doctorProfile), nil
}

// Dashboard lists all doctors, all patients and all appointments.
func (u *adminUsecase) Dashboard(ctx context.Context, actor entity.Actor) (*dto.AdminDashboardResponse, error) {
	if err := requireRole(actor, entity.RoleAdmin); err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)

	doctors, err := u.doctorProfileRepo.FindAll(db)
	if err != nil {
		u.log.Warnf("Failed to list doctor profiles: %+v", err)
		return nil, err
	}

	patients, err := u.patientProfileRepo.FindAll(db)
	if err != nil {
		u.log.Warnf("Failed to list patient profiles: %+v", err)
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindAll(db)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AdminDashboardResponse{
		Doctors:      converter.DoctorProfilesToResponses(doctors),
		Patients:     converter.PatientProfilesToResponses(patients),
		Appointments: converter.AppointmentsToResponses(appointments),
	}, nil
}
