package usecase

import (
	"context"
	"errors"

	"hospital-management-api/internal/converter"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrDoctorProfileNotFound = errors.New("doctor profile not found")

type DoctorTreatmentUsecase interface {
	UpdateTreatment(ctx context.Context, actor entity.Actor, appointmentID uuid.UUID, req *dto.UpdateTreatmentRequest) (*dto.AppointmentResponse, error)
	SetAvailability(ctx context.Context, actor entity.Actor, req *dto.SetAvailabilityRequest) (*dto.DoctorResponse, error)
	Dashboard(ctx context.Context, actor entity.Actor) (*dto.DoctorDashboardResponse, error)
}

type doctorTreatmentUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	doctorProfileRepo repository.DoctorProfileRepository
	appointmentRepo   repository.AppointmentRepository
}

func NewDoctorTreatmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorProfileRepo repository.DoctorProfileRepository,
	appointmentRepo repository.AppointmentRepository,
) DoctorTreatmentUsecase {
	return &doctorTreatmentUsecase{
		db:                db,
		log:               log,
		doctorProfileRepo: doctorProfileRepo,
		appointmentRepo:   appointmentRepo,
	}
}

// UpdateTreatment records diagnosis and prescription on an appointment
// assigned to the acting doctor and marks it Completed. Completed is
// terminal.
func (u *doctorTreatmentUsecase) UpdateTreatment(ctx context.Context, actor entity.Actor, appointmentID uuid.UUID, req *dto.UpdateTreatmentRequest) (*dto.AppointmentResponse, error) {
	if err := requireRole(actor, entity.RoleDoctor); err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)

	doctorProfile, err := u.doctorProfileRepo.FindByUserID(db, actor.UserID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile for user %s: %+v", actor.UserID, err)
		return nil, err
	}
	if doctorProfile == nil {
		return nil, ErrDoctorProfileNotFound
	}

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.DoctorProfileID != doctorProfile.ID {
		return nil, ErrAppointmentNotOwned
	}

	appointment.Complete(req.Diagnosis, req.Prescription)
	if err := u.appointmentRepo.Update(db, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	u.log.Infof("Treatment recorded: appointment=%s", appointmentID)
	return converter.AppointmentToResponse(appointment), nil
}

// SetAvailability toggles the acting doctor's own availability flag.
func (u *doctorTreatmentUsecase) SetAvailability(ctx context.Context, actor entity.Actor, req *dto.SetAvailabilityRequest) (*dto.DoctorResponse, error) {
	if err := requireRole(actor, entity.RoleDoctor); err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)

	doctorProfile, err := u.doctorProfileRepo.FindByUserID(db, actor.UserID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile for user %s: %+v", actor.UserID, err)
		return nil, err
	}
	if doctorProfile == nil {
		return nil, ErrDoctorProfileNotFound
	}

	doctorProfile.IsAvailable = *req.IsAvailable
	if err := u.doctorProfileRepo.Update(db, doctorProfile); err != nil {
		u.log.Warnf("Failed to update doctor profile %s: %+v", doctorProfile.ID, err)
		return nil, err
	}

	return converter.DoctorProfileToResponse(doctorProfile), nil
}

// Dashboard lists the acting doctor's own appointments.
func (u *doctorTreatmentUsecase) Dashboard(ctx context.Context, actor entity.Actor) (*dto.DoctorDashboardResponse, error) {
	if err := requireRole(actor, entity.RoleDoctor); err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)

	doctorProfile, err := u.doctorProfileRepo.FindByUserID(db, actor.UserID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile for user %s: %+v", actor.UserID, err)
		return nil, err
	}
	if doctorProfile == nil {
		return nil, ErrDoctorProfileNotFound
	}

	appointments, err := u.appointmentRepo.FindByDoctorProfileID(db, doctorProfile.ID)
	if err != nil {
		u.log.Warnf("Failed to list appointments for doctor %s: %+v", doctorProfile.ID, err)
		return nil, err
	}

	return &dto.DoctorDashboardResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
	}, nil
}
