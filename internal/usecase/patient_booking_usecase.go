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

var (
	ErrDoctorNotFound            = errors.New("doctor not found")
	ErrPatientProfileNotFound    = errors.New("patient profile not found")
	ErrSlotTaken                 = errors.New("doctor is already booked for this slot")
	ErrAppointmentNotFound       = errors.New("appointment not found")
	ErrAppointmentNotOwned       = errors.New("appointment does not belong to you")
	ErrAppointmentNotCancellable = errors.New("appointment can no longer be cancelled")
)

type PatientBookingUsecase interface {
	BookAppointment(ctx context.Context, actor entity.Actor, doctorProfileID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, actor entity.Actor, appointmentID uuid.UUID) error
	Dashboard(ctx context.Context, actor entity.Actor) (*dto.PatientDashboardResponse, error)
}

type patientBookingUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	patientProfileRepo repository.PatientProfileRepository
	doctorProfileRepo  repository.DoctorProfileRepository
	appointmentRepo    repository.AppointmentRepository
}

func NewPatientBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientProfileRepo repository.PatientProfileRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	appointmentRepo repository.AppointmentRepository,
) PatientBookingUsecase {
	return &patientBookingUsecase{
		db:                 db,
		log:                log,
		patientProfileRepo: patientProfileRepo,
		doctorProfileRepo:  doctorProfileRepo,
		appointmentRepo:    appointmentRepo,
	}
}

// BookAppointment books the exact (doctor, date, time) slot for the acting
// patient. Slots are opaque point values; any existing appointment on the
// tuple counts as taken, cancelled ones included. The pre-check gives a
// friendly error, the unique index on the tuple decides races.
func (u *patientBookingUsecase) BookAppointment(ctx context.Context, actor entity.Actor, doctorProfileID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	if err := requireRole(actor, entity.RolePatient); err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)

	patientProfile, err := u.patientProfileRepo.FindByUserID(db, actor.UserID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile for user %s: %+v", actor.UserID, err)
		return nil, err
	}
	if patientProfile == nil {
		return nil, ErrPatientProfileNotFound
	}

	doctorProfile, err := u.doctorProfileRepo.FindByID(db, doctorProfileID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile %s: %+v", doctorProfileID, err)
		return nil, err
	}
	if doctorProfile == nil {
		return nil, ErrDoctorNotFound
	}

	existing, err := u.appointmentRepo.FindBySlot(db, doctorProfileID, req.Date, req.Time)
	if err != nil {
		u.log.Warnf("Failed to check slot: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlotTaken
	}

	appointment := &entity.Appointment{
		PatientProfileID: patientProfile.ID,
		DoctorProfileID:  doctorProfileID,
		Date:             req.Date,
		Time:             req.Time,
		Status:           entity.AppointmentStatusBooked,
	}

	if err := u.appointmentRepo.Create(db, appointment); err != nil {
		// A concurrent booking that slipped past the pre-check lands here
		if isDuplicateKeyError(err, "slot") {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	appointment.Doctor = *doctorProfile
	appointment.Patient = *patientProfile
	u.log.Infof("Appointment booked: id=%s, doctor=%s, date=%s, time=%s", appointment.ID, doctorProfileID, req.Date, req.Time)
	return converter.AppointmentToResponse(appointment), nil
}

// CancelAppointment moves a Booked appointment to Cancelled. The slot stays
// taken; cancellation does not free it for rebooking.
func (u *patientBookingUsecase) CancelAppointment(ctx context.Context, actor entity.Actor, appointmentID uuid.UUID) error {
	if err := requireRole(actor, entity.RolePatient); err != nil {
		return err
	}

	db := u.db.WithContext(ctx)

	patientProfile, err := u.patientProfileRepo.FindByUserID(db, actor.UserID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile for user %s: %+v", actor.UserID, err)
		return err
	}
	if patientProfile == nil {
		return ErrPatientProfileNotFound
	}

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if appointment.PatientProfileID != patientProfile.ID {
		return ErrAppointmentNotOwned
	}
	if !appointment.IsBooked() {
		return ErrAppointmentNotCancellable
	}

	appointment.Cancel()
	if err := u.appointmentRepo.Update(db, appointment); err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", appointmentID, err)
		return err
	}

	u.log.Infof("Appointment cancelled: id=%s", appointmentID)
	return nil
}

// Dashboard lists every doctor as a booking candidate plus the acting
// patient's own appointments.
func (u *patientBookingUsecase) Dashboard(ctx context.Context, actor entity.Actor) (*dto.PatientDashboardResponse, error) {
	if err := requireRole(actor, entity.RolePatient); err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)

	patientProfile, err := u.patientProfileRepo.FindByUserID(db, actor.UserID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile for user %s: %+v", actor.UserID, err)
		return nil, err
	}
	if patientProfile == nil {
		return nil, ErrPatientProfileNotFound
	}

	doctors, err := u.doctorProfileRepo.FindAll(db)
	if err != nil {
		u.log.Warnf("Failed to list doctor profiles: %+v", err)
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindByPatientProfileID(db, patientProfile.ID)
	if err != nil {
		u.log.Warnf("Failed to list appointments for patient %s: %+v", patientProfile.ID, err)
		return nil, err
	}

	return &dto.PatientDashboardResponse{
		Doctors:      converter.DoctorProfilesToResponses(doctors),
		Appointments: converter.AppointmentsToResponses(appointments),
	}, nil
}
